package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"tftstats/pkg/messages"

	json "github.com/goccy/go-json"
)

// Extension of the match files.
const matchFileExt = ".json"

// ListFiles lists the match files of a directory, sorted by name.
// Subdirectories are not walked.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the match directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != matchFileExt {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	slices.Sort(files)
	return files, nil
}

// LoadFile decodes a single match file into the raw mapping.
func LoadFile(ctx context.Context, path string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.CouldNotDecode+": %w", path, err)
	}

	var data map[string]any
	if err := json.UnmarshalContext(ctx, content, &data); err != nil {
		return nil, fmt.Errorf(messages.CouldNotDecode+": %w", path, err)
	}
	if data == nil {
		return nil, fmt.Errorf(messages.CouldNotDecode+": empty document", path)
	}

	return data, nil
}
