package tft

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Load the fixture match as a raw mapping.
func loadRawMatch(t *testing.T) map[string]any {
	t.Helper()

	content, err := os.ReadFile("testdata/match.json")
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(content, &data))
	return data
}

// Get a nested object from a raw mapping.
func object(t *testing.T, data map[string]any, path ...any) map[string]any {
	t.Helper()

	var current any = data
	for _, key := range path {
		switch k := key.(type) {
		case string:
			current = current.(map[string]any)[k]
		case int:
			current = current.([]any)[k]
		default:
			t.Fatalf("invalid path key %v", key)
		}
	}

	result, ok := current.(map[string]any)
	require.True(t, ok, fmt.Sprintf("path %v isn't a object", path))
	return result
}

// Recording logger for the diagnostics.
type recordLogger struct {
	lines []string
}

func (l *recordLogger) Infof(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
