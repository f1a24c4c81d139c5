package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type level string

const (
	levelInfo  level = "[INFO]"
	levelError level = "[ERROR]"
)

const timeLayout = "2006-01-02 15:04:05"

// Uploader stores a finished run log under a object key.
type Uploader interface {
	Upload(ctx context.Context, objectKey string, body io.Reader) error
}

// RunLog collects the lines of a single report run in a temporary file.
type RunLog struct {
	mu     sync.Mutex
	file   *os.File
	errors int
	now    func() time.Time
}

// New creates a run log backed by a new temporary file.
func New() (*RunLog, error) {
	file, err := os.CreateTemp("", "tftstats-*.log")
	if err != nil {
		return nil, fmt.Errorf("couldn't create the run log file: %w", err)
	}
	return &RunLog{file: file, now: time.Now}, nil
}

func (l *RunLog) FilePath() string {
	return l.file.Name()
}

func (l *RunLog) Infof(format string, args ...any) {
	l.append(levelInfo, format, args...)
}

// Errorf logs a failure and counts it.
func (l *RunLog) Errorf(format string, args ...any) {
	l.append(levelError, format, args...)
}

// Errors is the number of failures logged since the last reset.
func (l *RunLog) Errors() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

// Separator ends a run block with a blank line.
func (l *RunLog) Separator() {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.file, "\n")
}

func (l *RunLog) append(lvl level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lvl == levelError {
		l.errors++
	}
	fmt.Fprintf(l.file, "%-8s %s %s\n", lvl, l.now().Format(timeLayout), fmt.Sprintf(format, args...))
}

// Reset empties the file and the error count.
func (l *RunLog) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reset()
}

func (l *RunLog) reset() error {
	if err := l.file.Truncate(0); err != nil {
		return err
	}
	_, err := l.file.Seek(0, io.SeekStart)
	l.errors = 0
	return err
}

// Ship hands the whole log to the uploader and resets it once stored.
func (l *RunLog) Ship(ctx context.Context, uploader Uploader, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("couldn't rewind the run log: %w", err)
	}
	if err := uploader.Upload(ctx, objectKey, l.file); err != nil {
		// Keep appending after the lines that failed to ship.
		l.file.Seek(0, io.SeekEnd)
		return err
	}
	return l.reset()
}

// Close closes and removes the temporary file.
func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Close(); err != nil {
		return err
	}
	return os.Remove(l.file.Name())
}
