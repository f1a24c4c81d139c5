package logger

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUploader struct {
	mock.Mock
	body string
}

func (m *MockUploader) Upload(ctx context.Context, objectKey string, body io.Reader) error {
	content, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.body = string(content)
	return m.Called(ctx, objectKey).Error(0)
}

func newTestLog(t *testing.T) *RunLog {
	t.Helper()

	l, err := New()
	require.NoError(t, err)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRunLogAppend(t *testing.T) {
	l := newTestLog(t)

	l.Infof("parsed %d matches", 3)
	l.Errorf("couldn't parse %s", "NA1_1")
	l.Separator()

	content, err := os.ReadFile(l.FilePath())
	require.NoError(t, err)

	lines := strings.Split(string(content), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[INFO]   2024-03-01 12:00:00 parsed 3 matches", lines[0])
	assert.Equal(t, "[ERROR]  2024-03-01 12:00:00 couldn't parse NA1_1", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, 1, l.Errors())
}

func TestRunLogReset(t *testing.T) {
	l := newTestLog(t)

	l.Errorf("first run")
	require.NoError(t, l.Reset())
	l.Infof("second run")

	content, err := os.ReadFile(l.FilePath())
	require.NoError(t, err)
	assert.NotContains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")
	assert.Zero(t, l.Errors())
}

func TestRunLogShip(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		uploadErr error
		remaining string
	}{
		{
			name:      "uploaded",
			remaining: "",
		},
		{
			name:      "upload failed",
			uploadErr: errors.New("access denied"),
			remaining: "[INFO]   2024-03-01 12:00:00 done\n[INFO]   2024-03-01 12:00:00 after\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLog(t)
			l.Infof("done")

			uploader := new(MockUploader)
			uploader.On("Upload", ctx, "reports/win/run.log").Return(tt.uploadErr)

			err := l.Ship(ctx, uploader, "reports/win/run.log")
			if tt.uploadErr != nil {
				assert.ErrorIs(t, err, tt.uploadErr)
				l.Infof("after")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, "[INFO]   2024-03-01 12:00:00 done\n", uploader.body)

			content, err := os.ReadFile(l.FilePath())
			require.NoError(t, err)
			assert.Equal(t, tt.remaining, string(content))
			uploader.AssertExpectations(t)
		})
	}
}

func TestRunLogClose(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	require.NoError(t, l.Close())

	_, err = os.Stat(l.FilePath())
	assert.True(t, os.IsNotExist(err))
}
