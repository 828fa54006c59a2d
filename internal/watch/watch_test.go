package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRunsOnStartAndChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.css")
	require.NoError(t, os.WriteFile(path, []byte(".a { width: 10px; }"), 0644))

	var runs atomic.Int32
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func(string) error {
			if runs.Add(1) >= 2 {
				cancel()
			}
			return nil
		}, nil)
	}()

	// Give the watcher time to register, then touch the file.
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(".a { width: 20px; }"), 0644))

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestFileReportsRunErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.css")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	var reported atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func(string) error {
			return os.ErrInvalid
		}, func(error) {
			reported.Add(1)
			cancel()
		})
	}()

	<-done
	assert.GreaterOrEqual(t, reported.Load(), int32(1))
}

func TestFileMissingDir(t *testing.T) {
	err := File(context.Background(), "/nonexistent/dir/file.css", func(string) error { return nil }, nil)
	require.Error(t, err)
}
