package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/iconex/pkg/utils/fsutil"
)

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")
	gt.NoError(t, os.WriteFile(src, []byte("icon"), 0644))

	gt.NoError(t, fsutil.Move(src, dst))
	gt.False(t, fsutil.Exists(src))

	data, err := os.ReadFile(dst)
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("icon")
}

func TestMove_MissingSource(t *testing.T) {
	dir := t.TempDir()
	gt.Error(t, fsutil.Move(filepath.Join(dir, "missing"), filepath.Join(dir, "dst")))
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	gt.NoError(t, os.WriteFile(src, []byte("data"), 0600))

	gt.NoError(t, fsutil.Copy(src, dst))
	gt.True(t, fsutil.Exists(src))

	data, err := os.ReadFile(dst)
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("data")

	t.Run("does not overwrite", func(t *testing.T) {
		gt.NoError(t, os.WriteFile(src, []byte("new"), 0600))
		gt.Error(t, fsutil.Copy(src, dst))

		data, err := os.ReadFile(dst)
		gt.NoError(t, err)
		gt.Value(t, string(data)).Equal("data")
	})
}
