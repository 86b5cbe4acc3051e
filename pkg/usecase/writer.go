package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/interfaces"
	"github.com/m-mizutani/iconex/pkg/utils/fsutil"
)

// Writer places extracted icons into the output directory. A file that
// already existed before the run is moved to the trash instead of being
// overwritten; names written during the run get a " (n)" suffix instead.
type Writer struct {
	outputDir string
	trasher   interfaces.Trasher
	written   map[string]struct{}
}

// NewWriter creates a new Writer
func NewWriter(outputDir string, trasher interfaces.Trasher) *Writer {
	return &Writer{
		outputDir: outputDir,
		trasher:   trasher,
		written:   make(map[string]struct{}),
	}
}

// OutputDir returns the destination directory
func (w *Writer) OutputDir() string {
	return w.outputDir
}

// Prepare creates the output directory if it does not exist
func (w *Writer) Prepare() error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", w.outputDir))
	}
	return nil
}

// Place moves src into the output directory as "<stem><ext>". It returns the
// destination path and, when a prior file had to make room, its trash location.
func (w *Writer) Place(ctx context.Context, src, stem, ext string) (string, string, error) {
	logger := ctxlog.From(ctx)

	var dst string
	for n := 1; ; n++ {
		name := stem + ext
		if n > 1 {
			name = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		dst = filepath.Join(w.outputDir, name)
		if _, ok := w.written[dst]; !ok {
			break
		}
	}

	var trashed string
	if fsutil.Exists(dst) {
		loc, err := w.trasher.Trash(dst)
		if err != nil {
			return "", "", goerr.Wrap(err, "failed to move existing file to trash", goerr.V("path", dst))
		}
		logger.Info("Moved existing file to trash", "path", dst, "trash", loc)
		trashed = loc
	}

	if err := fsutil.Move(src, dst); err != nil {
		return "", trashed, goerr.Wrap(err, "failed to save icon", goerr.V("src", src), goerr.V("dst", dst))
	}
	w.written[dst] = struct{}{}

	logger.Info("Saved icon", "path", dst)
	return dst, trashed, nil
}
