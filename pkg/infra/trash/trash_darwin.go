package trash

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/utils/fsutil"
)

func (t *Trash) trash(abs string) (string, error) {
	root := t.root
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", goerr.Wrap(err, "failed to get home directory")
		}
		root = filepath.Join(home, ".Trash")
	}
	if err := os.MkdirAll(root, 0700); err != nil {
		return "", goerr.Wrap(err, "failed to create trash directory", goerr.V("dir", root))
	}

	base := filepath.Base(abs)
	for n := 1; ; n++ {
		dst := filepath.Join(root, numbered(base, n))
		if fsutil.Exists(dst) {
			continue
		}
		if err := fsutil.Move(abs, dst); err != nil {
			return "", goerr.Wrap(err, "failed to move file to trash", goerr.V("path", abs))
		}
		return dst, nil
	}
}
