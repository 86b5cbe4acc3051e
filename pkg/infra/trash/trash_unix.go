//go:build !windows && !darwin

package trash

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/utils/fsutil"
)

const trashInfoTimeFormat = "2006-01-02T15:04:05"

// trash follows the freedesktop.org Trash specification
func (t *Trash) trash(abs string) (string, error) {
	root := t.root
	if root == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", goerr.Wrap(err, "failed to get home directory")
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		root = filepath.Join(dataHome, "Trash")
	}

	filesDir := filepath.Join(root, "files")
	infoDir := filepath.Join(root, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", goerr.Wrap(err, "failed to create trash directory", goerr.V("dir", dir))
		}
	}

	base := filepath.Base(abs)
	for n := 1; ; n++ {
		name := numbered(base, n)
		infoPath := filepath.Join(infoDir, name+".trashinfo")

		// The info file reserves the name
		info, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", goerr.Wrap(err, "failed to create trash info", goerr.V("path", infoPath))
		}

		dst := filepath.Join(filesDir, name)
		if fsutil.Exists(dst) {
			_ = info.Close()
			_ = os.Remove(infoPath)
			continue
		}

		content := "[Trash Info]\n" +
			"Path=" + (&url.URL{Path: abs}).EscapedPath() + "\n" +
			"DeletionDate=" + t.now().Format(trashInfoTimeFormat) + "\n"
		if _, err := info.WriteString(content); err != nil {
			_ = info.Close()
			_ = os.Remove(infoPath)
			return "", goerr.Wrap(err, "failed to write trash info", goerr.V("path", infoPath))
		}
		if err := info.Close(); err != nil {
			_ = os.Remove(infoPath)
			return "", goerr.Wrap(err, "failed to close trash info", goerr.V("path", infoPath))
		}

		if err := fsutil.Move(abs, dst); err != nil {
			_ = os.Remove(infoPath)
			return "", goerr.Wrap(err, "failed to move file to trash", goerr.V("path", abs))
		}
		return dst, nil
	}
}
