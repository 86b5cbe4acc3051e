package fsutil

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
)

// Move renames src to dst. When both are on different devices the file is
// copied and src is removed afterwards.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return goerr.Wrap(err, "failed to rename file", goerr.V("src", src), goerr.V("dst", dst))
	}

	if err := Copy(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return goerr.Wrap(err, "failed to remove source after copy", goerr.V("src", src))
	}
	return nil
}

// Copy copies the content and permission bits of src into a new file dst.
// It fails if dst already exists.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("src", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat source file", goerr.V("src", src))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dst", dst))
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return goerr.Wrap(err, "failed to copy file content", goerr.V("src", src), goerr.V("dst", dst))
	}

	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("dst", dst))
	}
	return nil
}

// Exists reports whether a file or directory exists at path
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
