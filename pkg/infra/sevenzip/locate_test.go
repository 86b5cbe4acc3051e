package sevenzip_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/iconex/pkg/domain/model"
	"github.com/m-mizutani/iconex/pkg/infra/sevenzip"
)

func notFound(string) (string, error) {
	return "", errors.New("not found")
}

func TestLocator_Explicit(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "7z")
	gt.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))

	t.Run("existing file", func(t *testing.T) {
		l := sevenzip.NewLocator(sevenzip.WithLookPath(notFound), sevenzip.WithCandidates())
		got, err := l.Locate(bin)
		gt.NoError(t, err)
		gt.Value(t, got).Equal(bin)
	})

	t.Run("missing file", func(t *testing.T) {
		l := sevenzip.NewLocator()
		_, err := l.Locate(filepath.Join(dir, "missing"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrToolNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		l := sevenzip.NewLocator()
		_, err := l.Locate(dir)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrToolNotFound))
	})
}

func TestLocator_Guess(t *testing.T) {
	dir := t.TempDir()
	installed := filepath.Join(dir, "7z.exe")
	gt.NoError(t, os.WriteFile(installed, []byte("bin"), 0755))

	t.Run("PATH lookup wins", func(t *testing.T) {
		var looked []string
		l := sevenzip.NewLocator(
			sevenzip.WithLookPath(func(name string) (string, error) {
				looked = append(looked, name)
				if name == "7zz" {
					return "/path/to/7zz", nil
				}
				return "", errors.New("not found")
			}),
			sevenzip.WithCandidates(installed),
		)

		got, err := l.Locate("")
		gt.NoError(t, err)
		gt.Value(t, got).Equal("/path/to/7zz")
		gt.A(t, looked).Length(2)
	})

	t.Run("well-known location", func(t *testing.T) {
		l := sevenzip.NewLocator(
			sevenzip.WithLookPath(notFound),
			sevenzip.WithCandidates(filepath.Join(dir, "missing.exe"), installed),
		)

		got, err := l.Locate("")
		gt.NoError(t, err)
		gt.Value(t, got).Equal(installed)
	})

	t.Run("not found", func(t *testing.T) {
		l := sevenzip.NewLocator(
			sevenzip.WithLookPath(notFound),
			sevenzip.WithCandidates(filepath.Join(dir, "missing.exe"), dir),
		)

		_, err := l.Locate("")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrToolNotFound))
	})
}
