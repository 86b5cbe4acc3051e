package sevenzip

import (
	"os"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/model"
)

// Executable names looked up in PATH, in order
var commandNames = []string{"7z", "7zz", "7za"}

// Conventional install locations probed after PATH lookup
var wellKnownPaths = []string{
	`C:\Program Files\7-Zip\7z.exe`,
	`C:\Program Files (x86)\7-Zip\7z.exe`,
	"/usr/bin/7z",
	"/usr/local/bin/7z",
	"/opt/homebrew/bin/7zz",
}

// Locator finds the 7-Zip executable
type Locator struct {
	lookPath   func(file string) (string, error)
	candidates []string
}

// LocatorOption configures Locator
type LocatorOption func(*Locator)

// WithLookPath replaces exec.LookPath
func WithLookPath(fn func(file string) (string, error)) LocatorOption {
	return func(l *Locator) {
		l.lookPath = fn
	}
}

// WithCandidates replaces the list of well-known install locations
func WithCandidates(paths ...string) LocatorOption {
	return func(l *Locator) {
		l.candidates = paths
	}
}

// NewLocator creates a new Locator
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		lookPath:   exec.LookPath,
		candidates: wellKnownPaths,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the path of the 7-Zip executable. If explicit is not empty it
// must point to an existing file; otherwise PATH and well-known install
// locations are searched.
func (l *Locator) Locate(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", goerr.Wrap(model.ErrToolNotFound, "given 7-Zip path is not accessible",
				goerr.V("path", explicit),
				goerr.V("error", err.Error()),
			)
		}
		if info.IsDir() {
			return "", goerr.Wrap(model.ErrToolNotFound, "given 7-Zip path is a directory",
				goerr.V("path", explicit),
			)
		}
		return explicit, nil
	}

	for _, name := range commandNames {
		if p, err := l.lookPath(name); err == nil {
			return p, nil
		}
	}

	for _, p := range l.candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", goerr.Wrap(model.ErrToolNotFound, "7-Zip was not found in PATH or well-known locations",
		goerr.V("searched", l.candidates),
	)
}

// Locate is a shorthand for NewLocator().Locate(explicit)
func Locate(explicit string) (string, error) {
	return NewLocator().Locate(explicit)
}
