package trash

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/interfaces"
	"github.com/m-mizutani/iconex/pkg/utils/fsutil"
)

// Trash moves files to the trash of the current user
type Trash struct {
	root string
	now  func() time.Time
}

var _ interfaces.Trasher = (*Trash)(nil)

// Option configures Trash
type Option func(*Trash)

// WithRoot overrides the trash directory. It has no effect on Windows where
// the Recycle Bin is used.
func WithRoot(root string) Option {
	return func(t *Trash) {
		t.root = root
	}
}

// WithNow overrides the clock used for deletion timestamps
func WithNow(now func() time.Time) Option {
	return func(t *Trash) {
		t.now = now
	}
}

// New creates a new Trash
func New(opts ...Option) *Trash {
	t := &Trash{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Trash moves the file at path to the trash and returns its new location
func (t *Trash) Trash(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve path", goerr.V("path", path))
	}
	if !fsutil.Exists(abs) {
		return "", goerr.New("file to trash does not exist", goerr.V("path", abs))
	}

	return t.trash(abs)
}

// numbered returns "name (n).ext" for n > 1
func numbered(name string, n int) string {
	if n <= 1 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
}
