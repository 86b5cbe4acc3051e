package sevenzip

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/interfaces"
	"github.com/m-mizutani/iconex/pkg/domain/model"
)

// Client runs 7-Zip as a subprocess
type Client struct {
	bin     string
	timeout time.Duration
}

var _ interfaces.Archiver = (*Client)(nil)

// ClientOption configures Client
type ClientOption func(*Client)

// WithTimeout bounds each subprocess call. Zero disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client for the 7-Zip executable at bin
func NewClient(bin string, opts ...ClientOption) *Client {
	c := &Client{bin: bin}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListIcons lists entries under the ICON folder of the file, largest first
func (c *Client) ListIcons(ctx context.Context, path string) ([]model.IconEntry, error) {
	stdout, err := c.run(ctx, "l", "-slt", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list archive contents", goerr.V("file", path))
	}

	entries, err := parseListing(path, bytes.NewReader(stdout))
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Listed icon entries",
		"file", path,
		"count", len(entries),
	)
	return entries, nil
}

// Extract decompresses a single entry into destDir without directory structure
func (c *Client) Extract(ctx context.Context, path string, entry model.IconEntry, destDir string) (string, error) {
	if _, err := c.run(ctx, "e", path, entry.Name, "-o"+destDir, "-y"); err != nil {
		return "", goerr.Wrap(err, "failed to extract icon entry",
			goerr.V("file", path),
			goerr.V("entry", entry.Name),
		)
	}

	extracted := filepath.Join(destDir, entry.BaseName())
	if _, err := os.Stat(extracted); err != nil {
		return "", goerr.Wrap(model.ErrExtractionFailed, "extracted file not found",
			goerr.V("file", path),
			goerr.V("entry", entry.Name),
			goerr.V("expected", extracted),
		)
	}

	return extracted, nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	ctxlog.From(ctx).Debug("Running 7-Zip", "bin", c.bin, "args", args)

	if err := cmd.Run(); err != nil {
		return nil, goerr.Wrap(model.ErrExtractionFailed, "7-Zip exited with error",
			goerr.V("args", strings.Join(args, " ")),
			goerr.V("error", err.Error()),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.Bytes(), nil
}
