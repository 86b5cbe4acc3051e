package usecase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/model"
	lnk "github.com/parsiya/golnk"
)

// DefaultExtensions are file extensions of PE files that commonly carry icon resources
var DefaultExtensions = []string{".exe", ".dll", ".cpl", ".scr", ".ocx", ".sys", ".mui"}

// ShortcutExt is the extension of Windows shell links, which are replaced by their targets
const ShortcutExt = ".lnk"

// CollectOptions controls how input paths are expanded
type CollectOptions struct {
	Recursive  bool
	Extensions []string // Accepted extensions, DefaultExtensions if empty
}

// CollectCandidates expands files and directories into an ordered, deduplicated
// list of candidate executables. Paths that do not exist are skipped. Symbolic
// links are followed and shortcuts are replaced by their target.
func CollectCandidates(ctx context.Context, paths []string, opts CollectOptions) ([]model.Candidate, error) {
	logger := ctxlog.From(ctx)

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	accepted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		accepted[ext] = struct{}{}
	}
	matches := func(p string) bool {
		_, ok := accepted[strings.ToLower(filepath.Ext(p))]
		return ok
	}

	seen := make(map[string]struct{})
	var candidates []model.Candidate
	add := func(p string, size int64) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		candidates = append(candidates, model.Candidate{Path: p, Size: size})
	}

	addFile := func(p string, info fs.FileInfo) {
		if !info.Mode().IsRegular() {
			logger.Debug("Not a regular file, skipping", "path", p)
			return
		}
		if strings.EqualFold(filepath.Ext(p), ShortcutExt) {
			target, err := resolveShortcut(p)
			if err != nil {
				logger.Warn("Failed to resolve shortcut, skipping", "path", p, "error", err)
				return
			}
			if !matches(target.path) {
				logger.Debug("Shortcut does not point to an executable, skipping", "path", p, "target", target.path)
				return
			}
			logger.Debug("Resolved shortcut", "path", p, "target", target.path)
			add(target.path, target.size)
			return
		}
		if !matches(p) {
			logger.Debug("Not an executable file, skipping", "path", p)
			return
		}
		add(p, info.Size())
	}

	for _, input := range paths {
		abs, err := filepath.Abs(input)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve input path", goerr.V("path", input))
		}

		info, err := os.Stat(abs)
		if err != nil {
			logger.Warn("No file exists at given path, skipping", "path", input, "error", err)
			continue
		}

		if !info.IsDir() {
			addFile(abs, info)
			continue
		}

		// WalkDir does not descend into a root that is a symbolic link
		root := abs
		if li, err := os.Lstat(abs); err == nil && li.Mode()&fs.ModeSymlink != 0 {
			if resolved, err := filepath.EvalSymlinks(abs); err == nil {
				root = resolved
			}
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("Failed to access path, skipping", "path", p, "error", err)
				if d != nil && d.IsDir() && p != root {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if p != root && !opts.Recursive {
					return fs.SkipDir
				}
				return nil
			}

			// Stat follows symbolic links, Info does not
			var fi fs.FileInfo
			if d.Type()&fs.ModeSymlink != 0 {
				fi, err = os.Stat(p)
			} else {
				fi, err = d.Info()
			}
			if err != nil {
				logger.Warn("Failed to stat file, skipping", "path", p, "error", err)
				return nil
			}
			if fi.IsDir() {
				logger.Debug("Not following symbolic link to directory", "path", p)
				return nil
			}
			addFile(p, fi)
			return nil
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to walk directory", goerr.V("path", root))
		}
	}

	logger.Info("Collected candidate files",
		"inputs", len(paths),
		"candidates", len(candidates),
		"recursive", opts.Recursive,
	)

	return candidates, nil
}

type shortcutTarget struct {
	path string
	size int64
}

// resolveShortcut reads a shell link and returns its first existing target.
// The absolute local path is preferred; the relative path is resolved
// against the directory holding the link.
func resolveShortcut(path string) (*shortcutTarget, error) {
	link, err := lnk.File(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse shortcut", goerr.V("path", path))
	}

	var tried []string
	if local := windowsPath(link.LinkInfo.LocalBasePath); local != "" && filepath.IsAbs(local) {
		tried = append(tried, local)
	}
	if rel := windowsPath(link.StringData.RelativePath); rel != "" {
		if !filepath.IsAbs(rel) {
			rel = filepath.Join(filepath.Dir(path), rel)
		}
		tried = append(tried, rel)
	}

	for _, p := range tried {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return &shortcutTarget{path: abs, size: info.Size()}, nil
	}

	return nil, goerr.New("shortcut target does not exist",
		goerr.V("path", path),
		goerr.V("targets", tried),
	)
}

// windowsPath converts backslash separators of a path stored in a shell link
func windowsPath(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}
