package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/interfaces"
	"github.com/m-mizutani/iconex/pkg/domain/model"
	"github.com/m-mizutani/iconex/pkg/domain/types"
	"github.com/m-mizutani/iconex/pkg/utils/imgsniff"
	"github.com/m-mizutani/iconex/pkg/utils/safe"
)

// Extract extracts icons of candidate files into the output directory
type Extract struct {
	archiver interfaces.Archiver
	writer   *Writer
	reporter interfaces.ErrorReporter
	progress interfaces.Progress
	largest  bool
	runID    string
	tempDir  string
}

// ExtractOption configures Extract
type ExtractOption func(*Extract)

// WithLargestOnly makes Extract write only the largest icon of each file
func WithLargestOnly(largest bool) ExtractOption {
	return func(uc *Extract) {
		uc.largest = largest
	}
}

// WithErrorReporter sets the reporter for per-file failures
func WithErrorReporter(reporter interfaces.ErrorReporter) ExtractOption {
	return func(uc *Extract) {
		uc.reporter = reporter
	}
}

// WithProgress sets the progress receiver
func WithProgress(progress interfaces.Progress) ExtractOption {
	return func(uc *Extract) {
		uc.progress = progress
	}
}

// WithRunID sets the identifier recorded in the summary
func WithRunID(runID string) ExtractOption {
	return func(uc *Extract) {
		uc.runID = runID
	}
}

// WithTempDir sets the parent of the per-file temporary directories
func WithTempDir(dir string) ExtractOption {
	return func(uc *Extract) {
		uc.tempDir = dir
	}
}

// NewExtract creates a new Extract use case
func NewExtract(archiver interfaces.Archiver, writer *Writer, opts ...ExtractOption) *Extract {
	uc := &Extract{
		archiver: archiver,
		writer:   writer,
		reporter: nopReporter{},
		progress: nopProgress{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run processes candidates one at a time. Per-file failures are logged,
// reported and counted in the summary; only cancellation and an unusable
// output directory stop the run.
func (uc *Extract) Run(ctx context.Context, candidates []model.Candidate) (*model.Summary, error) {
	logger := ctxlog.From(ctx)

	if err := uc.writer.Prepare(); err != nil {
		return nil, err
	}

	summary := &model.Summary{RunID: uc.runID}

	uc.progress.Start(len(candidates))
	defer uc.progress.Finish()

	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, goerr.Wrap(err, "extraction cancelled", goerr.V("processed", i))
		}

		logger.Info("Processing file", "index", i+1, "total", len(candidates), "path", c.Path)

		result := &model.FileResult{Candidate: c}
		if err := safe.Run(ctx, func(ctx context.Context) error {
			return uc.processFile(ctx, result)
		}); err != nil {
			result.Err = err
		}

		if result.Err != nil {
			logger.Error("Failed to extract icons", "path", c.Path, "error", result.Err)
			uc.reporter.Report(ctx, result.Err)
		}

		summary.Add(result)
		uc.progress.Step(filepath.Base(c.Path))
	}

	logger.Info("Extraction finished",
		"run_id", summary.RunID,
		"candidates", summary.Candidates,
		"icons", summary.Icons,
		"failed", summary.Failed,
		"trashed", summary.Trashed,
	)

	return summary, nil
}

func (uc *Extract) processFile(ctx context.Context, result *model.FileResult) error {
	logger := ctxlog.From(ctx)
	src := result.Candidate.Path

	entries, err := uc.archiver.ListIcons(ctx, src)
	if err != nil {
		return err
	}
	result.Entries = len(entries)

	if len(entries) == 0 {
		logger.Info("No icon files found", "path", src)
		return nil
	}

	// Entries come largest first
	if uc.largest {
		entries = entries[:1]
	}

	tmpDir, err := os.MkdirTemp(uc.tempDir, types.AppName+"-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary directory")
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			logger.Warn("Failed to remove temporary directory", "dir", tmpDir, "error", err)
		}
	}()

	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	for _, entry := range entries {
		logger.Debug("Extracting icon", "path", src, "entry", entry.Name, "size", entry.Size)

		icon, err := uc.extractOne(ctx, src, entry, tmpDir)
		if err != nil {
			logger.Warn("Failed to extract icon", "path", src, "entry", entry.Name, "error", err)
			if result.Err == nil {
				result.Err = err
			}
			continue
		}

		dst, trashed, err := uc.writer.Place(ctx, icon.TempPath, stem, icon.Ext)
		if trashed != "" {
			result.Trashed = append(result.Trashed, trashed)
		}
		if err != nil {
			logger.Warn("Failed to save icon", "path", src, "entry", entry.Name, "error", err)
			if result.Err == nil {
				result.Err = err
			}
			continue
		}
		result.Written = append(result.Written, dst)
	}

	return nil
}

func (uc *Extract) extractOne(ctx context.Context, src string, entry model.IconEntry, tmpDir string) (*model.ExtractedIcon, error) {
	extracted, err := uc.archiver.Extract(ctx, src, entry, tmpDir)
	if err != nil {
		return nil, err
	}

	icon := &model.ExtractedIcon{
		Entry:    entry,
		TempPath: extracted,
		Ext:      entry.Ext(),
	}
	if icon.Ext != "" {
		return icon, nil
	}

	format, err := imgsniff.DetectFile(extracted)
	if err != nil {
		return nil, err
	}
	ctxlog.From(ctx).Debug("Guessed file extension from file header",
		"entry", entry.Name,
		"format", format,
	)

	switch format {
	case imgsniff.Unknown:
		ctxlog.From(ctx).Warn("Unrecognized icon format, using fallback extension",
			"entry", entry.Name,
			"ext", imgsniff.FallbackExt,
		)
	case imgsniff.DIB:
		if err := wrapDIBFile(extracted); err != nil {
			return nil, err
		}
	}

	icon.Ext = format.Ext()
	return icon, nil
}

func wrapDIBFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read icon", goerr.V("path", path))
	}

	ico, err := imgsniff.WrapDIB(data)
	if err != nil {
		return goerr.Wrap(err, "failed to convert DIB to ICO", goerr.V("path", path))
	}

	if err := os.WriteFile(path, ico, 0644); err != nil {
		return goerr.Wrap(err, "failed to write icon", goerr.V("path", path))
	}
	return nil
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, error) {}
func (nopReporter) Flush() {}

type nopProgress struct{}

func (nopProgress) Start(int) {}
func (nopProgress) Step(string) {}
func (nopProgress) Finish() {}
