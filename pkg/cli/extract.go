package cli

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/cli/config"
	"github.com/m-mizutani/iconex/pkg/domain/model"
	"github.com/m-mizutani/iconex/pkg/domain/types"
	"github.com/m-mizutani/iconex/pkg/infra/progress"
	"github.com/m-mizutani/iconex/pkg/infra/sevenzip"
	"github.com/m-mizutani/iconex/pkg/infra/trash"
	"github.com/m-mizutani/iconex/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func runExtract(ctx context.Context, c *cli.Command, runID string, fileCfg *config.ConfigFile, extractCfg *config.Extract, sentryCfg *config.Sentry) error {
	logger := ctxlog.From(ctx)

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return goerr.Wrap(model.ErrNoInput, "at least one file or directory is required")
	}

	file, err := fileCfg.Load()
	if err != nil {
		return err
	}
	extractCfg.Merge(file, c.IsSet)

	logger.Debug("Configuration",
		"extract", *extractCfg,
		"config_file", fileCfg.Path,
		"sentry", *sentryCfg,
	)

	bin, err := sevenzip.Locate(extractCfg.SevenZip)
	if err != nil {
		return goerr.Wrap(err, "please provide the path to 7-Zip with --7zip")
	}
	logger.Info("Using 7-Zip", "path", bin)

	var opts []usecase.ExtractOption
	opts = append(opts,
		usecase.WithLargestOnly(extractCfg.Largest),
		usecase.WithRunID(runID),
	)

	reporter, err := sentryCfg.Configure(types.Version)
	if err != nil {
		return err
	}
	if reporter != nil {
		defer reporter.Flush()
		opts = append(opts, usecase.WithErrorReporter(reporter))
	}

	if extractCfg.Progress {
		opts = append(opts, usecase.WithProgress(progress.New(os.Stderr)))
	}

	candidates, err := usecase.CollectCandidates(ctx, inputs, usecase.CollectOptions{
		Recursive:  extractCfg.Recursive,
		Extensions: extractCfg.Extensions,
	})
	if err != nil {
		return err
	}

	writer := usecase.NewWriter(extractCfg.Output, trash.New())
	uc := usecase.NewExtract(
		sevenzip.NewClient(bin, sevenzip.WithTimeout(extractCfg.Timeout)),
		writer,
		opts...,
	)

	summary, err := uc.Run(ctx, candidates)
	if summary != nil {
		printSummary(writerOf(c), summary, writer.OutputDir())
	}
	return err
}

func writerOf(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func printSummary(w io.Writer, s *model.Summary, outputDir string) {
	ok := color.New(color.FgGreen, color.Bold)
	warn := color.New(color.FgYellow)

	ok.Fprintf(w, "Extracted %d icons from %d files into %s", s.Icons, s.Candidates, outputDir)
	if s.Failed > 0 || s.Trashed > 0 {
		warn.Fprintf(w, " (%d failed, %d trashed)", s.Failed, s.Trashed)
	}
	_, _ = io.WriteString(w, "\n")
}
