package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// DefaultOutput is the output directory used when none is given
const DefaultOutput = "./icons"

// Extract holds icon extraction configuration
type Extract struct {
	SevenZip   string
	Output     string
	Recursive  bool
	Largest    bool
	Extensions []string
	Timeout    time.Duration
	Progress   bool
}

// Flags returns CLI flags for extraction configuration
func (c *Extract) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "7zip",
			Aliases:     []string{"z"},
			Usage:       "Path to the 7-Zip program. Guessed if omitted",
			Destination: &c.SevenZip,
			Sources:     cli.EnvVars("ICONEX_7ZIP"),
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory to store extracted icons",
			Value:       DefaultOutput,
			Destination: &c.Output,
			Sources:     cli.EnvVars("ICONEX_OUTPUT"),
		},
		&cli.BoolFlag{
			Name:        "recursive",
			Aliases:     []string{"r"},
			Usage:       "Search directories recursively",
			Destination: &c.Recursive,
			Sources:     cli.EnvVars("ICONEX_RECURSIVE"),
		},
		&cli.BoolFlag{
			Name:        "largest",
			Aliases:     []string{"l"},
			Usage:       "Only extract the largest icon of each file",
			Destination: &c.Largest,
			Sources:     cli.EnvVars("ICONEX_LARGEST"),
		},
		&cli.StringSliceFlag{
			Name:        "ext",
			Usage:       "File extensions treated as executables (default: .exe .dll .cpl .scr .ocx .sys .mui)",
			Destination: &c.Extensions,
			Sources:     cli.EnvVars("ICONEX_EXT"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of each 7-Zip invocation, 0 disables it",
			Value:       0,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("ICONEX_TIMEOUT"),
		},
		&cli.BoolFlag{
			Name:        "progress",
			Usage:       "Show a progress bar on stderr",
			Destination: &c.Progress,
			Sources:     cli.EnvVars("ICONEX_PROGRESS"),
		},
	}
}

// Merge applies values of a configuration file to settings whose flag was not
// given explicitly. isSet reports whether a flag was set on the command line
// or through its environment variable.
func (c *Extract) Merge(f *File, isSet func(name string) bool) {
	if f == nil {
		return
	}
	if f.SevenZip != "" && !isSet("7zip") {
		c.SevenZip = f.SevenZip
	}
	if f.Output != "" && !isSet("output") {
		c.Output = f.Output
	}
	if f.Recursive != nil && !isSet("recursive") {
		c.Recursive = *f.Recursive
	}
	if f.Largest != nil && !isSet("largest") {
		c.Largest = *f.Largest
	}
	if len(f.Extensions) > 0 && !isSet("ext") {
		c.Extensions = f.Extensions
	}
	if f.Timeout.Duration > 0 && !isSet("timeout") {
		c.Timeout = f.Timeout.Duration
	}
}
