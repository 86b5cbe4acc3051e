package config

import (
	"bytes"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// ConfigFile holds the path of the optional TOML configuration file
type ConfigFile struct {
	Path string
}

// Flags returns CLI flags for the configuration file
func (c *ConfigFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("ICONEX_CONFIG"),
		},
	}
}

// File is the content of the TOML configuration file
//
//	seven_zip = "C:/Program Files/7-Zip/7z.exe"
//	output = "./icons"
//	recursive = true
//	largest = false
//	extensions = [".exe", ".dll"]
//	timeout = "30s"
type File struct {
	SevenZip   string   `toml:"seven_zip"`
	Output     string   `toml:"output"`
	Recursive  *bool    `toml:"recursive"`
	Largest    *bool    `toml:"largest"`
	Extensions []string `toml:"extensions"`
	Timeout    Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string such as "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return goerr.Wrap(err, "invalid duration", goerr.V("value", string(b)))
	}
	d.Duration = v
	return nil
}

// Load reads the configuration file. It returns nil without error if no path is set.
func (c *ConfigFile) Load() (*File, error) {
	if c.Path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(model.ErrInvalidConfig, "failed to read config file",
			goerr.V("path", c.Path),
			goerr.V("error", err.Error()),
		)
	}

	var f File
	decoder := toml.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidConfig, "failed to parse config file",
			goerr.V("path", c.Path),
			goerr.V("error", err.Error()),
		)
	}

	return &f, nil
}
