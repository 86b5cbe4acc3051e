package config

import (
	"github.com/m-mizutani/iconex/pkg/infra/sentry"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN to report per-file failures (disabled if empty)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("ICONEX_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "production",
			Destination: &c.Env,
			Sources:     cli.EnvVars("ICONEX_SENTRY_ENV"),
		},
	}
}

// Enabled reports whether a DSN is configured
func (c *Sentry) Enabled() bool {
	return c.DSN != ""
}

// Configure creates a Sentry reporter. It returns nil if no DSN is configured.
func (c *Sentry) Configure(release string) (*sentry.Reporter, error) {
	if !c.Enabled() {
		return nil, nil
	}
	return sentry.New(c.DSN, release, sentry.WithEnvironment(c.Env))
}
