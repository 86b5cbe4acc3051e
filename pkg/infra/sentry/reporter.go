package sentry

import (
	"context"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/interfaces"
)

const flushTimeout = 2 * time.Second

// Reporter sends errors to Sentry
type Reporter struct {
	hub *sentrygo.Hub
}

var _ interfaces.ErrorReporter = (*Reporter)(nil)

// Option modifies Sentry client options
type Option func(*sentrygo.ClientOptions)

// WithEnvironment sets the environment tag of events
func WithEnvironment(env string) Option {
	return func(o *sentrygo.ClientOptions) {
		o.Environment = env
	}
}

// WithBeforeSend sets a hook called with every event before it is sent
func WithBeforeSend(fn func(event *sentrygo.Event, hint *sentrygo.EventHint) *sentrygo.Event) Option {
	return func(o *sentrygo.ClientOptions) {
		o.BeforeSend = fn
	}
}

// New creates a Reporter for the DSN
func New(dsn, release string, opts ...Option) (*Reporter, error) {
	options := sentrygo.ClientOptions{
		Dsn:     dsn,
		Release: release,
	}
	for _, opt := range opts {
		opt(&options)
	}

	client, err := sentrygo.NewClient(options)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Sentry client")
	}

	return &Reporter{
		hub: sentrygo.NewHub(client, sentrygo.NewScope()),
	}, nil
}

// Report captures err. Values attached with goerr.V are sent as event context.
func (r *Reporter) Report(ctx context.Context, err error) {
	r.hub.WithScope(func(scope *sentrygo.Scope) {
		if ge := goerr.Unwrap(err); ge != nil {
			values := sentrygo.Context{}
			for k, v := range ge.Values() {
				values[k] = v
			}
			scope.SetContext("values", values)
		}
		r.hub.CaptureException(err)
	})
}

// Flush waits for buffered events to be delivered
func (r *Reporter) Flush() {
	r.hub.Flush(flushTimeout)
}
