package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/interview-coach/pkg/config"
)

const (
	flushTimeout     = 2 * time.Second
	tracesSampleRate = 0.2
)

// ErrorReporter sends server errors to Sentry. The zero value is disabled.
type ErrorReporter struct {
	enabled bool
}

// NewErrorReporter initializes the Sentry client when a DSN is configured
func NewErrorReporter(cfg *config.Config, release string) (*ErrorReporter, error) {
	if cfg.Monitoring.SentryDSN == "" {
		return &ErrorReporter{}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Monitoring.SentryDSN,
		Environment:      cfg.Server.Environment,
		Release:          release,
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}
	return &ErrorReporter{enabled: true}, nil
}

// Enabled reports whether errors are sent anywhere
func (r *ErrorReporter) Enabled() bool {
	return r != nil && r.enabled
}

// Middleware attaches a Sentry hub to every request. It is a pass-through when disabled.
func (r *ErrorReporter) Middleware() echo.MiddlewareFunc {
	if !r.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return sentryecho.New(sentryecho.Options{
		Repanic: true,
		Timeout: flushTimeout,
	})
}

// CaptureError reports an error outside a request, e.g. during startup
func (r *ErrorReporter) CaptureError(err error) {
	if !r.Enabled() || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush waits for buffered events to be sent
func (r *ErrorReporter) Flush() {
	if r.Enabled() {
		sentry.Flush(flushTimeout)
	}
}
