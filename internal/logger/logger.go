// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for structured logging and optionally integrates
// with New Relic to forward logs and correlate them with traces.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/expenso/expense-api/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the optional New Relic application instance.
//
// When New Relic is not configured (empty license key) the service
// still exists but GetApplication returns nil, and every consumer is
// expected to degrade to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when the
// integration is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes and stops the New Relic agent, waiting at most
// timeout. It is a no-op when the integration is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and the observability service.
//
// The logger is leveled from config (observability.logging.level) and
// writes either human-friendly console output or JSON. When New Relic
// is configured and log forwarding is enabled, the JSON stream is
// wrapped so log lines are decorated and forwarded by the agent.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", obs.GetLogLevel(), err)
	}

	service := &LoggerService{}

	if obs.NewRelic.LicenseKey != "" {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		}
		if obs.NewRelic.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
		}

		nrApp, err := newrelic.NewApplication(opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize New Relic: %w", err)
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout
	switch {
	case obs.Logging.Format == "console":
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	case service.nrApp != nil && obs.NewRelic.AppLogForwardingEnabled:
		// zerologWriter decorates each JSON log line with linking
		// metadata and hands it to the agent for forwarding.
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a child logger carrying the trace and span
// ids of the given transaction, so log lines can be correlated with
// distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()

	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}

	return builder.Logger()
}
