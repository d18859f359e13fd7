package rest

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/requestid"
)

// loggingTransport logs every backend round trip and forwards the inbound
// request ID. It sits under otelhttp so spans cover the logged duration too.
type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger zerolog.Logger) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	rid := requestid.FromContext(req.Context())
	if rid != "" && req.Header.Get(requestid.Header) == "" {
		// RoundTrippers must not mutate the caller's request
		req = req.Clone(req.Context())
		req.Header.Set(requestid.Header, rid)
	}

	resp, err := t.next.RoundTrip(req)

	var event *zerolog.Event
	switch {
	case err != nil:
		event = t.logger.Error().Err(err)
	case resp.StatusCode >= http.StatusInternalServerError:
		event = t.logger.Warn().Int("status", resp.StatusCode)
	default:
		event = t.logger.Debug().Int("status", resp.StatusCode)
	}
	if rid != "" {
		event = event.Str("request_id", rid)
	}
	event.
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Dur("took", time.Since(start)).
		Msg("backend request")

	return resp, err
}
