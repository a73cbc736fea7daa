package notion

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// loggingTransport sends notionapi traffic to the configured host and logs each round trip.
type loggingTransport struct {
	base   *url.URL
	next   http.RoundTripper
	client *Client
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.client.loggerFrom(req.Context())
	reqID := uuid.NewString()
	start := time.Now()

	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.Host = t.base.Host

	logger.Debug("notion.http.request", "req_id", reqID, "method", out.Method, "path", out.URL.Path)

	resp, err := t.next.RoundTrip(out)
	if err != nil {
		logger.Error("notion.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	logger.Debug("notion.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
