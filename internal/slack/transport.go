package slack

import (
	"net/http"

	"go.uber.org/zap"
)

// cookieTransport wraps an http.RoundTripper to add cookie headers
// required by browser session (xoxc) tokens
type cookieTransport struct {
	transport http.RoundTripper
	cookie    string
	logger    *zap.Logger
}

func (t *cookieTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Cookie", "d="+t.cookie)
	t.logger.Debug("Sending Slack request with cookie",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path))
	return t.transport.RoundTrip(req)
}

// newCookieTransport creates a transport with cookie authentication
func newCookieTransport(cookie string, logger *zap.Logger) *cookieTransport {
	return &cookieTransport{
		transport: http.DefaultTransport,
		cookie:    cookie,
		logger:    logger,
	}
}
