package httputil

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout = 30 * time.Second
	UserAgent      = "dashingweather/1.0"
)

// NewClient returns a resty client with the standard timeout and User-Agent.
// Retries stay disabled. Responses are logged by path only because the
// query string carries the API key.
func NewClient(baseURL string, logger *slog.Logger) *resty.Client {
	client := resty.New().
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", UserAgent)
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("upstream response",
			"method", resp.Request.Method,
			"path", requestPath(resp.Request),
			"status", resp.StatusCode(),
			"duration_ms", resp.Time().Milliseconds(),
		)
		return nil
	})
	return client
}

func requestPath(req *resty.Request) string {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	return ""
}

// Redact strips the request URL from transport errors so credentials in the
// query string never reach logs or users.
func Redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	path := ""
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		path = u.Path
	}
	return fmt.Errorf("%s %s: %w", urlErr.Op, path, urlErr.Err)
}
