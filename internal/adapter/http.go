package adapter

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/utils"
	"github.com/MKhiriev/go-gatekeeper/models"
)

// hopHeaders are meaningful only for a single transport-level connection
// (RFC 9110, section 7.6.1) and are never forwarded.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type httpUpstreamAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUpstreamAdapter constructs the HTTP implementation of
// [UpstreamAdapter]. cfg.RequestTimeout bounds every upstream call.
func NewHTTPUpstreamAdapter(cfg config.Adapter, logger *logger.Logger) UpstreamAdapter {
	return &httpUpstreamAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		logger: logger,
	}
}

// Forward implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) Forward(ctx context.Context, req *http.Request, upstreamURL string) (*models.UpstreamResponse, error) {
	target, err := targetURL(upstreamURL, req.URL)
	if err != nil {
		return nil, err
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(forwardHeaders(req))

	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingRequestBody, err)
		}
		if len(body) > 0 {
			r.SetBody(body)
		}
	}

	resp, err := r.Execute(req.Method, target)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*httpUpstreamAdapter.Forward").
			Str("upstream", target).
			Msg("upstream request failed")
		return nil, mapTransportError(err)
	}

	header := resp.Header().Clone()
	removeHopHeaders(header)
	header.Del("Content-Length")

	return &models.UpstreamResponse{
		Status: resp.StatusCode(),
		Header: header,
		Body:   resp.Body(),
	}, nil
}

// targetURL joins the upstream base URL with the downstream path and query.
func targetURL(upstream string, downstream *url.URL) (string, error) {
	base, err := normalizeBaseURL(upstream)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUpstreamURL, err)
	}

	target := base + downstream.EscapedPath()
	if downstream.RawQuery != "" {
		target += "?" + downstream.RawQuery
	}
	return target, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	u.RawQuery = ""
	u.Fragment = ""

	return strings.TrimRight(u.String(), "/"), nil
}

// forwardHeaders copies the downstream headers without hop-by-hop fields
// and appends the X-Forwarded-* set.
func forwardHeaders(req *http.Request) map[string][]string {
	header := req.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	removeHopHeaders(header)
	header.Del("Content-Length")

	if host, _, err := net.SplitHostPort(req.RemoteAddr); err == nil {
		if prior := header.Get("X-Forwarded-For"); prior != "" {
			host = prior + ", " + host
		}
		header.Set("X-Forwarded-For", host)
	}
	header.Set("X-Forwarded-Host", req.Host)
	proto := "http"
	if req.TLS != nil {
		proto = "https"
	}
	header.Set("X-Forwarded-Proto", proto)

	return header
}

// removeHopHeaders deletes hop-by-hop headers, including those named by
// the Connection header.
func removeHopHeaders(header http.Header) {
	for _, field := range header.Values("Connection") {
		for _, name := range strings.Split(field, ",") {
			if name = textproto.TrimString(name); name != "" {
				header.Del(name)
			}
		}
	}
	for _, name := range hopHeaders {
		header.Del(name)
	}
}
