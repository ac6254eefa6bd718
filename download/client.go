package download

import (
	"net/http"
	"time"
)

const defaultUserAgent = "sgdl"

// headerTransport stamps the configured User-Agent and static headers onto
// every outgoing request. Headers the request already carries are left alone.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
	headers   map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	for k, v := range t.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(req)
}

func newHTTPClient(opts Options) *http.Client {
	keepAlive := opts.KeepAliveTimeout
	if keepAlive == 0 {
		keepAlive = 90 * time.Second
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		IdleConnTimeout:     keepAlive,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		// Raw bytes only: transparent gzip would break Content-Length and range arithmetic.
		DisableCompression: true,
	}

	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &headerTransport{
			base:      transport,
			userAgent: userAgent,
			headers:   staticHeaders(opts.Headers),
		},
	}
}

// staticHeaders drops headers the downloader manages per request.
func staticHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if _, reserved := reservedHeaders[http.CanonicalHeaderKey(k)]; reserved {
			continue
		}
		out[k] = v
	}
	return out
}

var reservedHeaders = map[string]struct{}{
	"Range":    {},
	"If-Range": {},
}
