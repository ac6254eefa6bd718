package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// probeRange is the minimal range requested when checking for range support.
const probeRange = "bytes=0-10"

// probeDrainLimit caps how much of a probe body is read back, in case the
// server ignores the range and starts sending the whole resource.
const probeDrainLimit = 64 << 10

// probeContentLength issues a HEAD request and returns the advertised size.
func (s *Service) probeContentLength(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: HEAD %s: %w", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: received %d response to HEAD %s", ErrProtocol, resp.StatusCode, url)
	}

	if resp.ContentLength <= 0 {
		return 0, fmt.Errorf("%w: missing or non-positive content length (%d) from %s", ErrProtocol, resp.ContentLength, url)
	}

	return resp.ContentLength, nil
}

// probeRangeSupport issues a small ranged GET and reports whether the server
// answered with an Accept-Ranges header of exactly "bytes".
func (s *Service) probeRangeSupport(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	req.Header.Set("Range", probeRange)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: GET %s: %w", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, probeDrainLimit))

	return resp.Header.Get("Accept-Ranges") == "bytes", nil
}
