package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// fetchFunc retrieves the bytes of a single planned range.
type fetchFunc func(ctx context.Context, r ByteRange) ([]byte, error)

// fetcher returns a fetchFunc bound to url.
func (s *Service) fetcher(url string) fetchFunc {
	return func(ctx context.Context, r ByteRange) ([]byte, error) {
		return s.fetchRange(ctx, url, r)
	}
}

// fetchRange attempts to GET one range of the resource and buffers the body.
func (s *Service) fetchRange(ctx context.Context, url string, r ByteRange) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	req.Header.Set("Range", r.Header())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s %s: %w", ErrNetwork, url, r, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("%w: received %d response for range %s from %s", ErrProtocol, resp.StatusCode, r, url)
	}

	chunk, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading range %s: %w", ErrNetwork, r, err)
	}

	if int64(len(chunk)) != r.Len() {
		return nil, fmt.Errorf("%w: range %s returned %d bytes, expected %d", ErrProtocol, r, len(chunk), r.Len())
	}

	return chunk, nil
}
