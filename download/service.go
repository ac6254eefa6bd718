package download

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gkatanacio/segmented-downloader/logging"
	"github.com/gkatanacio/segmented-downloader/sink"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrRangeUnsupported = errors.New("server does not advertise byte range support")
	ErrNetwork          = errors.New("network failure")
	ErrProtocol         = errors.New("unexpected server response")
	ErrConsistency      = errors.New("content hash mismatch")
)

// Service is the service layer that contains operations for downloading.
type Service struct {
	opts       Options
	httpClient *http.Client
	log        zerolog.Logger
}

func NewService(opts Options) *Service {
	return &Service{
		opts:       opts,
		httpClient: newHTTPClient(opts),
		log:        logging.Get("download"),
	}
}

// Download fetches url in opts.Segments concurrent ranges and persists the
// reassembled resource to opts.DestFilePath, returning the number of bytes
// written. With opts.Verify set, a single-segment baseline download is made
// afterwards and its hash compared against the result.
func (s *Service) Download(ctx context.Context, url string) (int64, error) {
	segments := s.opts.Segments

	if s.opts.Verify && sink.IsRemote(s.opts.DestFilePath) {
		return 0, fmt.Errorf("%w: verification needs a local destination, got %s", ErrInvalidInput, s.opts.DestFilePath)
	}

	n, err := s.download(ctx, url, s.opts.DestFilePath, segments, s.opts.Concurrency)
	if err != nil {
		return 0, err
	}

	if s.opts.Verify && segments > 1 {
		if err := s.verifyAgainstBaseline(ctx, url); err != nil {
			return n, err
		}
	}

	return n, nil
}

// download runs one job end to end: probe, plan, fetch, assemble, persist.
// Nothing reaches dest unless every range was fetched.
func (s *Service) download(ctx context.Context, url, dest string, segments, concurrency int) (n int64, err error) {
	job := &Job{ID: uuid.NewString(), URL: url, Concurrency: concurrency}
	log := s.log.With().Str("job", job.ID).Str("url", url).Int("segments", segments).Logger()

	defer func() {
		if err != nil {
			s.setState(log, StateFailed)
			log.Debug().Err(err).Msg("download aborted")
		}
	}()

	s.setState(log, StatePlanning)

	out, err := sink.Open(ctx, dest, sink.Options{AWSProfile: s.opts.AWSProfile})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	size, err := s.probeContentLength(ctx, url)
	if err != nil {
		return 0, err
	}

	if segments > 1 {
		supported, err := s.probeRangeSupport(ctx, url)
		if err != nil {
			return 0, err
		}
		if !supported {
			return 0, fmt.Errorf("%w: %s", ErrRangeUnsupported, url)
		}
	}

	job.Plan, err = Partition(size, segments)
	if err != nil {
		return 0, err
	}

	s.setState(log, StateFetching)

	results, err := s.run(ctx, job, s.fetcher(url))
	if err != nil {
		return 0, err
	}

	s.setState(log, StateAssembling)

	n, err = out.Write(ctx, Assemble(job.Plan, results))
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", dest, err)
	}

	s.setState(log, StateComplete)

	return n, nil
}

// verifyAgainstBaseline downloads the resource again over a single connection
// and compares it with the multi-segment result.
func (s *Service) verifyAgainstBaseline(ctx context.Context, url string) error {
	baseline := baselinePath(s.opts.DestFilePath)

	if _, err := s.download(ctx, url, baseline, 1, 1); err != nil {
		return fmt.Errorf("baseline download: %w", err)
	}
	if !s.opts.KeepBaseline {
		defer os.Remove(baseline)
	}

	if err := VerifyFiles(s.opts.DestFilePath, baseline); err != nil {
		return err
	}

	s.log.Info().Str("file", s.opts.DestFilePath).Msg("checksum matches single-segment baseline")

	return nil
}

func (s *Service) setState(log zerolog.Logger, state State) {
	log.Debug().Stringer("state", state).Msg("state changed")
	if s.opts.OnStateChange != nil {
		s.opts.OnStateChange(state)
	}
}
