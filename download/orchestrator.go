package download

import (
	"context"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// run fetches every range of job.Plan concurrently and waits for all of them.
// If any fetch fails, the remaining ones are cancelled, run still waits for
// them to return, and the first error is reported with a nil ResultSet.
func (s *Service) run(ctx context.Context, job *Job, fetch fetchFunc) (*ResultSet, error) {
	plan := job.Plan
	concurrency := job.Concurrency
	if concurrency <= 0 || concurrency > plan.Len() {
		concurrency = plan.Len()
	}

	log := s.log.With().Str("job", job.ID).Logger()
	results := newResultSet(plan.Len())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i := range plan.Len() {
		r := plan.At(i)

		eg.Go(func() error {
			chunk, err := fetch(ctx, r)
			if err != nil {
				log.Debug().Err(err).Stringer("range", r).Msg("range failed")
				return err
			}

			results.put(i, &RangeResult{Range: r, Bytes: chunk})
			log.Debug().Stringer("range", r).Str("bytes", humanize.Bytes(uint64(len(chunk)))).Msg("range downloaded")
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
