package download

import "fmt"

// Partition splits totalLength bytes into segments contiguous ranges. Every
// range spans totalLength/segments bytes except the last, which also takes the
// remainder.
func Partition(totalLength int64, segments int) (Plan, error) {
	switch {
	case totalLength < 1:
		return Plan{}, fmt.Errorf("%w: total length must be positive, got %d", ErrInvalidInput, totalLength)
	case segments < 1:
		return Plan{}, fmt.Errorf("%w: segments must be at least 1, got %d", ErrInvalidInput, segments)
	case int64(segments) > totalLength:
		return Plan{}, fmt.Errorf("%w: %d segments exceed total length %d", ErrInvalidInput, segments, totalLength)
	}

	baseSize := totalLength / int64(segments)
	remainder := totalLength % int64(segments)

	ranges := make([]ByteRange, segments)
	var start int64
	for i := range ranges {
		size := baseSize
		if i == segments-1 {
			size += remainder
		}
		ranges[i] = ByteRange{Start: start, End: start + size - 1}
		start += size
	}

	return Plan{ranges: ranges, total: totalLength}, nil
}
