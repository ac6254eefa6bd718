package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Partition_CoversWholeResource(t *testing.T) {
	const maxLength = 64

	for total := int64(1); total <= maxLength; total++ {
		for segments := 1; int64(segments) <= total; segments++ {
			plan, err := Partition(total, segments)
			require.NoError(t, err)
			require.Equal(t, segments, plan.Len())
			assert.Equal(t, total, plan.TotalLength())

			baseSize := total / int64(segments)
			remainder := total % int64(segments)

			var sum int64
			for i, r := range plan.Ranges() {
				if i == 0 {
					assert.Equal(t, int64(0), r.Start)
				} else {
					assert.Equal(t, plan.At(i-1).End+1, r.Start, "total=%d segments=%d index=%d", total, segments, i)
				}

				if i == segments-1 {
					assert.Equal(t, baseSize+remainder, r.Len())
					assert.Equal(t, total-1, r.End)
				} else {
					assert.Equal(t, baseSize, r.Len())
				}
				sum += r.Len()
			}
			assert.Equal(t, total, sum)
		}
	}
}

func Test_Partition_LastRangeAbsorbsRemainder(t *testing.T) {
	plan, err := Partition(100, 3)
	require.NoError(t, err)

	assert.Equal(t, []ByteRange{
		{Start: 0, End: 32},
		{Start: 33, End: 65},
		{Start: 66, End: 99},
	}, plan.Ranges())
}

func Test_Partition_SingleSegment(t *testing.T) {
	plan, err := Partition(4096, 1)
	require.NoError(t, err)

	assert.Equal(t, []ByteRange{{Start: 0, End: 4095}}, plan.Ranges())
	assert.Equal(t, "bytes=0-4095", plan.At(0).Header())
}

func Test_Partition_InvalidInput(t *testing.T) {
	testCases := map[string]struct {
		total    int64
		segments int
	}{
		"zero segments":            {total: 10, segments: 0},
		"negative segments":        {total: 10, segments: -2},
		"more segments than bytes": {total: 3, segments: 5},
		"zero total length":        {total: 0, segments: 1},
		"negative total length":    {total: -1, segments: 1},
	}

	for scenario, tc := range testCases {
		t.Run(scenario, func(t *testing.T) {
			_, err := Partition(tc.total, tc.segments)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func Test_Plan_RangesReturnsCopy(t *testing.T) {
	plan, err := Partition(10, 2)
	require.NoError(t, err)

	ranges := plan.Ranges()
	ranges[0] = ByteRange{Start: 7, End: 9}

	assert.Equal(t, ByteRange{Start: 0, End: 4}, plan.At(0))
}
