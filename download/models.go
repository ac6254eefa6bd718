package download

import (
	"fmt"
	"time"
)

// Options represents the configuration for the download service.
type Options struct {
	// Segments is the number of byte ranges the resource is split into.
	Segments int
	// Concurrency bounds the number of ranges fetched at once. Zero means one
	// worker per segment.
	Concurrency int
	// Timeout applies to each HTTP request. Zero disables it.
	Timeout          time.Duration
	KeepAliveTimeout time.Duration
	UserAgent        string
	Headers          map[string]string
	DestFilePath     string
	// Verify runs a single-segment baseline download after the main one and
	// compares content hashes.
	Verify       bool
	KeepBaseline bool
	AWSProfile   string
	// OnStateChange, if set, is called on every state transition of a download.
	OnStateChange func(State)
}

// ByteRange is an inclusive span of byte offsets.
type ByteRange struct {
	Start int64
	End   int64
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int64 {
	return r.End - r.Start + 1
}

// Header returns the value of the Range request header for r.
func (r ByteRange) Header() string {
	return fmt.Sprintf("bytes=%d-%d", r.Start, r.End)
}

func (r ByteRange) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Plan is an ordered, contiguous partition of [0, TotalLength).
// It is only produced by Partition and never modified afterwards.
type Plan struct {
	ranges []ByteRange
	total  int64
}

func (p Plan) Len() int {
	return len(p.ranges)
}

func (p Plan) At(i int) ByteRange {
	return p.ranges[i]
}

// Ranges returns a copy of the planned ranges in ascending start order.
func (p Plan) Ranges() []ByteRange {
	out := make([]ByteRange, len(p.ranges))
	copy(out, p.ranges)
	return out
}

func (p Plan) TotalLength() int64 {
	return p.total
}

// RangeResult holds the bytes fetched for one range.
type RangeResult struct {
	Range ByteRange
	Bytes []byte
}

// ResultSet has one slot per plan position. Each slot is written by exactly
// one worker, so slots need no locking.
type ResultSet struct {
	slots []*RangeResult
}

func newResultSet(size int) *ResultSet {
	return &ResultSet{slots: make([]*RangeResult, size)}
}

func (rs *ResultSet) put(i int, result *RangeResult) {
	if rs.slots[i] != nil {
		panic(fmt.Sprintf("download: result slot %d written twice", i))
	}
	rs.slots[i] = result
}

// Len returns the number of filled slots.
func (rs *ResultSet) Len() int {
	n := 0
	for _, s := range rs.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// get returns the result stored for r, if any.
func (rs *ResultSet) get(r ByteRange) (*RangeResult, bool) {
	for _, s := range rs.slots {
		if s != nil && s.Range == r {
			return s, true
		}
	}
	return nil, false
}

// Job is the unit of work handed to the orchestrator for a single download.
type Job struct {
	ID          string
	URL         string
	Plan        Plan
	Concurrency int
}

// State is the lifecycle stage of one download.
type State int

const (
	StatePlanning State = iota
	StateFetching
	StateAssembling
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePlanning:
		return "planning"
	case StateFetching:
		return "fetching"
	case StateAssembling:
		return "assembling"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
