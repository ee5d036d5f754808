package bell

import (
	"errors"
	"fmt"
)

// MaxLevel bounds the levels a Table will compute. Level MaxLevel-1 ends at
// roughly two million cells; every Bell number that fits in a uint64 lies far
// below it.
const MaxLevel = 2048

// Sentinel errors for count table lookups.
var (
	// ErrInvalidArgument is the parent of every precondition violation.
	ErrInvalidArgument = errors.New("bell: invalid argument")

	// ErrZeroElements is returned when n < 1 is requested.
	ErrZeroElements = fmt.Errorf("%w: element count must be at least 1", ErrInvalidArgument)

	// ErrZeroGroups is returned when m < 1 is requested.
	ErrZeroGroups = fmt.Errorf("%w: open group count must be at least 1", ErrInvalidArgument)

	// ErrLevelTooLarge is returned when n+m-2 reaches MaxLevel and n > 1.
	ErrLevelTooLarge = fmt.Errorf("%w: n+m-2 must stay below %d", ErrInvalidArgument, MaxLevel)

	// ErrOverflow indicates the requested count does not fit in a uint64.
	ErrOverflow = errors.New("bell: count overflows uint64")
)

// Option configures a Table at construction time.
type Option func(*Options)

// Options holds construction parameters for NewTable.
//
// Fields:
//   - Prefill — if > 0, every cell needed for Bell(Prefill) is computed
//     eagerly, i.e. levels 0..Prefill-1.
type Options struct {
	Prefill int
}

// DefaultOptions returns Options with no eager computation.
func DefaultOptions() Options {
	return Options{Prefill: 0}
}

// WithPrefill precomputes the table up to Bell(n). Non-positive values are
// ignored and values above MaxLevel are clamped.
func WithPrefill(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Prefill = min(n, MaxLevel)
		}
	}
}
