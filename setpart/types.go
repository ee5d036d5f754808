package setpart

import (
	"errors"

	"github.com/katalvlaran/lvpart/bell"
)

// ErrEmptySequence is returned by New for a zero-length input.
var ErrEmptySequence = errors.New("setpart: sequence must be non-empty")

// Option configures a Generator.
type Option func(*Options)

// Options holds Generator parameters.
//
// Fields:
//   - Table — the count table used for Len. nil selects bell.Default.
type Options struct {
	Table *bell.Table
}

// DefaultOptions returns Options using the shared bell.Default table.
func DefaultOptions() Options {
	return Options{Table: bell.Default}
}

// WithTable selects the count table. A nil table keeps the default.
func WithTable(t *bell.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
		}
	}
}
