package scenario

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownOp is returned for a step whose op is not insert, search,
	// wait or settle.
	ErrUnknownOp = errors.New("unknown step op")

	// ErrMissingValue is returned for an insert or search step without a
	// value.
	ErrMissingValue = errors.New("step needs a value")

	ErrInvalidDt = errors.New("dt must be positive")

	// ErrNotSettled is returned when a settle step exceeds its max_wait.
	ErrNotSettled = errors.New("tree did not settle")

	ErrUnknownPreset = errors.New("unknown scenario preset")
)
