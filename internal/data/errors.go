package data

import "errors"

// ErrInvalidArgument reports a caller-supplied size, fraction, or
// hyperparameter that cannot be satisfied. It is always returned
// synchronously and never retried or silently corrected. Test for it with
// errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
