package sliceutil

import "errors"

// ErrInvalidArgument is returned when a size, count or stride argument is outside its domain.
var ErrInvalidArgument = errors.New("sliceutil: invalid argument")
