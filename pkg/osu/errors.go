package osu

import "errors"

// ErrMissingArgument is returned when a required identifier is empty.
// No request is issued in that case.
var ErrMissingArgument = errors.New("osu: missing required argument")
