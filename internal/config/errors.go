package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("osu-query: invalid config")
	ErrLoadConfig    = errors.New("osu-query: load config failed")
)
