package config

import "errors"

// ErrInvalidConfig is returned by Validate for degenerate generation inputs.
var ErrInvalidConfig = errors.New("invalid dungeon config")
