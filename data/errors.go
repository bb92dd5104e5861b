package data

import "errors"

// ErrInvalidCatalog is returned when a room catalog cannot drive placement.
var ErrInvalidCatalog = errors.New("invalid room catalog")
