package generation

import "errors"

// ErrNoRooms is returned when partitioning leaves no room to build on
var ErrNoRooms = errors.New("generation: no rooms")
