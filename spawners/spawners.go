package spawners

import (
	"fmt"

	"ebiten-dungeon/grid"
)

// Kind tells the spawner what sort of thing a placement is
type Kind int

const (
	KindFeature Kind = iota // fixed piece on the room centre (player start, exit, chest, merchant)
	KindObject              // interior object
	KindEnemy               // monster
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindFeature:
		return "feature"
	case KindObject:
		return "object"
	case KindEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// PlacementOffset moves a spawned thing from the cell corner to its centre
var PlacementOffset = struct{ X, Y float64 }{X: 0.5, Y: 0.5}

// Owner identifies the room a placement belongs to
type Owner struct {
	Center grid.Cell
	Role   string
}

// Placement is one thing the spawner has to instantiate
type Placement struct {
	Kind  Kind
	Name  string
	Owner Owner

	// Anchor is the cell the footprint is laid out from
	Anchor grid.Cell

	// Cells lists every cell the placement occupies, anchor included
	Cells []grid.Cell

	// Rotation in degrees (0, -90, -180 or -270), only drawn for enemies
	Rotation int
}

// Position returns the anchor plus the sub-cell placement offset
func (p Placement) Position() (float64, float64) {
	return float64(p.Anchor.X) + PlacementOffset.X, float64(p.Anchor.Y) + PlacementOffset.Y
}

// Spawner instantiates placements chosen by the placement engine
type Spawner interface {
	Spawn(p Placement)
	Clear()
}

// Recorder is a Spawner that keeps every placement in memory
type Recorder struct {
	placements []Placement
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Spawn records the placement
func (r *Recorder) Spawn(p Placement) {
	r.placements = append(r.placements, p)
}

// Clear forgets every recorded placement
func (r *Recorder) Clear() {
	r.placements = nil
}

// Placements returns the recorded placements in spawn order
func (r *Recorder) Placements() []Placement {
	out := make([]Placement, len(r.placements))
	copy(out, r.placements)
	return out
}

// Count returns how many placements of the given kind were recorded
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, p := range r.placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

type discard struct{}

func (discard) Spawn(Placement) {}
func (discard) Clear()          {}

// Discard is a Spawner that drops every placement
var Discard Spawner = discard{}
