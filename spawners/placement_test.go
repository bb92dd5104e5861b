package spawners

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/data"
	"ebiten-dungeon/grid"
	"ebiten-dungeon/testutil"
)

func block(x0, y0, w, h int) []grid.Cell {
	var cells []grid.Cell
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			cells = append(cells, grid.Cell{X: x, Y: y})
		}
	}
	return cells
}

var testOwner = Owner{Center: grid.Cell{X: 50, Y: 50}, Role: data.RoleGeneric}

func TestFootprint(t *testing.T) {
	anchor := grid.Cell{X: 3, Y: 3}

	tests := []struct {
		name          string
		width, height int
		want          []grid.Cell
	}{
		{name: "single", width: 1, height: 1, want: []grid.Cell{{X: 3, Y: 3}}},
		{name: "row", width: 3, height: 1, want: []grid.Cell{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}},
		{name: "column_grows_down", width: 1, height: 2, want: []grid.Cell{{X: 3, Y: 3}, {X: 3, Y: 2}}},
		{name: "block_row_by_row", width: 2, height: 2, want: []grid.Cell{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Footprint(anchor, tt.width, tt.height))
		})
	}
}

func TestPlaceRandom_WideFootprintOnlyFitsLeftAnchor(t *testing.T) {
	free := NewFreeCells([]grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	rec := NewRecorder()
	// quantity draw, then anchor (1,0) which lacks (2,0), then anchor (0,0)
	rng := &testutil.ScriptedRand{Ints: []int{0, 1, 0}}
	obj := data.InteriorObject{Name: "bench", Width: 2, Height: 1, MinQuantity: 1, MaxQuantity: 1, Placement: data.PlaceRandom}

	placed := NewEngine(rng, rec).PlaceRandom(obj, free, testOwner)

	require.Equal(t, 1, placed)
	require.Len(t, rec.Placements(), 1)
	p := rec.Placements()[0]
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, p.Anchor)
	assert.Equal(t, []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}, p.Cells)
	assert.Equal(t, KindObject, p.Kind)
	assert.Equal(t, testOwner, p.Owner)
	assert.Equal(t, 0, free.Len())
	assert.Equal(t, 3, rng.IntsUsed())

	x, y := p.Position()
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 0.5, y)
}

func TestPlaceRandom_GivesUpSilentlyAfterRetries(t *testing.T) {
	free := NewFreeCells([]grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	rec := NewRecorder()

	ints := []int{0} // quantity
	for i := 0; i <= RandomRetries; i++ {
		ints = append(ints, 1) // always the right hand cell
	}
	rng := &testutil.ScriptedRand{Ints: ints}
	obj := data.InteriorObject{Name: "bench", Width: 2, Height: 1, MinQuantity: 1, MaxQuantity: 1, Placement: data.PlaceRandom}

	placed := NewEngine(rng, rec).PlaceRandom(obj, free, testOwner)

	assert.Equal(t, 0, placed)
	assert.Empty(t, rec.Placements())
	assert.Equal(t, 2, free.Len())
	assert.Equal(t, len(ints), rng.IntsUsed())
}

func TestPlaceRandom_EmptyFreeList(t *testing.T) {
	free := NewFreeCells(nil)
	rec := NewRecorder()
	obj := data.InteriorObject{Name: "lantern", Width: 1, Height: 1, MinQuantity: 2, MaxQuantity: 2, Placement: data.PlaceRandom}

	placed := NewEngine(rand.New(rand.NewSource(1)), rec).PlaceRandom(obj, free, testOwner)

	assert.Equal(t, 0, placed)
	assert.Empty(t, rec.Placements())
}

func TestPlaceRandom_QuantityIsInclusive(t *testing.T) {
	obj := data.InteriorObject{Name: "lantern", Width: 1, Height: 1, MinQuantity: 1, MaxQuantity: 3, Placement: data.PlaceRandom}
	seen := map[int]bool{}

	for seed := int64(0); seed < 200; seed++ {
		free := NewFreeCells(block(0, 0, 10, 10))
		placed := NewEngine(rand.New(rand.NewSource(seed)), nil).PlaceRandom(obj, free, testOwner)

		require.GreaterOrEqual(t, placed, 1)
		require.LessOrEqual(t, placed, 3)
		seen[placed] = true
	}

	assert.True(t, seen[1])
	assert.True(t, seen[3], "upper bound never drawn")
}

func TestPlaceEnemy_QuantityIsInclusive(t *testing.T) {
	enemy := data.Enemy{Name: "bat", MinQuantity: 2, MaxQuantity: 2}
	free := NewFreeCells(block(0, 0, 6, 6))
	rec := NewRecorder()

	placed := NewEngine(rand.New(rand.NewSource(3)), rec).PlaceEnemy(enemy, free, testOwner)

	require.Equal(t, 2, placed)
	assert.Equal(t, 2, rec.Count(KindEnemy))
	assert.Equal(t, 34, free.Len())
	for _, p := range rec.Placements() {
		assert.Contains(t, rotations, p.Rotation)
		assert.Len(t, p.Cells, 1)
	}
}

func TestNearWall(t *testing.T) {
	free := NewFreeCells(block(0, 0, 3, 3))

	tests := []struct {
		name string
		cell grid.Cell
		want bool
	}{
		{name: "middle", cell: grid.Cell{X: 1, Y: 1}, want: false},
		{name: "corner", cell: grid.Cell{X: 0, Y: 0}, want: true},
		{name: "left_edge", cell: grid.Cell{X: 0, Y: 1}, want: true},
		// clockwise counting lets the present left neighbours pull the count back down
		{name: "bottom_edge", cell: grid.Cell{X: 1, Y: 0}, want: false},
		{name: "isolated", cell: grid.Cell{X: 10, Y: 10}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearWall(tt.cell, free))
		})
	}
}

func TestPlaceNearWall_RejectsInteriorAnchors(t *testing.T) {
	free := NewFreeCells(block(0, 0, 3, 3))
	rec := NewRecorder()
	// quantity, then the middle cell (index 4) twice, then the corner (index 0)
	rng := &testutil.ScriptedRand{Ints: []int{0, 4, 4, 0}}
	obj := data.InteriorObject{Name: "box", Width: 1, Height: 1, MinQuantity: 1, MaxQuantity: 1, Placement: data.PlaceNearWall}

	placed := NewEngine(rng, rec).PlaceNearWall(obj, free, testOwner)

	require.Equal(t, 1, placed)
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, rec.Placements()[0].Anchor)
	assert.False(t, free.Has(grid.Cell{X: 0, Y: 0}))
	assert.Equal(t, 8, free.Len())
}

func TestPlaceNearWall_AcceptsWhenLastCellHugsWall(t *testing.T) {
	free := NewFreeCells(block(0, 0, 3, 3))
	// anchor (1,0) is not near a wall by the heuristic, its row ends on the corner (2,0)
	require.False(t, NearWall(grid.Cell{X: 1, Y: 0}, free))
	require.True(t, NearWall(grid.Cell{X: 2, Y: 0}, free))

	rec := NewRecorder()
	rng := &testutil.ScriptedRand{Ints: []int{0, 1}} // quantity, then index 1 which is (1,0)
	obj := data.InteriorObject{Name: "grave", Width: 2, Height: 1, MinQuantity: 1, MaxQuantity: 1, Placement: data.PlaceNearWall}

	placed := NewEngine(rng, rec).PlaceNearWall(obj, free, testOwner)

	require.Equal(t, 1, placed)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}}, rec.Placements()[0].Cells)
	assert.Equal(t, 7, free.Len())
}

// checkingSpawner verifies that each placement consumed cells that were free
// right before and never handed out twice
type checkingSpawner struct {
	t        *testing.T
	free     *FreeCells
	original map[grid.Cell]bool
	used     map[grid.Cell]bool
	count    int
}

func (s *checkingSpawner) Spawn(p Placement) {
	s.count++
	for _, c := range p.Cells {
		assert.True(s.t, s.original[c], "cell %v was never free", c)
		assert.False(s.t, s.used[c], "cell %v placed twice", c)
		assert.False(s.t, s.free.Has(c), "cell %v still listed free after placement", c)
		s.used[c] = true
	}
}

func (s *checkingSpawner) Clear() {}

func TestPlacement_NeverOverlaps(t *testing.T) {
	objects := []data.InteriorObject{
		{Name: "grave_1x2", Width: 1, Height: 2, MinQuantity: 2, MaxQuantity: 6, Placement: data.PlaceNearWall},
		{Name: "grave_2x1", Width: 2, Height: 1, MinQuantity: 2, MaxQuantity: 6, Placement: data.PlaceNearWall},
		{Name: "table", Width: 3, Height: 2, MinQuantity: 1, MaxQuantity: 4, Placement: data.PlaceRandom},
		{Name: "lantern", Width: 1, Height: 1, MinQuantity: 3, MaxQuantity: 8, Placement: data.PlaceRandom},
	}
	enemy := data.Enemy{Name: "skeleton", MinQuantity: 2, MaxQuantity: 6}

	for seed := int64(1); seed <= 50; seed++ {
		cells := block(0, 0, 8, 7)
		free := NewFreeCells(cells)
		original := map[grid.Cell]bool{}
		for _, c := range cells {
			original[c] = true
		}
		spawner := &checkingSpawner{t: t, free: free, original: original, used: map[grid.Cell]bool{}}
		engine := NewEngine(rand.New(rand.NewSource(seed)), spawner)

		total := 0
		for _, obj := range objects {
			if obj.Placement == data.PlaceNearWall {
				total += engine.PlaceNearWall(obj, free, testOwner)
			} else {
				total += engine.PlaceRandom(obj, free, testOwner)
			}
		}
		total += engine.PlaceEnemy(enemy, free, testOwner)

		assert.Equal(t, total, spawner.count)
		assert.Equal(t, len(cells)-len(spawner.used), free.Len(), "seed %d", seed)
	}
}

func TestPlaceFeature_LeavesFreeListAlone(t *testing.T) {
	rec := NewRecorder()
	engine := NewEngine(&testutil.ScriptedRand{}, rec)

	engine.PlaceFeature("exit", grid.Cell{X: 4, Y: 4}, testOwner)

	require.Len(t, rec.Placements(), 1)
	assert.Equal(t, KindFeature, rec.Placements()[0].Kind)
	assert.Equal(t, "exit", rec.Placements()[0].Name)

	rec.Clear()
	assert.Empty(t, rec.Placements())
}
