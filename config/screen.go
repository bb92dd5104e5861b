package config

// Viewer layout configuration
const (
	// Tile size in pixels
	TileSize = 12

	// Side panel width in pixels (legend and seed)
	PanelWidth = 160
)

// GetWindowSize returns the window size needed to show a whole dungeon of the
// given dimensions in tiles, plus a one tile margin for the outer walls
func GetWindowSize(dungeonWidth, dungeonHeight int) (width, height int) {
	return (dungeonWidth+2)*TileSize + PanelWidth, (dungeonHeight + 2) * TileSize
}
