package world

// Area geometry in tiles and pixels.
const (
	TileSize   = 16
	AreaWidth  = 32 // tiles
	AreaHeight = 24 // tiles

	PixelWidth  = AreaWidth * TileSize
	PixelHeight = AreaHeight * TileSize
)

// TileKind represents the terrain of a tile.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileWater
	TileMountain
	TileForest
	TileBuilding
	TileDoor
	TilePath
	TileKindCount // sentinel
)

// Tile is a single map tile. Door tiles carry the index of their exit.
type Tile struct {
	Kind TileKind
	Exit int // index into Area.Exits, -1 if none
}

// TileGrid is a 2D grid of tiles.
type TileGrid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewTileGrid creates a grid filled with grass.
func NewTileGrid(w, h int) *TileGrid {
	tiles := make([]Tile, w*h)
	for i := range tiles {
		tiles[i].Exit = -1
	}
	return &TileGrid{
		Width:  w,
		Height: h,
		Tiles:  tiles,
	}
}

// Get returns the tile at (x, y). Out-of-bounds reads return mountain so the
// map edge behaves like a wall.
func (g *TileGrid) Get(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Tile{Kind: TileMountain, Exit: -1}
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t Tile) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		g.Tiles[y*g.Width+x] = t
	}
}

// IsWalkable returns true if the player can stand on tile (x, y).
func (g *TileGrid) IsWalkable(x, y int) bool {
	switch g.Get(x, y).Kind {
	case TileWater, TileMountain, TileBuilding:
		return false
	default:
		return true
	}
}

// Describe returns a human-readable description of a tile.
func (t Tile) Describe() string {
	if t.Kind < TileKindCount {
		return tileDescriptions[t.Kind]
	}
	return "Unknown"
}

var tileDescriptions = [TileKindCount]string{
	TileGrass:    "Grass",
	TileWater:    "Water",
	TileMountain: "Mountain",
	TileForest:   "Forest - monsters lurk here",
	TileBuilding: "Building",
	TileDoor:     "Doorway",
	TilePath:     "Path",
}
