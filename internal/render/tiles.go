package render

import "github.com/chronic-echo/chronic_echo/internal/world"

// cellsPerTile is how many text cells one map tile spans on each axis.
const cellsPerTile = world.TileSize / CellSize

// RenderTileGrid writes the part of grid visible from camera (in pixels) into
// buf. Each tile covers a 2x2 block of cells.
func RenderTileGrid(buf *CellBuffer, grid *world.TileGrid, cameraX, cameraY int) {
	originCol := cameraX / CellSize
	originRow := cameraY / CellSize
	for row := 0; row < buf.Rows; row++ {
		for col := 0; col < buf.Cols; col++ {
			mc := originCol + col
			mr := originRow + row
			t := grid.Get(mc/cellsPerTile, mr/cellsPerTile)
			glyph, fg, bg := tileVisuals(t.Kind)
			// Draw the symbol once per tile, in its top-left cell.
			if mc%cellsPerTile != 0 || mr%cellsPerTile != 0 {
				glyph = ' '
			}
			buf.Set(col, row, glyph, fg, bg)
		}
	}
}

func tileVisuals(k world.TileKind) (glyph byte, fg, bg uint8) {
	switch k {
	case world.TileGrass:
		return '"', ColorLightGreen, ColorGreen
	case world.TileWater:
		return 247, ColorLightCyan, ColorBlue // ≈
	case world.TileMountain:
		return 30, ColorLightGray, ColorBrown // ▲
	case world.TileForest:
		return 6, ColorLightGreen, ColorGreen // ♠
	case world.TileBuilding:
		return 127, ColorLightRed, ColorDarkGray // ⌂
	case world.TileDoor:
		return '+', ColorYellow, ColorBrown
	case world.TilePath:
		return 176, ColorBrown, ColorLightGray // ░
	default:
		return ' ', ColorBlack, ColorBlack
	}
}
