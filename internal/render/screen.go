package render

import "github.com/chronic-echo/chronic_echo/internal/world"

// Screen geometry: a 256x224 display split into 8px text cells.
const (
	ScreenWidth  = 256
	ScreenHeight = 224
	CellSize     = 8
	Cols         = ScreenWidth / CellSize  // 32
	Rows         = ScreenHeight / CellSize // 28

	MaxSprites    = 128
	MaxBrightness = 15
)

// SpriteFlags modify how a sprite is drawn.
type SpriteFlags uint8

const (
	FlipH SpriteFlags = 1 << iota
	FlipV
	Front // drawn over the text layer
)

// Sink receives draw calls from the screens.
type Sink interface {
	DrawText(col, row int, s string)
	SetSprite(id int, x, y int16, flags SpriteFlags, tile, palette uint8)
	ShowSprite(id int, visible bool)
	Clear()
}

// Display controls the output as a whole.
type Display interface {
	SetScreenOn(on bool)
	SetBrightness(level int)
}

// Sprite is one hardware-style sprite slot.
type Sprite struct {
	X, Y    int16
	Flags   SpriteFlags
	Tile    uint8
	Palette uint8
	Visible bool
}

// Screen is the software display shared by the front-ends: a text layer in a
// CellBuffer plus a fixed table of sprites. It implements Sink and Display.
type Screen struct {
	Buf     *CellBuffer
	Sprites [MaxSprites]Sprite

	fg, bg     uint8
	brightness int
	on         bool
}

// NewScreen returns a blank screen that is on at full brightness.
func NewScreen() *Screen {
	return &Screen{
		Buf:        NewCellBuffer(Cols, Rows),
		fg:         ColorWhite,
		bg:         ColorBlack,
		brightness: MaxBrightness,
		on:         true,
	}
}

// SetColor sets the colors used by later DrawText calls.
func (s *Screen) SetColor(fg, bg uint8) {
	s.fg, s.bg = fg&15, bg&15
}

// DrawText writes s at the given cell in the current colors.
func (s *Screen) DrawText(col, row int, text string) {
	s.Buf.WriteString(col, row, text, s.fg, s.bg)
}

// FillRect paints a block of cells.
func (s *Screen) FillRect(col, row, w, h int, glyph byte, fg, bg uint8) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			s.Buf.Set(x, y, glyph, fg, bg)
		}
	}
}

// DrawMap renders the part of grid seen from the camera into the text layer.
func (s *Screen) DrawMap(grid *world.TileGrid, cameraX, cameraY int) {
	RenderTileGrid(s.Buf, grid, cameraX, cameraY)
}

// SetSprite updates a sprite slot without changing its visibility.
// Unknown ids are ignored.
func (s *Screen) SetSprite(id int, x, y int16, flags SpriteFlags, tile, palette uint8) {
	if id < 0 || id >= MaxSprites {
		return
	}
	sp := &s.Sprites[id]
	sp.X, sp.Y = x, y
	sp.Flags = flags
	sp.Tile = tile
	sp.Palette = palette & 15
}

// ShowSprite toggles a sprite slot.
func (s *Screen) ShowSprite(id int, visible bool) {
	if id < 0 || id >= MaxSprites {
		return
	}
	s.Sprites[id].Visible = visible
}

// HideSprites hides every sprite slot.
func (s *Screen) HideSprites() {
	for i := range s.Sprites {
		s.Sprites[i].Visible = false
	}
}

// Clear blanks the text layer and hides all sprites.
func (s *Screen) Clear() {
	s.Buf.Clear()
	s.HideSprites()
	s.fg, s.bg = ColorWhite, ColorBlack
}

// SetScreenOn turns output on or off. An off screen draws black.
func (s *Screen) SetScreenOn(on bool) { s.on = on }

// SetBrightness sets the master brightness, clamped to 0..15.
func (s *Screen) SetBrightness(level int) {
	s.brightness = max(0, min(level, MaxBrightness))
}

// On reports whether the screen is on.
func (s *Screen) On() bool { return s.on }

// Brightness returns the master brightness.
func (s *Screen) Brightness() int { return s.brightness }

// Scale returns the brightness as a 0..1 multiplier, 0 when the screen is off.
func (s *Screen) Scale() float32 {
	if !s.on {
		return 0
	}
	return float32(s.brightness) / MaxBrightness
}

// SpriteTile describes the glyph used for a sprite tile id.
type SpriteTile struct {
	Glyph byte
	FG    uint8
}

// SpriteSheet maps sprite tile ids to glyphs. Palette 0 keeps the tile's own
// color; any other palette overrides it.
var SpriteSheet = map[uint8]SpriteTile{
	0:  {'s', ColorLightGreen},   // slime
	1:  {'g', ColorGreen},        // goblin
	2:  {'O', ColorBrown},        // orc
	3:  {'S', ColorWhite},        // skeleton
	4:  {'D', ColorLightRed},     // dragon
	5:  {'L', ColorLightMagenta}, // time lord
	8:  {'@', ColorYellow},       // player
	9:  {16, ColorLightCyan},     // choice cursor
	10: {'v', ColorLightGray},
	11: {'m', ColorBrown},
	12: {'E', ColorLightCyan},
	13: {'G', ColorLightBlue},
}

// PlayerTile is the sprite tile of the player character.
const PlayerTile = 8

// CursorTile is the sprite tile of the menu cursor.
const CursorTile = 9

// Resolve returns the glyph and color for a sprite.
func (sp Sprite) Resolve() (glyph byte, fg uint8) {
	t, ok := SpriteSheet[sp.Tile]
	if !ok {
		t = SpriteTile{'?', ColorWhite}
	}
	if sp.Palette != 0 {
		t.FG = sp.Palette
	}
	return t.Glyph, t.FG
}
