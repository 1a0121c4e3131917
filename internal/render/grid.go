package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
	return &CellBuffer{Cols: cols, Rows: rows, Cells: cells}
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one
// cell and is converted to CP437.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		b.Set(x+offset, y, ToCP437(ch), fg, bg)
		offset++
	}
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
	frame   *ebiten.Image // offscreen target, dimmed as a whole
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Size returns the pixel size of a full Screen at this renderer's cell size.
func (r *GridRenderer) Size() (int, int) {
	return Cols * r.CellW, Rows * r.CellH
}

// DrawScreen renders the text layer and the visible sprites of s, then
// applies its brightness. Sprites without the Front flag sit under the text.
func (r *GridRenderer) DrawScreen(dst *ebiten.Image, s *Screen) {
	w, h := r.Size()
	if r.frame == nil || r.frame.Bounds().Dx() != w || r.frame.Bounds().Dy() != h {
		r.frame = ebiten.NewImage(w, h)
	}
	r.frame.Clear()

	r.drawSprites(r.frame, s, false)
	r.Draw(r.frame, s.Buf)
	r.drawSprites(r.frame, s, true)

	var op ebiten.DrawImageOptions
	k := s.Scale()
	op.ColorScale.Scale(k, k, k, 1)
	dst.DrawImage(r.frame, &op)
}

func (r *GridRenderer) drawSprites(dst *ebiten.Image, s *Screen, front bool) {
	sx := float64(r.CellW) / CellSize
	sy := float64(r.CellH) / CellSize
	for _, sp := range s.Sprites {
		if !sp.Visible || (sp.Flags&Front != 0) != front {
			continue
		}
		glyph, fg := sp.Resolve()
		r.drawSprite(dst, glyph, fg, sp.Flags, float64(sp.X)*sx, float64(sp.Y)*sy)
	}
}

// Draw renders the entire CellBuffer. Black backgrounds are left
// transparent so sprites drawn first show through.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Color(cell.BG))
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Color(cell.FG))
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// drawSprite renders one 16x16 sprite glyph at a pixel position.
func (r *GridRenderer) drawSprite(dst *ebiten.Image, glyph byte, fg uint8, flags SpriteFlags, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	size := 2 * float64(r.CellW) / GlyphWidth
	var op ebiten.DrawImageOptions
	if flags&FlipH != 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(GlyphWidth, 0)
	}
	if flags&FlipV != 0 {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, GlyphHeight)
	}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(Color(fg))
	dst.DrawImage(r.Atlas.Glyph(glyph), &op)
}
