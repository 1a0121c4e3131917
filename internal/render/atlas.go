package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas builds the atlas at startup. Printable ASCII comes from
// basicfont.Face7x13; box drawing, shading and the terrain symbols are
// painted by hand.
func NewFontAtlas() *FontAtlas {
	img := paintAtlas()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x, y := cellOrigin(code)
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func cellOrigin(code int) (int, int) {
	return (code % AtlasCols) * GlyphWidth, (code / AtlasCols) * GlyphHeight
}

// paintAtlas renders all 256 glyphs into a CPU image.
func paintAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx, cy := cellOrigin(code)
		r := CP437ToUnicode[code]

		if r >= 32 && r <= 126 {
			drawFontGlyph(img, face, cx, cy, r)
			continue
		}
		if bc, ok := boxChars[byte(code)]; ok {
			drawBoxGlyph(img, cx, cy, bc)
			continue
		}
		if paint, ok := painters[byte(code)]; ok {
			paint(pen{img, cx, cy})
		}
	}
	return img
}

// drawFontGlyph renders one ASCII character, 7x13 centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxChars maps CP437 codes to single-line connections: left, right, top, bottom.
var boxChars = map[byte][4]bool{
	179: {false, false, true, true},  // │
	180: {true, false, true, true},   // ┤
	191: {true, false, false, true},  // ┐
	192: {false, true, true, false},  // └
	193: {true, true, true, false},   // ┴
	194: {true, true, false, true},   // ┬
	195: {false, true, true, true},   // ├
	196: {true, true, false, false},  // ─
	197: {true, true, true, true},    // ┼
	217: {true, false, true, false},  // ┘
	218: {false, true, false, true},  // ┌
}

// drawBoxGlyph draws 2px lines from the cell center toward each connected edge.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, c [4]bool) {
	p := pen{img, cellX, cellY}
	if c[0] {
		p.rect(0, 7, 9, 2)
	}
	if c[1] {
		p.rect(7, 7, GlyphWidth-7, 2)
	}
	if c[2] {
		p.rect(7, 0, 2, 9)
	}
	if c[3] {
		p.rect(7, 7, 2, GlyphHeight-7)
	}
}

// pen paints white pixels relative to a glyph cell.
type pen struct {
	img    *image.NRGBA
	cx, cy int
}

var white = color.NRGBA{255, 255, 255, 255}

func (p pen) dot(x, y int) {
	if x >= 0 && x < GlyphWidth && y >= 0 && y < GlyphHeight {
		p.img.SetNRGBA(p.cx+x, p.cy+y, white)
	}
}

func (p pen) rect(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			p.dot(i, j)
		}
	}
}

func (p pen) pattern(keep func(x, y int) bool) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if keep(x, y) {
				p.dot(x, y)
			}
		}
	}
}

// painters draw the non-ASCII glyphs used by the map, the HUD and the menus.
var painters = map[byte]func(p pen){
	176: func(p pen) { p.pattern(func(x, y int) bool { return (x+y)%4 == 0 }) }, // ░
	177: func(p pen) { p.pattern(func(x, y int) bool { return (x+y)%2 == 0 }) }, // ▒
	178: func(p pen) { p.pattern(func(x, y int) bool { return (x+y)%4 != 0 }) }, // ▓
	219: func(p pen) { p.rect(0, 0, GlyphWidth, GlyphHeight) },                  // █
	220: func(p pen) { p.rect(0, GlyphHeight/2, GlyphWidth, GlyphHeight/2) },    // ▄
	221: func(p pen) { p.rect(0, 0, GlyphWidth/2, GlyphHeight) },                // ▌
	222: func(p pen) { p.rect(GlyphWidth/2, 0, GlyphWidth/2, GlyphHeight) },     // ▐
	223: func(p pen) { p.rect(0, 0, GlyphWidth, GlyphHeight/2) },                // ▀
	254: func(p pen) { p.rect(4, 4, 8, 8) },                                      // ■
	3: func(p pen) { // ♥
		p.rect(3, 4, 4, 3)
		p.rect(9, 4, 4, 3)
		for i := 0; i < 6; i++ {
			p.rect(2+i, 6+i, 12-2*i, 1)
		}
	},
	6: func(p pen) { // ♠ forest
		for i := 0; i < 8; i++ {
			half := i/2 + 1
			p.rect(8-half, 2+i, 2*half, 1)
		}
		p.rect(7, 10, 2, 4)
	},
	15: func(p pen) { // ☼ time energy
		p.rect(5, 5, 6, 6)
		p.rect(7, 1, 2, 3)
		p.rect(7, 12, 2, 3)
		p.rect(1, 7, 3, 2)
		p.rect(12, 7, 3, 2)
	},
	16: func(p pen) { // ► cursor
		for i := 0; i < 6; i++ {
			p.rect(4, 2+i, i+1, 1)
			p.rect(4, 13-i, i+1, 1)
		}
	},
	30: func(p pen) { // ▲ mountain
		for i := 0; i < 12; i++ {
			p.rect(8-(i+1)/2, 2+i, i+1, 1)
		}
	},
	31: func(p pen) { // ▼ more text
		for i := 0; i < 8; i++ {
			p.rect(4+i/2, 4+i, 8-i, 1)
		}
	},
	247: func(p pen) { // ≈ water
		p.pattern(func(x, y int) bool { return (y == 5 || y == 10) && (x/2)%2 == (y/5)%2 })
		p.pattern(func(x, y int) bool { return (y == 6 || y == 11) && (x/2)%2 != (y/5)%2 })
	},
	127: func(p pen) { // ⌂ house
		for i := 0; i < 5; i++ {
			p.rect(7-i, 2+i, 2+2*i, 1)
		}
		p.rect(3, 7, 2, 7)
		p.rect(11, 7, 2, 7)
		p.rect(3, 12, 10, 2)
	},
}
