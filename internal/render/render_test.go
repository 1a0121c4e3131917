package render

import (
	"testing"

	"github.com/chronic-echo/chronic_echo/internal/world"
	"github.com/gdamore/tcell/v2"
)

func TestDrawTextUsesCurrentColors(t *testing.T) {
	s := NewScreen()
	s.SetColor(ColorYellow, ColorBlue)
	s.DrawText(2, 3, "HP")

	c := s.Buf.Get(2, 3)
	if c.Glyph != 'H' || c.FG != ColorYellow || c.BG != ColorBlue {
		t.Errorf("cell = %+v", c)
	}
	if got := s.Buf.Get(3, 3).Glyph; got != 'P' {
		t.Errorf("second glyph = %q", got)
	}
}

func TestWriteStringConvertsToCP437(t *testing.T) {
	b := NewCellBuffer(4, 1)
	b.WriteString(0, 0, "►▲日", ColorWhite, ColorBlack)
	want := []byte{16, 30, '?'}
	for i, w := range want {
		if got := b.Get(i, 0).Glyph; got != w {
			t.Errorf("cell %d = %d, want %d", i, got, w)
		}
	}
}

func TestSprites(t *testing.T) {
	s := NewScreen()
	s.SetSprite(1, 40, 50, FlipH, PlayerTile, 0)
	if s.Sprites[1].Visible {
		t.Error("SetSprite changed visibility")
	}
	s.ShowSprite(1, true)
	s.SetSprite(MaxSprites, 0, 0, 0, 0, 0)
	s.ShowSprite(-1, true)

	sp := s.Sprites[1]
	if !sp.Visible || sp.X != 40 || sp.Y != 50 || sp.Flags != FlipH {
		t.Errorf("sprite = %+v", sp)
	}
	if glyph, fg := sp.Resolve(); glyph != '@' || fg != ColorYellow {
		t.Errorf("resolve = %q %d", glyph, fg)
	}

	sp.Palette = ColorLightRed
	if _, fg := sp.Resolve(); fg != ColorLightRed {
		t.Errorf("palette override ignored, fg = %d", fg)
	}

	s.Clear()
	if s.Sprites[1].Visible {
		t.Error("Clear left sprite visible")
	}
}

func TestBrightness(t *testing.T) {
	s := NewScreen()
	tests := []struct {
		level int
		want  int
	}{
		{-3, 0},
		{7, 7},
		{15, 15},
		{40, 15},
	}
	for _, tt := range tests {
		s.SetBrightness(tt.level)
		if got := s.Brightness(); got != tt.want {
			t.Errorf("SetBrightness(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	s.SetBrightness(15)
	if s.Scale() != 1 {
		t.Errorf("full scale = %v", s.Scale())
	}
	s.SetScreenOn(false)
	if s.Scale() != 0 {
		t.Errorf("screen off scale = %v", s.Scale())
	}
}

func TestRenderTileGrid(t *testing.T) {
	grid := world.NewTileGrid(world.AreaWidth, world.AreaHeight)
	grid.Set(1, 0, world.Tile{Kind: world.TileWater, Exit: -1})

	buf := NewCellBuffer(Cols, Rows)
	RenderTileGrid(buf, grid, 0, 0)

	water := buf.Get(2, 0)
	if water.Glyph != 247 || water.BG != ColorBlue {
		t.Errorf("water cell = %+v", water)
	}
	if c := buf.Get(3, 1); c.Glyph != ' ' || c.BG != ColorBlue {
		t.Errorf("water fill cell = %+v", c)
	}

	// Scrolled one tile right, the water tile sits at the origin.
	RenderTileGrid(buf, grid, world.TileSize, 0)
	if c := buf.Get(0, 0); c.Glyph != 247 {
		t.Errorf("scrolled cell = %+v", c)
	}
}

func TestTerminalRenderer(t *testing.T) {
	term := tcell.NewSimulationScreen("UTF-8")
	if err := term.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer term.Fini()
	term.SetSize(Cols, Rows)

	s := NewScreen()
	s.DrawText(0, 0, "Hi")
	s.SetSprite(0, 3*CellSize, 2*CellSize, 0, PlayerTile, 0)
	s.ShowSprite(0, true)

	r := &TerminalRenderer{Term: term}
	r.Draw(s)

	if ch, _, _, _ := term.GetContent(1, 0); ch != 'i' {
		t.Errorf("text cell = %q", ch)
	}
	if ch, _, _, _ := term.GetContent(3, 2); ch != '@' {
		t.Errorf("sprite cell = %q", ch)
	}
}

func TestFaded(t *testing.T) {
	if got := Faded(ColorWhite, 1); got != Palette[ColorWhite] {
		t.Errorf("full brightness = %v", got)
	}
	if got := Faded(ColorWhite, 0); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("black = %v", got)
	}
	if Color(ColorWhite+16) != Palette[ColorWhite] {
		t.Error("indices above 15 should wrap")
	}
}
