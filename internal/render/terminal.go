package render

import "github.com/gdamore/tcell/v2"

// TerminalRenderer draws a Screen onto a tcell terminal, one text cell per
// terminal cell.
type TerminalRenderer struct {
	Term tcell.Screen
}

// Draw copies the text layer and the visible sprites to the terminal. The
// caller is responsible for Show.
func (r *TerminalRenderer) Draw(s *Screen) {
	k := s.Scale()
	for row := 0; row < s.Buf.Rows; row++ {
		for col := 0; col < s.Buf.Cols; col++ {
			c := s.Buf.Get(col, row)
			ch := CP437ToUnicode[c.Glyph]
			if ch == 0 {
				ch = ' '
			}
			r.Term.SetContent(col, row, ch, nil, cellStyle(c.FG, c.BG, k))
		}
	}
	for _, sp := range s.Sprites {
		if !sp.Visible {
			continue
		}
		col, row := int(sp.X)/CellSize, int(sp.Y)/CellSize
		if col < 0 || col >= s.Buf.Cols || row < 0 || row >= s.Buf.Rows {
			continue
		}
		glyph, fg := sp.Resolve()
		bg := s.Buf.Get(col, row).BG
		r.Term.SetContent(col, row, CP437ToUnicode[glyph], nil, cellStyle(fg, bg, k))
	}
}

func cellStyle(fg, bg uint8, k float32) tcell.Style {
	return tcell.StyleDefault.Foreground(termColor(fg, k)).Background(termColor(bg, k))
}

func termColor(i uint8, k float32) tcell.Color {
	c := Faded(i, k)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
