package game

import (
	"fmt"

	"github.com/chronic-echo/chronic_echo/internal/battle"
	"github.com/chronic-echo/chronic_echo/internal/dialogue"
	"github.com/chronic-echo/chronic_echo/internal/player"
	"github.com/chronic-echo/chronic_echo/internal/progression"
	"github.com/chronic-echo/chronic_echo/internal/render"
)

// Sprite slots.
const (
	spritePlayer   = 0
	spriteNPCFirst = 1
	spriteEnemy    = 100
)

// Console rows.
const (
	hudRow    = 0
	logRow    = 25
	logLines  = 3
	barWidth  = 10
	menuLeft  = 2
	menuTop   = 2
	choiceCol = 17
)

func (s *Session) drawIntro() {
	s.Canvas.SetColor(render.ColorLightGray, render.ColorBlack)
	s.Canvas.DrawText(8, 14, "ECHO WORKS PRESENTS")
}

func (s *Session) drawTitle() {
	c := s.Canvas
	c.SetColor(render.ColorLightCyan, render.ColorBlack)
	c.DrawText(10, 10, "CHRONIC ECHO")
	c.SetColor(render.ColorDarkGray, render.ColorBlack)
	c.DrawText(7, 12, "a story told twice")
	c.SetColor(render.ColorWhite, render.ColorBlack)
	c.DrawText(10, 20, "PRESS START")
	c.SetColor(render.ColorLightGray, render.ColorBlack)
	c.DrawText(7, 22, "SELECT: CONTINUE")
	s.drawLog()
}

func (s *Session) drawGame() {
	switch {
	case s.Battle.Active():
		s.drawBattle()
	case s.menu.open:
		s.drawMenu()
	default:
		s.drawWorld()
		if s.Dialogue.Active() {
			s.drawDialogue()
		}
	}
}

func (s *Session) drawWorld() {
	c := s.Canvas
	area := s.World.Area()
	c.DrawMap(area.Grid, s.World.CameraX, s.World.CameraY)

	camX, camY := int16(s.World.CameraX), int16(s.World.CameraY)
	c.SetSprite(spritePlayer, s.Player.X-camX, s.Player.Y-camY, render.Front, render.PlayerTile, 0)
	c.ShowSprite(spritePlayer, true)
	for i, npc := range s.World.NPCs() {
		id := spriteNPCFirst + i
		c.SetSprite(id, npc.X-camX, npc.Y-camY, render.Front, uint8(npc.SpriteID), 0)
		c.ShowSprite(id, true)
	}

	s.drawHUD()
	if !s.Dialogue.Active() {
		s.drawLog()
	}
}

func (s *Session) drawHUD() {
	c := s.Canvas
	p := s.Player
	c.FillRect(0, hudRow, render.Cols, 1, ' ', render.ColorWhite, render.ColorBlack)
	c.SetColor(render.ColorLightRed, render.ColorBlack)
	c.DrawText(0, hudRow, fmt.Sprintf("♥%3d/%d", p.Health, p.MaxHealth))
	c.SetColor(render.ColorLightCyan, render.ColorBlack)
	c.DrawText(10, hudRow, fmt.Sprintf("☼%2d/%d", p.TimeEnergy, p.MaxTimeEnergy))
	c.SetColor(render.ColorYellow, render.ColorBlack)
	c.DrawText(19, hudRow, fmt.Sprintf("LV%d", p.Level))
	if s.History.IsRewinding() {
		c.SetColor(render.ColorLightMagenta, render.ColorBlack)
		c.DrawText(25, hudRow, "ECHO")
	}
}

func (s *Session) drawLog() {
	c := s.Canvas
	c.FillRect(0, logRow, render.Cols, logLines, ' ', render.ColorWhite, render.ColorBlack)
	for i, msg := range s.Log.Recent(logLines) {
		c.SetColor(msgColor(msg.Priority), render.ColorBlack)
		c.DrawText(1, logRow+i, msg.Text)
	}
}

func msgColor(p MsgPriority) uint8 {
	switch p {
	case MsgDanger:
		return render.ColorLightRed
	case MsgWarning:
		return render.ColorYellow
	case MsgReward:
		return render.ColorLightGreen
	case MsgSpeech:
		return render.ColorWhite
	default:
		return render.ColorCyan
	}
}

func (s *Session) drawDialogue() {
	c := s.Canvas
	d := s.Dialogue
	c.FillRect(dialogue.BoxX, dialogue.BoxY, dialogue.BoxWidth, dialogue.BoxHeight, ' ', render.ColorWhite, render.ColorBlue)

	c.SetColor(render.ColorYellow, render.ColorBlue)
	c.DrawText(dialogue.BoxX+1, dialogue.BoxY, d.Speaker())
	c.SetColor(render.ColorWhite, render.ColorBlue)
	for i, line := range dialogue.Wrap(d.VisibleText(), dialogue.LineWidth) {
		if i >= dialogue.BoxHeight-1 {
			break
		}
		c.DrawText(dialogue.BoxX+1, dialogue.BoxY+1+i, line)
	}

	switch d.State() {
	case dialogue.StateWaiting:
		if s.Ticks/16%2 == 0 {
			c.DrawText(dialogue.BoxX+dialogue.BoxWidth-2, dialogue.BoxY+dialogue.BoxHeight-1, "▼")
		}
	case dialogue.StateChoosing:
		n := d.ChoiceCount()
		top := dialogue.BoxY - n - 1
		c.FillRect(choiceCol-1, top-1, render.Cols-choiceCol, n+2, ' ', render.ColorWhite, render.ColorBlue)
		for i := 0; i < n; i++ {
			fg := uint8(render.ColorWhite)
			if !d.ChoiceEnabled(i) {
				fg = render.ColorDarkGray
			}
			c.SetColor(fg, render.ColorBlue)
			c.DrawText(choiceCol+1, top+i, d.ChoiceText(i))
		}
		c.SetColor(render.ColorYellow, render.ColorBlue)
		c.DrawText(choiceCol, top+d.Selected(), "►")
	}
}

func (s *Session) drawBattle() {
	c := s.Canvas
	b := s.Battle
	e := b.Enemy()
	p := s.Player

	c.SetColor(render.ColorLightRed, render.ColorBlack)
	c.DrawText(2, 2, fmt.Sprintf("%s  Lv%d", e.Name, e.Level))
	drawBar(c, 2, 3, e.Health, e.MaxHealth, render.ColorRed)

	c.SetSprite(spriteEnemy, 120, 64, render.Front, uint8(e.SpriteID), 0)
	c.ShowSprite(spriteEnemy, e.Alive())

	if n := b.TimeStopRemaining(); n > 0 {
		c.SetColor(render.ColorLightMagenta, render.ColorBlack)
		c.DrawText(2, 12, fmt.Sprintf("TIME STOP %d", n))
	}
	if n := b.SlowMotionRemaining(); n > 0 {
		c.SetColor(render.ColorLightBlue, render.ColorBlack)
		c.DrawText(16, 12, fmt.Sprintf("SLOW %d", n))
	}

	c.SetColor(render.ColorWhite, render.ColorBlack)
	c.DrawText(2, 14, fmt.Sprintf("YOU  Lv%d  Turn %d", p.Level, b.Turn()))
	drawBar(c, 2, 15, p.Health, p.MaxHealth, render.ColorLightGreen)
	drawBar(c, 2, 16, p.TimeEnergy, p.MaxTimeEnergy, render.ColorLightCyan)

	switch b.State() {
	case battle.StateActive:
		c.SetColor(render.ColorLightGray, render.ColorBlack)
		c.DrawText(2, 18, "A Attack      B Defend")
		c.DrawText(2, 19, fmt.Sprintf("X Stop (%d)   Y Slow (%d)", battle.TimeStopCost, battle.SlowMotionCost))
		c.DrawText(2, 20, fmt.Sprintf("L Rewind (%d) R Escape", battle.RewindCost))
	case battle.StateVictory:
		c.SetColor(render.ColorLightGreen, render.ColorBlack)
		c.DrawText(11, 19, "VICTORY!")
	case battle.StateDefeat:
		c.SetColor(render.ColorLightRed, render.ColorBlack)
		c.DrawText(11, 19, "DEFEATED")
	case battle.StateEscape:
		c.SetColor(render.ColorYellow, render.ColorBlack)
		c.DrawText(10, 19, "ESCAPED...")
	}
	s.drawLog()
}

// drawBar renders value/maximum as a bar followed by the numbers.
func drawBar(c Canvas, col, row, value, maximum int, fg uint8) {
	filled := 0
	if maximum > 0 {
		filled = barWidth * max(value, 0) / maximum
	}
	c.FillRect(col, row, filled, 1, 219, fg, render.ColorBlack)
	c.FillRect(col+filled, row, barWidth-filled, 1, 176, render.ColorDarkGray, render.ColorBlack)
	c.SetColor(fg, render.ColorBlack)
	c.DrawText(col+barWidth+1, row, fmt.Sprintf("%d/%d", value, maximum))
}

func (s *Session) drawMenu() {
	c := s.Canvas
	st := s.Progression.Stats
	c.FillRect(1, 1, render.Cols-2, render.Rows-2, ' ', render.ColorWhite, render.ColorBlue)

	c.SetColor(render.ColorYellow, render.ColorBlue)
	c.DrawText(menuLeft, menuTop, fmt.Sprintf("LV %d  EXP %d  NEXT %d", st.Level, st.Experience, st.ExpToNext))
	c.SetColor(render.ColorLightGray, render.ColorBlue)
	c.DrawText(menuLeft, menuTop+1, fmt.Sprintf("ATK %d DEF %d MAG %d SPD %d", st.Attack, st.Defense, st.Magic, st.Speed))
	c.DrawText(menuLeft, menuTop+2, fmt.Sprintf("POINTS %d  BAG %d/%d", st.StatPoints, s.Progression.Inventory.Len(), progression.MaxInventory))

	row := menuTop + 4
	for i, r := range menuRows {
		c.SetColor(render.ColorWhite, render.ColorBlue)
		if i == s.menu.cursor {
			c.SetColor(render.ColorYellow, render.ColorBlue)
			c.DrawText(menuLeft, row+i, "►")
		}
		c.DrawText(menuLeft+2, row+i, s.rowLabel(r))
	}

	c.SetColor(render.ColorLightGray, render.ColorBlue)
	c.DrawText(menuLeft, render.Rows-3, "A use/equip X remove B close")
}

func (s *Session) rowLabel(r menuRow) string {
	switch r.kind {
	case rowSlot:
		name := "-"
		if eq := s.Progression.Equipped[r.slot]; eq != nil {
			name = eq.Name
		}
		return fmt.Sprintf("%-11s %s", r.slot, name)
	case rowStat:
		return fmt.Sprintf("+ %s", progression.StatName(r.stat))
	default:
		return fmt.Sprintf("%-11s x%d", player.ItemName(r.item), s.Player.Inventory.Count(r.item))
	}
}

// TileBelow describes the tile under the player, for the debug overlay.
func (s *Session) TileBelow() string {
	cx, cy := s.playerCenter()
	t := s.World.TileAt(cx, cy)
	return t.Describe()
}
