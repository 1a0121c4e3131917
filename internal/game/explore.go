package game

import (
	"github.com/chronic-echo/chronic_echo/internal/history"
	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/world"
)

// tickGame runs one tick of play. Exactly one mode owns the input: battle,
// then dialogue, then the status menu, then free exploration.
func (s *Session) tickGame() {
	pressed := s.Pad.Pressed()
	switch {
	case s.Battle.Active():
		s.tickBattle(pressed)
	case s.Dialogue.Active():
		s.Dialogue.Tick(pressed)
		if ev, ok := s.Dialogue.TakeEvent(); ok {
			s.fireEvent(ev)
		}
	case s.menu.open:
		s.tickMenu(pressed)
	default:
		s.tickExplore(pressed, s.Pad.Held())
	}
}

// exploring reports whether the player is free to walk around.
func (s *Session) exploring() bool {
	return !s.Battle.Active() && !s.Dialogue.Active() && !s.menu.open
}

func (s *Session) tickExplore(pressed, held input.Buttons) {
	s.Player.Tick(s.Ticks)

	switch {
	case pressed.Has(input.ButtonL):
		s.rewind()
		return
	case pressed.Has(input.ButtonA):
		s.talk()
		return
	case pressed.Has(input.ButtonStart):
		s.openMenu()
		return
	case pressed.Has(input.ButtonSelect):
		s.SaveToConfig()
		return
	}

	var dx, dy int16
	speed := s.Config.MoveSpeed
	if held.Has(input.ButtonLeft) {
		dx -= speed
	}
	if held.Has(input.ButtonRight) {
		dx += speed
	}
	if held.Has(input.ButtonUp) {
		dy -= speed
	}
	if held.Has(input.ButtonDown) {
		dy += speed
	}
	if dx != 0 || dy != 0 {
		s.History.StopRewind()
		s.move(dx, dy)
	}

	s.History.Record(s.Player.X, s.Player.Y)
	s.World.UpdateCamera(s.Player.X, s.Player.Y)

	tile := s.playerTile()
	if tile == s.lastTile {
		return
	}
	s.lastTile = tile
	s.enterTile()
}

// move slides the player along each axis separately so walls can be hugged.
func (s *Session) move(dx, dy int16) {
	if dx != 0 {
		nx := clamp16(s.Player.X+dx, 0, world.MaxX)
		if !s.World.Blocked(nx+world.TileSize/2, s.Player.Y+world.TileSize/2) {
			s.Player.X = nx
		}
	}
	if dy != 0 {
		ny := clamp16(s.Player.Y+dy, 0, world.MaxY)
		if !s.World.Blocked(s.Player.X+world.TileSize/2, ny+world.TileSize/2) {
			s.Player.Y = ny
		}
	}
}

// enterTile handles doors and random encounters after a tile change.
func (s *Session) enterTile() {
	cx, cy := s.playerCenter()
	if exit, ok := s.World.ExitAt(cx, cy); ok {
		s.changeArea(exit)
		return
	}
	if kind, ok := s.rollEncounter(s.World.TileAt(cx, cy)); ok {
		s.startBattle(kind)
	}
}

// changeArea moves the player through an exit. The history is cleared so a
// rewind never lands in another area's coordinates.
func (s *Session) changeArea(exit world.Exit) {
	if !s.World.TransitionTo(exit.Area) {
		return
	}
	s.Player.SetPosition(exit.ArriveX, exit.ArriveY)
	s.History.Reset()
	s.World.UpdateCamera(s.Player.X, s.Player.Y)
	s.lastTile = s.playerTile()
	s.Log.Add(s.World.Area().Name, MsgInfo)
}

func (s *Session) rewind() {
	step := s.Config.RewindStep
	switch {
	case s.History.IsRewinding():
		s.Log.Add("The echo is still settling. Move first.", MsgWarning)
	case !s.History.CanRewindDistance(step):
		s.Log.Add("Not enough history to rewind.", MsgWarning)
	case !s.History.RewindByFrames(step, s.Player):
		s.Log.Addf(MsgWarning, "Rewind needs %d time energy.", step*history.RewindCostPerFrame)
	default:
		s.Log.Addf(MsgInfo, "Rewound %d frames.", step)
		s.lastTile = s.playerTile()
		s.World.UpdateCamera(s.Player.X, s.Player.Y)
	}
}

// talk starts a conversation with the nearest NPC, or prints its greeting
// when it has no dialogue tree.
func (s *Session) talk() {
	npc, ok := s.World.NearestNPC(s.Player.X, s.Player.Y)
	if !ok {
		return
	}
	if npc.Dialogue >= 0 && s.Dialogue.StartAt(npc.ID, npc.Dialogue) {
		s.History.StopRewind()
		return
	}
	s.Log.Addf(MsgSpeech, "%s: %s", npc.Name, npc.Greeting)
}

func clamp16(v, lo, hi int16) int16 {
	return max(lo, min(v, hi))
}
