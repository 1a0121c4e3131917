package game

import (
	"math/rand/v2"

	"github.com/chronic-echo/chronic_echo/internal/battle"
	"github.com/chronic-echo/chronic_echo/internal/dialogue"
	"github.com/chronic-echo/chronic_echo/internal/history"
	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/player"
	"github.com/chronic-echo/chronic_echo/internal/progression"
	"github.com/chronic-echo/chronic_echo/internal/render"
	"github.com/chronic-echo/chronic_echo/internal/state"
	"github.com/chronic-echo/chronic_echo/internal/world"
	"github.com/google/uuid"
)

// Canvas is what the screens draw on.
type Canvas interface {
	render.Sink
	render.Display
	SetColor(fg, bg uint8)
	FillRect(col, row, w, h int, glyph byte, fg, bg uint8)
	DrawMap(grid *world.TileGrid, cameraX, cameraY int)
}

// Starting kit for a new game.
var (
	startEquipment = []uint8{1, 2} // wooden sword, leather armor
	startPotions   = 3
)

// Session owns every subsystem of one running game. All of it is touched
// from the tick goroutine only.
type Session struct {
	ID          uuid.UUID
	Config      Config
	Data        *Data
	Player      *player.Character
	History     *history.Buffer
	Battle      *battle.Engine
	Dialogue    *dialogue.Interpreter
	Progression *progression.State
	World       *world.World
	Log         *MessageLog
	Pad         input.Pad
	Rand        battle.Roller
	States      *state.Manager[ScreenID]
	Canvas      Canvas
	Ticks       uint64
	Flags       map[int]bool // one-shot dialogue events already fired

	menu         menu
	lastTile     [2]int
	resultTicks  int
	levelsBefore int

	continued bool // Title loaded a save; Game keeps it
	gameOver  bool
}

// NewSession builds a session on the title sequence. A zero seed picks a
// random one.
func NewSession(cfg Config, data *Data, canvas Canvas) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := &Session{
		Config: cfg.Normalize(),
		Data:   data,
		Canvas: canvas,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Log:    NewMessageLog(32),
	}
	s.reset()
	s.States = newScreens(s)
	s.States.TransitionTo(ScreenIntro)
	return s
}

// reset starts a new game: fresh character, world and history.
func (s *Session) reset() {
	s.ID = uuid.New()
	s.Flags = make(map[int]bool)
	s.Log.Clear()
	s.menu = menu{}
	s.gameOver = false

	s.Progression = progression.NewState(s.Data.Equipment)
	for _, id := range startEquipment {
		if s.Progression.Grant(id) {
			item, _ := s.Data.Equipment.Lookup(id)
			s.Progression.Equip(s.Progression.Inventory.Len()-1, item.Slot)
		}
	}

	s.Player = player.New()
	s.Player.Inventory.AddItem(player.ItemPotion, startPotions)
	s.Player.ApplyStats(s.Progression.Stats, true)
	s.syncProgression()

	s.World = world.New(s.Data.Areas)
	s.History = history.New()
	s.rebuildEngines()
	s.lastTile = s.playerTile()
	s.World.UpdateCamera(s.Player.X, s.Player.Y)
}

// rebuildEngines wires battle and dialogue to the current player, world and
// progression.
func (s *Session) rebuildEngines() {
	s.Battle = battle.NewEngine(s.Player, s.Progression, s.Rand)
	s.Battle.OnMessage = func(text string) { s.Log.Add(text, MsgInfo) }
	s.Dialogue = dialogue.New(s.Data.Dialogue, s.World)
	s.Dialogue.SetSpeed(s.Config.RevealSpeed)
}

// Update latches held buttons and advances one tick.
func (s *Session) Update(held input.Buttons) {
	s.Pad.Latch(held)
	s.Ticks++
	s.States.Tick()
}

// Render draws the active screen.
func (s *Session) Render() {
	s.Canvas.Clear()
	s.Canvas.SetScreenOn(true)
	s.States.Render()
	s.Canvas.SetBrightness(s.States.Data.Brightness)
}

// Screen returns the active screen.
func (s *Session) Screen() ScreenID {
	id, _ := s.States.Active()
	return id
}

// syncProgression pushes the character's pools back to the stat sheet.
func (s *Session) syncProgression() {
	s.Progression.SetCurrent(s.Player.Health, s.Progression.Stats.CurrentMP)
}

// applyProgression mirrors the stat sheet onto the character, refilling
// when restore is set.
func (s *Session) applyProgression(restore bool) {
	s.Player.ApplyStats(s.Progression.Stats, restore)
	s.syncProgression()
}

func (s *Session) playerTile() [2]int {
	cx, cy := s.playerCenter()
	return [2]int{int(cx) / world.TileSize, int(cy) / world.TileSize}
}

// playerCenter is the point checked for collision, exits and encounters.
func (s *Session) playerCenter() (int16, int16) {
	return s.Player.X + world.TileSize/2, s.Player.Y + world.TileSize/2
}
