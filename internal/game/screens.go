package game

import (
	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/state"
)

// ScreenID names a top-level screen.
type ScreenID uint8

const (
	ScreenIntro ScreenID = iota
	ScreenFadeout
	ScreenBlack
	ScreenTitle
	ScreenTitleFadeout
	ScreenGame
	ScreenGameFadeout
	ScreenCount // sentinel
)

var screenNames = [ScreenCount]string{
	"Intro", "Fadeout", "Black", "Title", "TitleFadeout", "Game", "GameFadeout",
}

func (id ScreenID) String() string {
	if id < ScreenCount {
		return screenNames[id]
	}
	return "Unknown"
}

// Screen timings in ticks.
const (
	introFrames = 150
	blackFrames = 30
	fadeStep    = 4 // ticks per brightness level
)

type screens = state.Manager[ScreenID]

// newScreens registers the screen flow:
// Intro -> Fadeout -> Black -> Title -> TitleFadeout -> Game -> GameFadeout -> Title.
func newScreens(s *Session) *screens {
	m := state.NewManager[ScreenID]()

	m.Register(ScreenIntro, &state.Funcs[ScreenID]{
		Name:     ScreenIntro,
		OnEnter:  func(m *screens) { m.Data.ResetFrames(ScreenIntro); m.Data.Brightness = state.MaxBrightness },
		OnTick:   func(m *screens) { m.Data.AddFrame(ScreenIntro) },
		OnRender: func(m *screens) { s.drawIntro() },
		Decide: func(m *screens) ScreenID {
			if m.Data.Frames(ScreenIntro) >= introFrames {
				return ScreenFadeout
			}
			return ScreenIntro
		},
	})

	m.Register(ScreenFadeout, fadeOutScreen(ScreenFadeout, ScreenBlack, s.drawIntro))

	m.Register(ScreenBlack, &state.Funcs[ScreenID]{
		Name:     ScreenBlack,
		OnEnter:  func(m *screens) { m.Data.ResetFrames(ScreenBlack); m.Data.Brightness = 0 },
		OnTick:   func(m *screens) { m.Data.AddFrame(ScreenBlack) },
		OnRender: func(m *screens) { s.Canvas.SetScreenOn(false) },
		Decide: func(m *screens) ScreenID {
			if m.Data.Frames(ScreenBlack) >= blackFrames {
				return ScreenTitle
			}
			return ScreenBlack
		},
	})

	m.Register(ScreenTitle, &state.Funcs[ScreenID]{
		Name: ScreenTitle,
		OnEnter: func(m *screens) {
			m.Data.ResetFrames(ScreenTitle)
			m.Data.Brightness = 0
			s.continued = false
		},
		OnTick: func(m *screens) {
			fadeIn(m, ScreenTitle)
			if s.Pad.Pressed().Has(input.ButtonSelect) {
				s.Continue()
			}
		},
		OnRender: func(m *screens) { s.drawTitle() },
		Decide: func(m *screens) ScreenID {
			if s.continued || s.Pad.Pressed().Has(input.ButtonStart) {
				return ScreenTitleFadeout
			}
			return ScreenTitle
		},
	})

	m.Register(ScreenTitleFadeout, fadeOutScreen(ScreenTitleFadeout, ScreenGame, s.drawTitle))

	m.Register(ScreenGame, &state.Funcs[ScreenID]{
		Name: ScreenGame,
		OnEnter: func(m *screens) {
			m.Data.ResetFrames(ScreenGame)
			m.Data.Brightness = 0
			if !s.continued {
				s.reset()
				s.Log.Add("You wake in Chronos Village. Time feels thin here.", MsgInfo)
			}
			s.continued = false
		},
		OnTick: func(m *screens) {
			fadeIn(m, ScreenGame)
			if m.Data.Brightness >= state.MaxBrightness {
				s.tickGame()
			}
		},
		OnRender: func(m *screens) { s.drawGame() },
		Decide: func(m *screens) ScreenID {
			if s.gameOver {
				return ScreenGameFadeout
			}
			if m.Data.Brightness >= state.MaxBrightness && s.exploring() && s.Pad.Pressed().Has(input.ButtonB) {
				return ScreenGameFadeout
			}
			return ScreenGame
		},
		OnExit: func(m *screens) { s.History.StopRewind() },
	})

	m.Register(ScreenGameFadeout, fadeOutScreen(ScreenGameFadeout, ScreenTitle, s.drawGame))

	return m
}

// fadeOutScreen steps brightness down from full and moves on at black.
func fadeOutScreen(id, next ScreenID, draw func()) *state.Funcs[ScreenID] {
	return &state.Funcs[ScreenID]{
		Name:    id,
		OnEnter: func(m *screens) { m.Data.ResetFrames(id); m.Data.Brightness = state.MaxBrightness },
		OnTick: func(m *screens) {
			if m.Data.AddFrame(id)%fadeStep == 0 && m.Data.Brightness > 0 {
				m.Data.Brightness--
			}
		},
		OnRender: func(m *screens) { draw() },
		Decide: func(m *screens) ScreenID {
			if m.Data.Brightness <= 0 {
				return next
			}
			return id
		},
	}
}

func fadeIn(m *screens, id ScreenID) {
	if m.Data.AddFrame(id)%fadeStep == 0 && m.Data.Brightness < state.MaxBrightness {
		m.Data.Brightness++
	}
}
