// Command chronicecho-tty plays Chronic Echo in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/chronic-echo/chronic_echo/assets"
	"github.com/chronic-echo/chronic_echo/internal/game"
	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/render"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses but not releases, so a press keeps its
// button down for a few ticks. Directions outlast the key repeat delay so
// walking is continuous; everything else is a one-tick tap.
const (
	tickInterval = 16 * time.Millisecond
	dpadHold     = 30
	tapHold      = 1
)

var runeButtons = map[rune]input.Buttons{
	'w': input.ButtonUp, 'k': input.ButtonUp,
	's': input.ButtonDown, 'j': input.ButtonDown,
	'a': input.ButtonLeft, 'h': input.ButtonLeft,
	'd': input.ButtonRight, 'l': input.ButtonRight,
	'z': input.ButtonA, ' ': input.ButtonA,
	'x': input.ButtonB,
	'c': input.ButtonX,
	'v': input.ButtonY,
	'q': input.ButtonL,
	'e': input.ButtonR,
}

var keyButtons = map[tcell.Key]input.Buttons{
	tcell.KeyUp:        input.ButtonUp,
	tcell.KeyDown:      input.ButtonDown,
	tcell.KeyLeft:      input.ButtonLeft,
	tcell.KeyRight:     input.ButtonRight,
	tcell.KeyEnter:     input.ButtonStart,
	tcell.KeyTab:       input.ButtonSelect,
	tcell.KeyBackspace: input.ButtonSelect,
}

// holds counts down the ticks each button stays pressed.
type holds [16]int

func (h *holds) press(b input.Buttons) {
	n := tapHold
	if b&input.DPad != 0 {
		n = dpadHold
	}
	for i := range h {
		if b&(1<<i) != 0 {
			h[i] = n
		}
	}
}

// release drops a direction early when the opposite one is pressed.
func (h *holds) release(b input.Buttons) {
	for i := range h {
		if b&(1<<i) != 0 {
			h[i] = 0
		}
	}
}

func (h *holds) tick() input.Buttons {
	var held input.Buttons
	for i := range h {
		if h[i] > 0 {
			held |= 1 << i
			h[i]--
		}
	}
	return held
}

var opposite = map[input.Buttons]input.Buttons{
	input.ButtonUp:    input.ButtonDown,
	input.ButtonDown:  input.ButtonUp,
	input.ButtonLeft:  input.ButtonRight,
	input.ButtonRight: input.ButtonLeft,
}

func buttonFor(ev *tcell.EventKey) (input.Buttons, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := runeButtons[ev.Rune()]
		return b, ok
	}
	b, ok := keyButtons[ev.Key()]
	return b, ok
}

type app struct {
	term     tcell.Screen
	screen   *render.Screen
	renderer render.TerminalRenderer
	session  *game.Session
	held     holds
}

func newApp(cfg game.Config) (*app, error) {
	data, err := game.LoadData(assets.Data)
	if err != nil {
		return nil, err
	}
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.HideCursor()

	screen := render.NewScreen()
	return &app{
		term:     term,
		screen:   screen,
		renderer: render.TerminalRenderer{Term: term},
		session:  game.NewSession(cfg, data, screen),
	}, nil
}

// handle applies one terminal event and reports whether to keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if b, ok := buttonFor(ev); ok {
			a.held.release(opposite[b])
			a.held.press(b)
		}
	case *tcell.EventResize:
		a.term.Sync()
	}
	return true
}

func (a *app) frame() {
	a.session.Update(a.held.tick())
	a.session.Render()
	a.term.Clear()
	a.renderer.Draw(a.screen)
	a.term.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.term.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

func main() {
	configPath := flag.String("config", "chronicecho.ini", "settings file")
	seed := flag.Uint64("seed", 0, "random seed, 0 for random (overrides config)")
	save := flag.String("save", "", "save file path (overrides config)")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: %v", err)
		}
		cfg = game.DefaultConfig()
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "save":
			cfg.SavePath = *save
		}
	})

	a, err := newApp(cfg.Normalize())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.term.Fini()

	a.run()
}
