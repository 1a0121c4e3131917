package game

import (
	"fmt"

	"github.com/chronic-echo/chronic_echo/internal/dialogue"
	"github.com/chronic-echo/chronic_echo/internal/history"
	"gopkg.in/ini.v1"
)

// Config holds the tunables read from chronicecho.ini and the command line.
type Config struct {
	// [display]
	Scale int
	Debug bool

	// [game]
	Seed        uint64 // 0 picks a random seed
	RewindStep  int    // frames rewound per L press while exploring
	RevealSpeed int    // dialogue characters per tick
	SavePath    string
	MoveSpeed   int16 // pixels per tick
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Scale:       3,
		RewindStep:  8,
		RevealSpeed: dialogue.DefaultSpeed,
		SavePath:    "chronicecho.sav",
		MoveSpeed:   2,
	}
}

var iniOptions = ini.LoadOptions{
	InsensitiveSections:     true,
	InsensitiveKeys:         true,
	SkipUnrecognizableLines: true,
}

// LoadConfig reads an INI file over the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return fromINI(f), nil
}

// ParseConfig reads INI text over the defaults.
func ParseConfig(data []byte) (Config, error) {
	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	return fromINI(f), nil
}

func fromINI(f *ini.File) Config {
	c := DefaultConfig()

	display := f.Section("display")
	c.Scale = display.Key("scale").MustInt(c.Scale)
	c.Debug = display.Key("debug").MustBool(c.Debug)

	g := f.Section("game")
	c.Seed = g.Key("seed").MustUint64(c.Seed)
	c.RewindStep = g.Key("rewind_step").MustInt(c.RewindStep)
	c.RevealSpeed = g.Key("reveal_speed").MustInt(c.RevealSpeed)
	c.SavePath = g.Key("save_path").MustString(c.SavePath)
	c.MoveSpeed = int16(g.Key("move_speed").MustInt(int(c.MoveSpeed)))

	return c.Normalize()
}

// Normalize pulls out-of-range values back into their valid ranges.
func (c Config) Normalize() Config {
	c.Scale = max(1, min(c.Scale, 8))
	c.RewindStep = max(1, min(c.RewindStep, history.MaxRewindDistance))
	c.RevealSpeed = max(dialogue.MinSpeed, min(c.RevealSpeed, dialogue.MaxSpeed))
	c.MoveSpeed = max(1, min(c.MoveSpeed, 8))
	return c
}
