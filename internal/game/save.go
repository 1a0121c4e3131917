package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/chronic-echo/chronic_echo/internal/player"
	"github.com/chronic-echo/chronic_echo/internal/progression"
	"github.com/chronic-echo/chronic_echo/internal/world"
	"github.com/google/uuid"
)

const saveVersion = 1

// SaveFile is the on-disk form of a session. Position history is not saved.
type SaveFile struct {
	Version     int                  `json:"version"`
	Session     uuid.UUID            `json:"session"`
	Area        int                  `json:"area"`
	Player      PlayerSave           `json:"player"`
	Progression progression.Snapshot `json:"progression"`
	Flags       map[int]bool         `json:"flags,omitempty"`
}

// PlayerSave holds the character fields not derived from progression.
type PlayerSave struct {
	X          int16                                          `json:"x"`
	Y          int16                                          `json:"y"`
	Health     int                                            `json:"health"`
	TimeEnergy int                                            `json:"time_energy"`
	Inventory  [player.MaxInventorySlots]player.InventorySlot `json:"inventory"`
}

// Snapshot captures the session.
func (s *Session) Snapshot() SaveFile {
	return SaveFile{
		Version: saveVersion,
		Session: s.ID,
		Area:    s.World.Current,
		Player: PlayerSave{
			X:          s.Player.X,
			Y:          s.Player.Y,
			Health:     s.Player.Health,
			TimeEnergy: s.Player.TimeEnergy,
			Inventory:  s.Player.Inventory.Slots,
		},
		Progression: s.Progression.Snapshot(),
		Flags:       s.Flags,
	}
}

// Save writes the session to path as JSON.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load replaces the session's game with the one stored at path. The
// session is left untouched on error.
func (s *Session) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}
	var f SaveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse save: %w", err)
	}
	return s.Restore(f)
}

// Restore applies a decoded save file. The file is fully checked before the
// session changes.
func (s *Session) Restore(f SaveFile) error {
	if f.Version != saveVersion {
		return fmt.Errorf("restore save: version %d, want %d", f.Version, saveVersion)
	}
	if f.Area < 0 || f.Area >= len(s.Data.Areas) {
		return fmt.Errorf("restore save: unknown area %d", f.Area)
	}
	prog, err := progression.Restore(s.Data.Equipment, f.Progression)
	if err != nil {
		return err
	}
	if err := checkPlayer(&s.Data.Areas[f.Area], f.Player); err != nil {
		return err
	}

	s.reset()
	s.ID = f.Session
	if f.Flags != nil {
		s.Flags = f.Flags
	}
	s.Progression = prog
	s.World.TransitionTo(f.Area)

	s.Player.Inventory.Slots = f.Player.Inventory
	s.Player.SetPosition(f.Player.X, f.Player.Y)
	s.Player.ApplyStats(prog.Stats, false)
	s.Player.Health = min(f.Player.Health, s.Player.MaxHealth)
	s.Player.TimeEnergy = min(f.Player.TimeEnergy, s.Player.MaxTimeEnergy)
	s.syncProgression()

	s.rebuildEngines()
	s.lastTile = s.playerTile()
	s.World.UpdateCamera(s.Player.X, s.Player.Y)
	return nil
}

// checkPlayer rejects saved character fields the game could never produce.
// Health and energy above the restored maximums are clamped by Restore.
func checkPlayer(area *world.AreaDef, p PlayerSave) error {
	if p.Health < 1 {
		return fmt.Errorf("restore save: health %d", p.Health)
	}
	if p.TimeEnergy < 0 {
		return fmt.Errorf("restore save: time energy %d", p.TimeEnergy)
	}
	for i, slot := range p.Inventory {
		if !slot.Valid() {
			return fmt.Errorf("restore save: slot %d holds %d of item %d", i, slot.Quantity, slot.Kind)
		}
	}
	if p.X < 0 || p.Y < 0 || p.X > world.MaxX || p.Y > world.MaxY {
		return fmt.Errorf("restore save: position (%d,%d) is off the map", p.X, p.Y)
	}
	cx, cy := int(p.X)+world.TileSize/2, int(p.Y)+world.TileSize/2
	if !area.ToTileGrid().IsWalkable(cx/world.TileSize, cy/world.TileSize) {
		return fmt.Errorf("restore save: position (%d,%d) is inside a wall", p.X, p.Y)
	}
	return nil
}

// SaveToConfig saves to the configured path and reports it in the log.
func (s *Session) SaveToConfig() {
	if err := s.Save(s.Config.SavePath); err != nil {
		log.Printf("save: %v", err)
		s.Log.Add("Save failed.", MsgDanger)
		return
	}
	s.Log.Add("Game saved.", MsgInfo)
}

// Continue loads the configured save for the title screen. A missing file
// is not an error worth logging.
func (s *Session) Continue() bool {
	err := s.Load(s.Config.SavePath)
	switch {
	case err == nil:
		s.continued = true
		s.Log.Add("Welcome back.", MsgInfo)
		return true
	case errors.Is(err, os.ErrNotExist):
		s.Log.Add("No save found.", MsgWarning)
	default:
		log.Printf("continue: %v", err)
		s.Log.Add("Save could not be loaded.", MsgDanger)
	}
	return false
}
