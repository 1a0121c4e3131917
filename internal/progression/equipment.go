package progression

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Slot is an equipment slot type.
type Slot uint8

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotAccessory1
	SlotAccessory2
	SlotTimeDevice
	SlotSpecial
	SlotCount // sentinel
)

var slotNames = [SlotCount]string{
	SlotWeapon:     "weapon",
	SlotArmor:      "armor",
	SlotAccessory1: "accessory1",
	SlotAccessory2: "accessory2",
	SlotTimeDevice: "time_device",
	SlotSpecial:    "special",
}

func (s Slot) String() string {
	if s < SlotCount {
		return slotNames[s]
	}
	return "unknown"
}

// UnmarshalText lets the equipment file name slots instead of numbering them.
func (s *Slot) UnmarshalText(b []byte) error {
	name := strings.ToLower(string(b))
	for i, n := range slotNames {
		if n == name {
			*s = Slot(i)
			return nil
		}
	}
	return fmt.Errorf("unknown equipment slot %q", b)
}

// MarshalText writes the slot name.
func (s Slot) MarshalText() ([]byte, error) {
	if s >= SlotCount {
		return nil, fmt.Errorf("invalid equipment slot %d", s)
	}
	return []byte(slotNames[s]), nil
}

// Bonus holds signed stat deltas granted while an item is equipped.
type Bonus struct {
	HP             int `json:"hp,omitempty"`
	MP             int `json:"mp,omitempty"`
	Attack         int `json:"attack,omitempty"`
	Defense        int `json:"defense,omitempty"`
	Magic          int `json:"magic,omitempty"`
	MagicDef       int `json:"magic_def,omitempty"`
	Speed          int `json:"speed,omitempty"`
	Luck           int `json:"luck,omitempty"`
	TimePower      int `json:"time_power,omitempty"`
	TimeRegen      int `json:"time_regen,omitempty"`
	TimeEfficiency int `json:"time_efficiency,omitempty"`
}

func (b Bonus) applyTo(s *CharacterStats) {
	s.MaxHP += b.HP
	s.MaxMP += b.MP
	s.Attack += b.Attack
	s.Defense += b.Defense
	s.Magic += b.Magic
	s.MagicDef += b.MagicDef
	s.Speed += b.Speed
	s.Luck += b.Luck
	s.TimePower += b.TimePower
	s.TimeRegen += b.TimeRegen
	s.TimeEfficiency += b.TimeEfficiency
}

// Equipment is one item definition, or an equipped copy of one.
type Equipment struct {
	ID       uint8  `json:"id"`
	Name     string `json:"name"`
	Slot     Slot   `json:"slot"`
	Rarity   uint8  `json:"rarity"`
	LevelReq int    `json:"level_req"`
	Bonus    Bonus  `json:"bonus"`
	Equipped bool   `json:"equipped,omitempty"`
}

// Database maps item ids to definitions. Id 0 means "no item". Treated as
// read-only after load.
type Database map[uint8]Equipment

// LoadDatabase parses the equipment table from JSON.
func LoadDatabase(data []byte) (Database, error) {
	var items []Equipment
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse equipment: %w", err)
	}
	db := make(Database, len(items))
	for _, it := range items {
		if it.ID == 0 {
			return nil, fmt.Errorf("equipment %q: id 0 is reserved", it.Name)
		}
		if _, dup := db[it.ID]; dup {
			return nil, fmt.Errorf("duplicate equipment id %d", it.ID)
		}
		if it.LevelReq < 1 {
			it.LevelReq = 1
		}
		it.Equipped = false
		db[it.ID] = it
	}
	return db, nil
}

// Lookup returns the definition for id.
func (db Database) Lookup(id uint8) (Equipment, bool) {
	eq, ok := db[id]
	return eq, ok
}

// Name returns the display name for id.
func (db Database) Name(id uint8) string {
	if eq, ok := db[id]; ok {
		return eq.Name
	}
	return "???"
}
