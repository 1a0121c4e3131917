package progression

import "fmt"

// Snapshot is the persistent form of a State. Equipment is stored by id,
// 0 for an empty slot.
type Snapshot struct {
	Base            CharacterStats   `json:"base"`
	CurrentHP       int              `json:"current_hp"`
	CurrentMP       int              `json:"current_mp"`
	Equipped        [SlotCount]uint8 `json:"equipped"`
	Inventory       []uint8          `json:"inventory"`
	TotalExperience uint32           `json:"total_experience"`
	LevelsGained    int              `json:"levels_gained"`
}

// Snapshot captures s.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Base:            s.Base,
		CurrentHP:       s.Stats.CurrentHP,
		CurrentMP:       s.Stats.CurrentMP,
		Inventory:       append([]uint8(nil), s.Inventory.Items...),
		TotalExperience: s.TotalExperience,
		LevelsGained:    s.LevelsGained,
	}
	for slot, eq := range s.Equipped {
		if eq != nil {
			snap.Equipped[slot] = eq.ID
		}
	}
	return snap
}

// Restore rebuilds a State from snap against db. Every id must exist and
// equipped items must sit in their own slot.
func Restore(db Database, snap Snapshot) (*State, error) {
	if snap.Base.Level < 1 || snap.Base.Level > MaxLevel {
		return nil, fmt.Errorf("restore progression: level %d out of range", snap.Base.Level)
	}
	if len(snap.Inventory) > MaxInventory {
		return nil, fmt.Errorf("restore progression: %d items, max %d", len(snap.Inventory), MaxInventory)
	}
	s := NewState(db)
	s.Base = snap.Base
	s.TotalExperience = snap.TotalExperience
	s.LevelsGained = snap.LevelsGained

	for _, id := range snap.Inventory {
		if !s.Grant(id) {
			return nil, fmt.Errorf("restore progression: unknown item %d", id)
		}
	}
	for slot, id := range snap.Equipped {
		if id == 0 {
			continue
		}
		item, ok := db.Lookup(id)
		if !ok || item.Slot != Slot(slot) {
			return nil, fmt.Errorf("restore progression: item %d cannot sit in %s", id, Slot(slot))
		}
		item.Equipped = true
		s.Equipped[slot] = &item
	}

	s.Stats.CurrentHP, s.Stats.CurrentMP = snap.CurrentHP, snap.CurrentMP
	s.recalculate()
	return s, nil
}
