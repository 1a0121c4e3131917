package progression

// MaxInventory is the number of equipment items that can be carried.
const MaxInventory = 16

// Inventory is a dense, ordered list of carried equipment ids.
type Inventory struct {
	Items []uint8
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int { return len(inv.Items) }

// Full reports whether another item would not fit.
func (inv *Inventory) Full() bool { return len(inv.Items) >= MaxInventory }

// Add appends id. Returns false when the inventory is full.
func (inv *Inventory) Add(id uint8) bool {
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, id)
	return true
}

// RemoveAt removes the item at i, shifting the rest down.
func (inv *Inventory) RemoveAt(i int) (uint8, bool) {
	if i < 0 || i >= len(inv.Items) {
		return 0, false
	}
	id := inv.Items[i]
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return id, true
}

// At returns the id at i.
func (inv *Inventory) At(i int) (uint8, bool) {
	if i < 0 || i >= len(inv.Items) {
		return 0, false
	}
	return inv.Items[i], true
}

// State is a character's progression: the stat sheet without equipment
// (Base), the totals with equipment applied (Stats), what is equipped and
// what is carried.
type State struct {
	Base            CharacterStats
	Stats           CharacterStats
	Equipped        [SlotCount]*Equipment
	Inventory       Inventory
	TotalExperience uint32
	LevelsGained    int

	db Database
}

// NewState returns a level 1 character that knows the given item database.
func NewState(db Database) *State {
	s := &State{
		Base: BaseStats(),
		db:   db,
	}
	s.Stats = s.Base
	return s
}

// Database returns the item table this state resolves ids against.
func (s *State) Database() Database { return s.db }

// Grant adds an item from the database to the inventory.
func (s *State) Grant(id uint8) bool {
	if _, ok := s.db.Lookup(id); !ok {
		return false
	}
	return s.Inventory.Add(id)
}

// Equip moves the inventory item at index into slot. The item must fit the
// slot and the character must meet its level requirement. Whatever was in
// the slot goes back into the inventory.
func (s *State) Equip(index int, slot Slot) bool {
	if slot >= SlotCount {
		return false
	}
	id, ok := s.Inventory.At(index)
	if !ok {
		return false
	}
	item, ok := s.db.Lookup(id)
	if !ok || item.Slot != slot || s.Base.Level < item.LevelReq {
		return false
	}

	s.Inventory.RemoveAt(index)
	if old := s.Equipped[slot]; old != nil {
		old.Equipped = false
		s.Inventory.Add(old.ID)
	}
	item.Equipped = true
	s.Equipped[slot] = &item
	s.recalculate()
	return true
}

// Unequip moves the item in slot back into the inventory. Fails when the
// slot is empty or the inventory is full.
func (s *State) Unequip(slot Slot) bool {
	if slot >= SlotCount || s.Equipped[slot] == nil || s.Inventory.Full() {
		return false
	}
	old := s.Equipped[slot]
	old.Equipped = false
	s.Inventory.Add(old.ID)
	s.Equipped[slot] = nil
	s.recalculate()
	return true
}

// GrantExperience adds amount to the character and applies every level-up
// it pays for. Returns the number of levels gained.
func (s *State) GrantExperience(amount uint32) int {
	s.Base.Experience += amount
	s.TotalExperience += amount

	gained := 0
	for CanLevelUp(&s.Base) {
		PerformLevelUp(&s.Base)
		gained++
	}
	s.Base.ExpToNext = ExpToNextLevel(s.Base.Level, s.Base.Experience)
	s.LevelsGained += gained

	s.recalculate()
	if gained > 0 {
		s.Stats.CurrentHP = s.Stats.MaxHP
		s.Stats.CurrentMP = s.Stats.MaxMP
	}
	return gained
}

// SpendStatPoint applies one stat point to the base sheet.
func (s *State) SpendStatPoint(which Stat) bool {
	if !DistributeStatPoint(&s.Base, which) {
		return false
	}
	s.recalculate()
	return true
}

// SetCurrent records HP and MP after they were spent elsewhere, clamped to
// the current maxima.
func (s *State) SetCurrent(hp, mp int) {
	s.Stats.CurrentHP = clamp(hp, 0, s.Stats.MaxHP)
	s.Stats.CurrentMP = clamp(mp, 0, s.Stats.MaxMP)
}

// recalculate rebuilds Stats from Base plus every equipped bonus, keeping
// the current HP and MP pools.
func (s *State) recalculate() {
	hp, mp := s.Stats.CurrentHP, s.Stats.CurrentMP
	s.Stats = s.Base
	for _, eq := range s.Equipped {
		if eq != nil {
			eq.Bonus.applyTo(&s.Stats)
		}
	}
	s.Stats.CurrentHP = clamp(hp, 0, s.Stats.MaxHP)
	s.Stats.CurrentMP = clamp(mp, 0, s.Stats.MaxMP)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
