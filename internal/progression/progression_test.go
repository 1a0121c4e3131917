package progression

import "testing"

const testItems = `[
	{"id": 1, "name": "Wooden Sword", "slot": "weapon", "rarity": 1, "level_req": 1, "bonus": {"attack": 5}},
	{"id": 2, "name": "Leather Armor", "slot": "armor", "rarity": 1, "level_req": 1,
	 "bonus": {"hp": 10, "defense": 3, "magic_def": 1}},
	{"id": 3, "name": "Time Amulet", "slot": "accessory1", "rarity": 2, "level_req": 5,
	 "bonus": {"mp": 5, "magic": 2, "magic_def": 2, "speed": 1, "luck": 1,
	           "time_power": 10, "time_regen": 2, "time_efficiency": 5}},
	{"id": 4, "name": "Iron Sword", "slot": "weapon", "rarity": 1, "level_req": 1, "bonus": {"attack": 8}}
]`

func testDB(t *testing.T) Database {
	t.Helper()
	db, err := LoadDatabase([]byte(testItems))
	if err != nil {
		t.Fatalf("LoadDatabase: %v", err)
	}
	return db
}

func TestExpRequiredForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  uint32
	}{
		{0, 0},
		{1, 0},
		{2, 120},
		{3, 240},
		{4, 360},
		{10, 1080},
		{50, 5880},
	}
	for _, tt := range tests {
		if got := ExpRequiredForLevel(tt.level); got != tt.want {
			t.Errorf("ExpRequiredForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGrantExperienceMultiLevel(t *testing.T) {
	s := NewState(testDB(t))

	gained := s.GrantExperience(250)

	if gained != 3 {
		t.Errorf("levels gained = %d, want 3", gained)
	}
	if s.Base.Level != 4 {
		t.Errorf("level = %d, want 4", s.Base.Level)
	}
	if s.Base.Experience != 250 || s.TotalExperience != 250 {
		t.Errorf("experience = %d total = %d, want 250", s.Base.Experience, s.TotalExperience)
	}
	if s.Base.ExpToNext != 110 {
		t.Errorf("exp to next = %d, want 110", s.Base.ExpToNext)
	}
	if s.Base.StatPoints != 3 {
		t.Errorf("stat points = %d, want 3", s.Base.StatPoints)
	}
	if s.Stats.MaxHP != 65 || s.Stats.CurrentHP != 65 {
		t.Errorf("hp = %d/%d, want 65/65", s.Stats.CurrentHP, s.Stats.MaxHP)
	}
	if s.Stats.Attack != 16 || s.Stats.TimePower != 65 {
		t.Errorf("attack=%d timePower=%d, want 16 and 65", s.Stats.Attack, s.Stats.TimePower)
	}
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		exp       uint32
		level     int
		expToNext uint32
	}{
		{0, 2, 120},
		{119, 2, 1},
		{120, 3, 120},
		{240, 4, 120},
		{359, 4, 1},
		{360, 5, 120},
	}
	for _, tt := range tests {
		s := NewState(testDB(t))
		s.GrantExperience(tt.exp)
		if s.Base.Level != tt.level || s.Base.ExpToNext != tt.expToNext {
			t.Errorf("exp %d: level %d next %d, want level %d next %d",
				tt.exp, s.Base.Level, s.Base.ExpToNext, tt.level, tt.expToNext)
		}
		if s.Base.StatPoints != tt.level-1 {
			t.Errorf("exp %d: stat points %d, want %d", tt.exp, s.Base.StatPoints, tt.level-1)
		}
	}
}

func TestLevelCap(t *testing.T) {
	s := NewState(testDB(t))
	s.GrantExperience(1_000_000)

	if s.Base.Level != MaxLevel {
		t.Errorf("level = %d, want %d", s.Base.Level, MaxLevel)
	}
	if s.Base.ExpToNext != 0 {
		t.Errorf("exp to next at cap = %d", s.Base.ExpToNext)
	}
}

func TestDistributeStatPoint(t *testing.T) {
	stats := BaseStats()
	if DistributeStatPoint(&stats, StatHP) {
		t.Fatal("no points available, should fail")
	}

	stats.StatPoints = 3
	DistributeStatPoint(&stats, StatHP)
	DistributeStatPoint(&stats, StatTimePower)
	DistributeStatPoint(&stats, StatLuck)

	if stats.MaxHP != 52 || stats.TimePower != 53 || stats.Luck != 6 {
		t.Errorf("hp=%d timePower=%d luck=%d", stats.MaxHP, stats.TimePower, stats.Luck)
	}
	if stats.StatPoints != 0 {
		t.Errorf("points left = %d", stats.StatPoints)
	}
	if DistributeStatPoint(&stats, StatCount) {
		t.Error("unknown stat should fail")
	}
}

func TestEquipAppliesBonuses(t *testing.T) {
	s := NewState(testDB(t))
	s.Grant(1)
	s.Grant(2)

	if !s.Equip(0, SlotWeapon) {
		t.Fatal("equip sword failed")
	}
	if s.Inventory.Len() != 1 || s.Inventory.Items[0] != 2 {
		t.Errorf("inventory = %v, want [2]", s.Inventory.Items)
	}
	if !s.Equip(0, SlotArmor) {
		t.Fatal("equip armor failed")
	}

	if s.Stats.Attack != 15 || s.Stats.Defense != 11 || s.Stats.MaxHP != 60 || s.Stats.MagicDef != 7 {
		t.Errorf("totals = atk %d def %d hp %d mdef %d", s.Stats.Attack, s.Stats.Defense, s.Stats.MaxHP, s.Stats.MagicDef)
	}
	if s.Base.Attack != 10 {
		t.Errorf("base attack changed to %d", s.Base.Attack)
	}
	if !s.Equipped[SlotWeapon].Equipped {
		t.Error("equipped copy should be flagged")
	}
}

func TestEquipUnequipIsIdempotent(t *testing.T) {
	s := NewState(testDB(t))
	s.Grant(1)
	base := s.Stats

	for i := 0; i < 5; i++ {
		if !s.Equip(0, SlotWeapon) {
			t.Fatalf("equip %d failed", i)
		}
		if !s.Unequip(SlotWeapon) {
			t.Fatalf("unequip %d failed", i)
		}
	}
	if s.Stats != base {
		t.Errorf("stats drifted after cycles: %+v vs %+v", s.Stats, base)
	}
}

func TestEquipSwapReturnsOldItem(t *testing.T) {
	s := NewState(testDB(t))
	s.Grant(1)
	s.Grant(4)
	s.Equip(0, SlotWeapon)

	if !s.Equip(0, SlotWeapon) {
		t.Fatal("swap failed")
	}
	if s.Equipped[SlotWeapon].ID != 4 {
		t.Errorf("weapon = %d, want 4", s.Equipped[SlotWeapon].ID)
	}
	if s.Inventory.Len() != 1 || s.Inventory.Items[0] != 1 {
		t.Errorf("inventory = %v, want [1]", s.Inventory.Items)
	}
	if s.Stats.Attack != 18 {
		t.Errorf("attack = %d, want 18", s.Stats.Attack)
	}
}

func TestEquipRejected(t *testing.T) {
	s := NewState(testDB(t))
	s.Grant(3)
	s.Grant(1)
	before := s.Stats
	inv := append([]uint8(nil), s.Inventory.Items...)

	tests := []struct {
		name  string
		index int
		slot  Slot
	}{
		{"level requirement", 0, SlotAccessory1},
		{"slot mismatch", 1, SlotArmor},
		{"index out of range", 5, SlotWeapon},
		{"negative index", -1, SlotWeapon},
		{"bad slot", 1, SlotCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.Equip(tt.index, tt.slot) {
				t.Fatal("equip should fail")
			}
			if s.Stats != before {
				t.Error("stats changed")
			}
			if len(s.Inventory.Items) != len(inv) || s.Inventory.Items[0] != inv[0] || s.Inventory.Items[1] != inv[1] {
				t.Errorf("inventory changed: %v", s.Inventory.Items)
			}
			for slot, eq := range s.Equipped {
				if eq != nil {
					t.Errorf("slot %d filled", slot)
				}
			}
		})
	}
}

func TestUnequipNeedsRoom(t *testing.T) {
	s := NewState(testDB(t))
	s.Grant(1)
	s.Equip(0, SlotWeapon)
	for s.Grant(2) {
	}
	if s.Inventory.Len() != MaxInventory {
		t.Fatalf("inventory len = %d", s.Inventory.Len())
	}
	if s.Unequip(SlotWeapon) {
		t.Error("unequip with full inventory should fail")
	}
	if s.Equipped[SlotWeapon] == nil {
		t.Error("weapon should still be equipped")
	}
	if s.Unequip(SlotArmor) {
		t.Error("unequip of empty slot should fail")
	}
}

func TestGrantUnknownItem(t *testing.T) {
	s := NewState(testDB(t))
	if s.Grant(99) {
		t.Error("unknown id should not be granted")
	}
}

func TestLoadDatabaseErrors(t *testing.T) {
	if _, err := LoadDatabase([]byte(`[{"id": 1, "slot": "hat"}]`)); err == nil {
		t.Error("unknown slot should fail")
	}
	if _, err := LoadDatabase([]byte(`[{"id": 1, "slot": "weapon"}, {"id": 1, "slot": "armor"}]`)); err == nil {
		t.Error("duplicate id should fail")
	}
	if _, err := LoadDatabase([]byte(`[{"id": 0, "slot": "weapon"}]`)); err == nil {
		t.Error("reserved id 0 should fail")
	}
}

func TestSnapshotRestore(t *testing.T) {
	db := testDB(t)
	s := NewState(db)
	s.Grant(1)
	s.Grant(2)
	s.Grant(4)
	s.Equip(0, SlotWeapon)
	s.Equip(0, SlotArmor)
	s.GrantExperience(130)
	s.SetCurrent(30, 10)

	got, err := Restore(db, s.Snapshot())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got.Stats != s.Stats {
		t.Errorf("stats = %+v, want %+v", got.Stats, s.Stats)
	}
	if got.Equipped[SlotWeapon] == nil || got.Equipped[SlotWeapon].ID != 1 {
		t.Errorf("weapon = %v", got.Equipped[SlotWeapon])
	}
	if got.Inventory.Len() != 1 || got.Inventory.Items[0] != 4 {
		t.Errorf("inventory = %v", got.Inventory.Items)
	}
	if got.TotalExperience != 130 || got.LevelsGained != 2 {
		t.Errorf("exp = %d levels = %d", got.TotalExperience, got.LevelsGained)
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	db := testDB(t)
	valid := NewState(db).Snapshot()

	tests := []struct {
		name string
		edit func(*Snapshot)
	}{
		{"level zero", func(s *Snapshot) { s.Base.Level = 0 }},
		{"unknown item", func(s *Snapshot) { s.Inventory = []uint8{99} }},
		{"wrong slot", func(s *Snapshot) { s.Equipped[SlotArmor] = 1 }},
		{"unknown equipped", func(s *Snapshot) { s.Equipped[SlotWeapon] = 77 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := valid
			snap.Inventory = append([]uint8(nil), valid.Inventory...)
			tt.edit(&snap)
			if _, err := Restore(db, snap); err == nil {
				t.Error("expected error")
			}
		})
	}
}
