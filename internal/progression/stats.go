package progression

// Experience curve.
const (
	MaxLevel        = 50
	baseExpPerLevel = 100
	expMultiplier   = float32(1.2)
)

// Stat identifies one allocatable stat.
type Stat uint8

const (
	StatHP Stat = iota
	StatMP
	StatAttack
	StatDefense
	StatMagic
	StatMagicDef
	StatSpeed
	StatLuck
	StatTimePower
	StatTimeRegen
	StatCount // sentinel
)

// CharacterStats is a full stat sheet: level and experience, eight base
// stats and the three time stats.
type CharacterStats struct {
	Level      int
	Experience uint32
	ExpToNext  uint32
	StatPoints int

	MaxHP     int
	CurrentHP int
	MaxMP     int
	CurrentMP int
	Attack    int
	Defense   int
	Magic     int
	MagicDef  int
	Speed     int
	Luck      int

	TimePower      int
	TimeRegen      int
	TimeEfficiency int
}

// BaseStats returns a fresh level 1 sheet.
func BaseStats() CharacterStats {
	s := CharacterStats{
		Level:     1,
		MaxHP:     50,
		CurrentHP: 50,
		MaxMP:     20,
		CurrentMP: 20,
		Attack:    10,
		Defense:   8,
		Magic:     5,
		MagicDef:  6,
		Speed:     7,
		Luck:      5,
		TimePower: 50,
		TimeRegen: 2,
	}
	s.ExpToNext = ExpToNextLevel(s.Level, s.Experience)
	return s
}

// ExpRequiredForLevel returns the total experience a character at level must
// hold before it can advance to the next one.
func ExpRequiredForLevel(level int) uint32 {
	if level <= 1 {
		return 0
	}
	return uint32(float32(baseExpPerLevel*(level-1)) * expMultiplier)
}

// ExpToNextLevel returns how much experience is still missing for the next
// level, or 0 at the level cap or when a level-up is already due.
// Leaving level L takes ExpRequiredForLevel(L) total experience.
func ExpToNextLevel(level int, exp uint32) uint32 {
	if level >= MaxLevel {
		return 0
	}
	need := ExpRequiredForLevel(level)
	if exp >= need {
		return 0
	}
	return need - exp
}

// CanLevelUp reports whether stats has enough experience to leave its
// current level. Level 1 requires nothing, so the first grant always
// promotes to level 2.
func CanLevelUp(stats *CharacterStats) bool {
	if stats.Level >= MaxLevel {
		return false
	}
	return stats.Experience >= ExpRequiredForLevel(stats.Level)
}

// PerformLevelUp raises stats by one level, refills HP and MP and awards a
// stat point. Callers loop while CanLevelUp holds.
func PerformLevelUp(stats *CharacterStats) {
	stats.Level++

	stats.MaxHP += 5
	stats.MaxMP += 3
	stats.Attack += 2
	stats.Defense++
	stats.Magic++
	stats.MagicDef++
	stats.Speed++
	stats.Luck++
	stats.TimePower += 5
	stats.TimeRegen++

	stats.CurrentHP = stats.MaxHP
	stats.CurrentMP = stats.MaxMP
	stats.StatPoints++
}

// DistributeStatPoint spends one stat point on which. Returns false if no
// points are available or the stat is unknown.
func DistributeStatPoint(stats *CharacterStats, which Stat) bool {
	if stats.StatPoints <= 0 || which >= StatCount {
		return false
	}
	switch which {
	case StatHP:
		stats.MaxHP += 2
	case StatMP:
		stats.MaxMP += 2
	case StatAttack:
		stats.Attack++
	case StatDefense:
		stats.Defense++
	case StatMagic:
		stats.Magic++
	case StatMagicDef:
		stats.MagicDef++
	case StatSpeed:
		stats.Speed++
	case StatLuck:
		stats.Luck++
	case StatTimePower:
		stats.TimePower += 3
	case StatTimeRegen:
		stats.TimeRegen++
	}
	stats.StatPoints--
	return true
}

var statNames = [StatCount]string{
	StatHP:        "HP",
	StatMP:        "MP",
	StatAttack:    "Attack",
	StatDefense:   "Defense",
	StatMagic:     "Magic",
	StatMagicDef:  "M.Def",
	StatSpeed:     "Speed",
	StatLuck:      "Luck",
	StatTimePower: "Time Power",
	StatTimeRegen: "Time Regen",
}

// StatName returns the display name for a stat.
func StatName(s Stat) string {
	if s < StatCount {
		return statNames[s]
	}
	return "Unknown"
}
