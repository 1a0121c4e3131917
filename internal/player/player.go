package player

import "github.com/chronic-echo/chronic_echo/internal/progression"

// Starting values for a new character.
const (
	StartX = 120
	StartY = 104

	startHealth     = 100
	startTimeEnergy = 50
	startAttack     = 10
	startDefense    = 5
	startExpToNext  = 100

	// Item effects.
	PotionHeal         = 30
	TimeCrystalRestore = 20

	energyRegenInterval = 60 // ticks between time energy regen pulses
)

// Character is the party leader: battle-facing numbers, position and bag.
type Character struct {
	Health        int
	MaxHealth     int
	TimeEnergy    int
	MaxTimeEnergy int
	Level         int
	Experience    int
	ExpToNext     int
	Attack        int
	Defense       int
	TimeRegen     int
	X, Y          int16
	Inventory     Inventory
	Active        bool
}

// New returns a character at the start position with full resources.
func New() *Character {
	return &Character{
		Health:        startHealth,
		MaxHealth:     startHealth,
		TimeEnergy:    startTimeEnergy,
		MaxTimeEnergy: startTimeEnergy,
		Level:         1,
		ExpToNext:     startExpToNext,
		Attack:        startAttack,
		Defense:       startDefense,
		X:             StartX,
		Y:             StartY,
		Active:        true,
	}
}

// SetPosition moves the character.
func (c *Character) SetPosition(x, y int16) {
	c.X, c.Y = x, y
}

// Position returns the character's pixel position.
func (c *Character) Position() (int16, int16) {
	return c.X, c.Y
}

// Alive reports whether the character can still fight.
func (c *Character) Alive() bool {
	return c.Health > 0
}

// TakeDamage lowers health, stopping at 0.
func (c *Character) TakeDamage(amount int) {
	c.Health = max(c.Health-amount, 0)
}

// Heal restores health up to the maximum.
func (c *Character) Heal(amount int) {
	c.Health = min(c.Health+amount, c.MaxHealth)
}

// CurrentTimeEnergy returns the current time energy.
func (c *Character) CurrentTimeEnergy() int {
	return c.TimeEnergy
}

// SpendTimeEnergy pays amount if the character has it.
func (c *Character) SpendTimeEnergy(amount int) bool {
	if amount < 0 || c.TimeEnergy < amount {
		return false
	}
	c.TimeEnergy -= amount
	return true
}

// RestoreTimeEnergy refills time energy up to the maximum.
func (c *Character) RestoreTimeEnergy(amount int) {
	c.TimeEnergy = min(c.TimeEnergy+amount, c.MaxTimeEnergy)
}

// Tick regenerates time energy on a fixed interval.
func (c *Character) Tick(ticks uint64) {
	if ticks%energyRegenInterval == 0 && c.TimeRegen > 0 {
		c.RestoreTimeEnergy(c.TimeRegen)
	}
}

// UseItem consumes one item and applies its effect. Items without a field
// effect, or a full resource, leave the bag untouched.
func (c *Character) UseItem(kind ItemKind) bool {
	switch kind {
	case ItemPotion:
		if c.Health >= c.MaxHealth || !c.Inventory.RemoveItem(kind, 1) {
			return false
		}
		c.Heal(PotionHeal)
	case ItemTimeCrystal:
		if c.TimeEnergy >= c.MaxTimeEnergy || !c.Inventory.RemoveItem(kind, 1) {
			return false
		}
		c.RestoreTimeEnergy(TimeCrystalRestore)
	default:
		return false
	}
	return true
}

// ApplyStats copies progression totals onto the battle-facing fields.
// With restore set, health and time energy are refilled.
func (c *Character) ApplyStats(s progression.CharacterStats, restore bool) {
	c.Level = s.Level
	c.Experience = int(s.Experience)
	c.ExpToNext = int(s.ExpToNext)
	c.MaxHealth = s.MaxHP
	c.Attack = s.Attack
	c.Defense = s.Defense
	c.MaxTimeEnergy = s.TimePower
	c.TimeRegen = s.TimeRegen
	if restore {
		c.Health = c.MaxHealth
		c.TimeEnergy = c.MaxTimeEnergy
	}
	c.Health = min(c.Health, c.MaxHealth)
	c.TimeEnergy = min(c.TimeEnergy, c.MaxTimeEnergy)
}
