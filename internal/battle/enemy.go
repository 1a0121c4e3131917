package battle

// EnemyKind identifies an enemy template.
type EnemyKind uint8

const (
	EnemySlime EnemyKind = iota
	EnemyGoblin
	EnemyOrc
	EnemySkeleton
	EnemyDragon
	EnemyBoss
	EnemyKindCount // sentinel
)

// Enemy is a live opponent built from a template.
type Enemy struct {
	Kind      EnemyKind
	Name      string
	MaxHealth int
	Health    int
	Attack    int
	Defense   int
	ExpReward int
	Level     int
	SpriteID  int
}

// Alive reports whether the enemy can still act.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

type enemyTemplate struct {
	Name      string
	MaxHealth int
	Attack    int
	Defense   int
	ExpReward int
	Level     int
	SpriteID  int
}

var enemyTable = [EnemyKindCount]enemyTemplate{
	EnemySlime:    {"SLIME", 20, 8, 2, 10, 1, 0},
	EnemyGoblin:   {"GOBLIN", 35, 12, 4, 20, 2, 1},
	EnemyOrc:      {"ORC", 60, 18, 8, 35, 3, 2},
	EnemySkeleton: {"SKELETON", 45, 15, 6, 25, 2, 3},
	EnemyDragon:   {"DRAGON", 120, 25, 15, 80, 5, 4},
	EnemyBoss:     {"TIME LORD", 200, 35, 20, 150, 8, 5},
}

// NewEnemy instantiates kind at full health.
func NewEnemy(kind EnemyKind) (Enemy, bool) {
	if kind >= EnemyKindCount {
		return Enemy{}, false
	}
	t := enemyTable[kind]
	return Enemy{
		Kind:      kind,
		Name:      t.Name,
		MaxHealth: t.MaxHealth,
		Health:    t.MaxHealth,
		Attack:    t.Attack,
		Defense:   t.Defense,
		ExpReward: t.ExpReward,
		Level:     t.Level,
		SpriteID:  t.SpriteID,
	}, true
}

// EnemyName returns the display name for kind.
func EnemyName(kind EnemyKind) string {
	if kind < EnemyKindCount {
		return enemyTable[kind].Name
	}
	return "???"
}
