package battle

import (
	"fmt"
	"math/rand/v2"

	"github.com/chronic-echo/chronic_echo/internal/player"
)

// Time power pricing and escape odds.
const (
	TimeStopCost       = 15
	TimeStopDuration   = 3 // ticks
	SlowMotionCost     = 10
	SlowMotionDuration = 2 // ticks
	RewindCost         = 20
	RewindHeal         = 10
	EscapeChance       = 30 // percent
)

// State is the battle phase.
type State uint8

const (
	StateIdle State = iota
	StateEncounter
	StateActive
	StateVictory
	StateDefeat
	StateEscape
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEncounter:
		return "encounter"
	case StateActive:
		return "active"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Action is a player command.
type Action uint8

const (
	ActionNone Action = iota
	ActionAttack
	ActionDefend
	ActionTimeStop
	ActionSlowMotion
	ActionRewind
	ActionEscape
)

// Roller yields uniform integers in [0, n). *rand.Rand satisfies it.
type Roller interface {
	IntN(n int) int
}

type globalRoller struct{}

func (globalRoller) IntN(n int) int { return rand.IntN(n) }

// Rewarder receives experience when an enemy falls.
type Rewarder interface {
	GrantExperience(amount uint32) int
}

// Damage is the shared hit formula: attack minus defense, at least 1.
func Damage(attack, defense int) int {
	return max(1, attack-defense)
}

// Engine runs one battle at a time against the given character.
type Engine struct {
	state      State
	enemy      Enemy
	turn       int
	pending    Action
	playerTurn bool
	timeStop   int
	slowMotion int

	player  *player.Character
	rewards Rewarder
	rng     Roller

	// OnMessage, if set, receives a line for every notable outcome.
	OnMessage func(text string)
}

// NewEngine creates an idle engine. A nil roller uses the global source;
// a nil rewarder drops experience.
func NewEngine(p *player.Character, rewards Rewarder, rng Roller) *Engine {
	if rng == nil {
		rng = globalRoller{}
	}
	return &Engine{player: p, rewards: rewards, rng: rng}
}

func (e *Engine) say(format string, args ...any) {
	if e.OnMessage != nil {
		e.OnMessage(fmt.Sprintf(format, args...))
	}
}

// Start begins a battle against kind. Only valid while idle.
func (e *Engine) Start(kind EnemyKind) bool {
	if e.state != StateIdle {
		return false
	}
	enemy, ok := NewEnemy(kind)
	if !ok {
		return false
	}
	e.enemy = enemy
	e.turn = 0
	e.pending = ActionNone
	e.playerTurn = true
	e.timeStop = 0
	e.slowMotion = 0
	e.state = StateEncounter
	e.say("A wild %s appears!", enemy.Name)
	return true
}

// Update advances the battle by one tick.
func (e *Engine) Update() {
	switch e.state {
	case StateEncounter:
		e.state = StateActive
	case StateActive:
		if !e.playerTurn {
			if e.timeStop > 0 {
				e.say("%s is frozen in time.", e.enemy.Name)
			} else {
				e.enemyAttack()
			}
			e.playerTurn = true
			if e.checkEnd() {
				return
			}
		}
		if e.timeStop > 0 {
			e.timeStop--
		}
		if e.slowMotion > 0 {
			e.slowMotion--
		}
	}
}

// Submit queues action for the player. Only accepted on the player's turn,
// and time powers only when the character can pay for them.
func (e *Engine) Submit(action Action) bool {
	if e.state != StateActive || !e.playerTurn {
		return false
	}
	switch action {
	case ActionAttack, ActionDefend, ActionEscape:
	case ActionTimeStop:
		if e.player.TimeEnergy < TimeStopCost {
			return false
		}
	case ActionSlowMotion:
		if e.player.TimeEnergy < SlowMotionCost {
			return false
		}
	case ActionRewind:
		if e.player.TimeEnergy < RewindCost {
			return false
		}
	default:
		return false
	}
	e.pending = action
	return true
}

// ResolveTurn carries out the queued action, checks for the end of the
// battle and passes the turn to the enemy unless the action kept it.
func (e *Engine) ResolveTurn() {
	if e.state != StateActive || !e.playerTurn || e.pending == ActionNone {
		return
	}
	e.turn++
	action := e.pending
	e.pending = ActionNone
	keepTurn := false

	p := e.player
	switch action {
	case ActionAttack:
		dmg := Damage(p.Attack, e.enemy.Defense)
		e.enemy.Health = max(e.enemy.Health-dmg, 0)
		e.say("You hit %s for %d.", e.enemy.Name, dmg)
	case ActionDefend:
		e.say("You brace yourself.")
	case ActionTimeStop:
		if p.SpendTimeEnergy(TimeStopCost) {
			e.timeStop = TimeStopDuration
			e.say("Time stops!")
		}
	case ActionSlowMotion:
		if p.SpendTimeEnergy(SlowMotionCost) {
			e.slowMotion = SlowMotionDuration
			e.say("Time slows down.")
		}
	case ActionRewind:
		if p.SpendTimeEnergy(RewindCost) {
			p.Heal(RewindHeal)
			keepTurn = true
			e.say("You rewind your wounds. Act again!")
		}
	case ActionEscape:
		if e.attemptEscape() {
			return
		}
		keepTurn = true
	}

	if e.checkEnd() {
		return
	}
	if !keepTurn {
		e.playerTurn = false
	}
}

// AttemptEscape rolls against the escape chance. On success the battle ends
// in StateEscape; on failure the enemy gets a free attack.
func (e *Engine) AttemptEscape() bool {
	if e.state != StateActive {
		return false
	}
	ok := e.attemptEscape()
	if !ok {
		e.checkEnd()
	}
	return ok
}

func (e *Engine) attemptEscape() bool {
	if e.rng.IntN(100) < EscapeChance {
		e.state = StateEscape
		e.say("You got away!")
		return true
	}
	e.say("Couldn't escape!")
	e.enemyAttack()
	return false
}

func (e *Engine) enemyAttack() {
	dmg := Damage(e.enemy.Attack, e.player.Defense)
	e.player.TakeDamage(dmg)
	e.say("%s hits you for %d.", e.enemy.Name, dmg)
}

// checkEnd moves to Victory or Defeat when one side is down and reports
// whether the battle is over.
func (e *Engine) checkEnd() bool {
	switch {
	case e.player.Health <= 0:
		e.state = StateDefeat
		e.say("You have been defeated...")
		return true
	case e.enemy.Health <= 0:
		e.state = StateVictory
		e.say("%s defeated! Gained %d EXP.", e.enemy.Name, e.enemy.ExpReward)
		if e.rewards != nil {
			if lv := e.rewards.GrantExperience(uint32(e.enemy.ExpReward)); lv > 0 {
				e.say("Level up!")
			}
		}
		return true
	}
	return false
}

// End returns the engine to idle.
func (e *Engine) End() {
	e.state = StateIdle
	e.enemy = Enemy{}
	e.pending = ActionNone
	e.playerTurn = false
	e.timeStop = 0
	e.slowMotion = 0
}

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Active reports whether a battle is in progress or showing its result.
func (e *Engine) Active() bool { return e.state != StateIdle }

// Over reports whether the battle has reached a final outcome.
func (e *Engine) Over() bool {
	return e.state == StateVictory || e.state == StateDefeat || e.state == StateEscape
}

// Enemy returns a copy of the current opponent.
func (e *Engine) Enemy() Enemy { return e.enemy }

// Turn returns the number of resolved player actions.
func (e *Engine) Turn() int { return e.turn }

// PlayerTurn reports whether the engine is waiting for the player.
func (e *Engine) PlayerTurn() bool { return e.playerTurn }

// TimeStopRemaining returns the ticks left on time stop.
func (e *Engine) TimeStopRemaining() int { return e.timeStop }

// SlowMotionRemaining returns the ticks left on slow motion.
func (e *Engine) SlowMotionRemaining() int { return e.slowMotion }
