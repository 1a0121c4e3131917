package battle

import (
	"testing"

	"github.com/chronic-echo/chronic_echo/internal/player"
	"github.com/chronic-echo/chronic_echo/internal/progression"
)

type fixedRoller int

func (f fixedRoller) IntN(n int) int { return int(f) % n }

func newActive(t *testing.T, kind EnemyKind, rng Roller) (*Engine, *player.Character, *progression.State) {
	t.Helper()
	p := player.New()
	prog := progression.NewState(nil)
	e := NewEngine(p, prog, rng)
	if !e.Start(kind) {
		t.Fatal("start failed")
	}
	if e.State() != StateEncounter {
		t.Fatalf("state = %v, want encounter", e.State())
	}
	e.Update()
	if e.State() != StateActive {
		t.Fatalf("state = %v, want active", e.State())
	}
	return e, p, prog
}

func TestDamage(t *testing.T) {
	tests := []struct {
		attack, defense, want int
	}{
		{10, 10, 1},
		{15, 10, 5},
		{5, 10, 1},
		{10, 2, 8},
	}
	for _, tt := range tests {
		if got := Damage(tt.attack, tt.defense); got != tt.want {
			t.Errorf("Damage(%d, %d) = %d, want %d", tt.attack, tt.defense, got, tt.want)
		}
	}
}

func TestSlimeFallsInThreeAttacks(t *testing.T) {
	e, p, prog := newActive(t, EnemySlime, fixedRoller(0))

	wantHealth := []int{12, 4, 0}
	for i, want := range wantHealth {
		if !e.Submit(ActionAttack) {
			t.Fatalf("attack %d rejected", i+1)
		}
		e.ResolveTurn()
		if got := e.Enemy().Health; got != want {
			t.Fatalf("after attack %d enemy health = %d, want %d", i+1, got, want)
		}
		e.Update()
	}

	if e.State() != StateVictory {
		t.Fatalf("state = %v, want victory", e.State())
	}
	if e.Turn() != 3 {
		t.Errorf("turns = %d, want 3", e.Turn())
	}
	if prog.TotalExperience != 10 {
		t.Errorf("experience = %d, want 10", prog.TotalExperience)
	}
	if p.Health != 94 {
		t.Errorf("player health = %d, want 94", p.Health)
	}
}

func TestSubmitOutOfTurn(t *testing.T) {
	e, _, _ := newActive(t, EnemySlime, nil)
	e.Submit(ActionDefend)
	e.ResolveTurn()

	if e.PlayerTurn() {
		t.Fatal("turn should pass to the enemy")
	}
	if e.Submit(ActionAttack) {
		t.Error("submit accepted on the enemy's turn")
	}

	idle := NewEngine(player.New(), nil, nil)
	if idle.Submit(ActionAttack) {
		t.Error("submit accepted while idle")
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	e, _, _ := newActive(t, EnemySlime, nil)
	if e.Start(EnemyOrc) {
		t.Error("second start accepted")
	}
	e.End()
	if e.State() != StateIdle || e.Active() {
		t.Error("end did not return to idle")
	}
	if e.Start(EnemyKindCount) {
		t.Error("unknown enemy accepted")
	}
}

func TestTimeStopSkipsEnemyTurn(t *testing.T) {
	e, p, _ := newActive(t, EnemyOrc, nil)

	if !e.Submit(ActionTimeStop) {
		t.Fatal("time stop rejected")
	}
	e.ResolveTurn()
	if p.TimeEnergy != 35 {
		t.Errorf("energy = %d, want 35", p.TimeEnergy)
	}
	if e.TimeStopRemaining() != TimeStopDuration {
		t.Errorf("time stop = %d", e.TimeStopRemaining())
	}

	e.Update()
	if p.Health != 100 {
		t.Errorf("enemy attacked through time stop: health %d", p.Health)
	}
	if !e.PlayerTurn() {
		t.Error("turn should return to the player")
	}
	if e.TimeStopRemaining() != TimeStopDuration-1 {
		t.Errorf("time stop = %d, want %d", e.TimeStopRemaining(), TimeStopDuration-1)
	}

	e.Update()
	e.Update()
	if e.TimeStopRemaining() != 0 {
		t.Fatalf("time stop = %d after expiry", e.TimeStopRemaining())
	}
	e.Submit(ActionAttack)
	e.ResolveTurn()
	e.Update()
	if p.Health != 87 {
		t.Errorf("health = %d, want 87 once time resumes", p.Health)
	}
}

func TestSlowMotionCountsDown(t *testing.T) {
	e, p, _ := newActive(t, EnemySlime, nil)
	e.Submit(ActionSlowMotion)
	e.ResolveTurn()

	if p.TimeEnergy != 40 || e.SlowMotionRemaining() != SlowMotionDuration {
		t.Fatalf("energy=%d slow=%d", p.TimeEnergy, e.SlowMotionRemaining())
	}
	e.Update()
	e.Update()
	if e.SlowMotionRemaining() != 0 {
		t.Errorf("slow motion = %d", e.SlowMotionRemaining())
	}
}

func TestTimePowersNeedEnergy(t *testing.T) {
	e, p, _ := newActive(t, EnemySlime, nil)
	p.TimeEnergy = 12

	if e.Submit(ActionTimeStop) {
		t.Error("time stop accepted without energy")
	}
	if e.Submit(ActionRewind) {
		t.Error("rewind accepted without energy")
	}
	if !e.Submit(ActionSlowMotion) {
		t.Error("slow motion should be affordable")
	}
}

func TestRewindHealsAndKeepsTurn(t *testing.T) {
	e, p, _ := newActive(t, EnemySlime, nil)
	p.TakeDamage(15)

	if !e.Submit(ActionRewind) {
		t.Fatal("rewind rejected")
	}
	e.ResolveTurn()

	if p.Health != 95 {
		t.Errorf("health = %d, want 95", p.Health)
	}
	if p.TimeEnergy != 30 {
		t.Errorf("energy = %d, want 30", p.TimeEnergy)
	}
	if !e.PlayerTurn() {
		t.Error("rewind should grant another player turn")
	}
}

func TestAttemptEscape(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		e, p, _ := newActive(t, EnemyGoblin, fixedRoller(EscapeChance-1))
		if !e.AttemptEscape() {
			t.Fatal("escape should succeed")
		}
		if e.State() != StateEscape {
			t.Errorf("state = %v", e.State())
		}
		if p.Health != 100 {
			t.Errorf("health = %d", p.Health)
		}
	})

	t.Run("above threshold", func(t *testing.T) {
		e, p, _ := newActive(t, EnemyGoblin, fixedRoller(EscapeChance))
		if e.AttemptEscape() {
			t.Fatal("escape should fail")
		}
		if e.State() != StateActive {
			t.Errorf("state = %v", e.State())
		}
		if p.Health != 93 {
			t.Errorf("health = %d, want 93 after free attack", p.Health)
		}
	})

	t.Run("failed escape keeps the turn", func(t *testing.T) {
		e, p, _ := newActive(t, EnemyGoblin, fixedRoller(99))
		e.Submit(ActionEscape)
		e.ResolveTurn()
		if !e.PlayerTurn() {
			t.Error("player should act after the free attack")
		}
		e.Update()
		if p.Health != 93 {
			t.Errorf("health = %d, enemy attacked twice", p.Health)
		}
	})
}

func TestDefeat(t *testing.T) {
	e, p, prog := newActive(t, EnemyDragon, nil)
	p.Health = 1

	e.Submit(ActionAttack)
	e.ResolveTurn()
	if got := e.Enemy().Health; got != 119 {
		t.Errorf("dragon health = %d, want 119", got)
	}
	e.Update()

	if e.State() != StateDefeat {
		t.Fatalf("state = %v, want defeat", e.State())
	}
	if prog.TotalExperience != 0 {
		t.Error("defeat granted experience")
	}
	if !e.Over() {
		t.Error("defeat should be final")
	}
}

func TestMessages(t *testing.T) {
	var lines []string
	p := player.New()
	e := NewEngine(p, nil, nil)
	e.OnMessage = func(s string) { lines = append(lines, s) }
	e.Start(EnemySkeleton)

	if len(lines) != 1 || lines[0] != "A wild SKELETON appears!" {
		t.Errorf("messages = %q", lines)
	}
}
