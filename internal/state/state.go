// Package state drives a set of mutually exclusive modes, one active at a
// time, switching between them on the decision of the active mode.
package state

// MaxBrightness is full display brightness.
const MaxBrightness = 15

// State is one mode of the machine. Next is asked every tick which state
// should be active; returning the state's own ID keeps it running.
type State[ID comparable] interface {
	ID() ID
	Enter(m *Manager[ID])
	Tick(m *Manager[ID])
	Render(m *Manager[ID])
	Exit(m *Manager[ID])
	Next(m *Manager[ID]) ID
}

// Funcs builds a State from optional callbacks. A nil Decide keeps the
// state active forever.
type Funcs[ID comparable] struct {
	Name     ID
	OnEnter  func(m *Manager[ID])
	OnTick   func(m *Manager[ID])
	OnRender func(m *Manager[ID])
	OnExit   func(m *Manager[ID])
	Decide   func(m *Manager[ID]) ID
}

func (f *Funcs[ID]) ID() ID { return f.Name }

func (f *Funcs[ID]) Enter(m *Manager[ID]) {
	if f.OnEnter != nil {
		f.OnEnter(m)
	}
}

func (f *Funcs[ID]) Tick(m *Manager[ID]) {
	if f.OnTick != nil {
		f.OnTick(m)
	}
}

func (f *Funcs[ID]) Render(m *Manager[ID]) {
	if f.OnRender != nil {
		f.OnRender(m)
	}
}

func (f *Funcs[ID]) Exit(m *Manager[ID]) {
	if f.OnExit != nil {
		f.OnExit(m)
	}
}

func (f *Funcs[ID]) Next(m *Manager[ID]) ID {
	if f.Decide != nil {
		return f.Decide(m)
	}
	return f.Name
}

// Data is shared by all states and survives transitions.
type Data[ID comparable] struct {
	Brightness int
	frames     map[ID]int
}

// Frames returns the frame counter kept for id.
func (d *Data[ID]) Frames(id ID) int {
	return d.frames[id]
}

// AddFrame increments the counter for id and returns the new value.
func (d *Data[ID]) AddFrame(id ID) int {
	d.frames[id]++
	return d.frames[id]
}

// ResetFrames zeroes the counter for id.
func (d *Data[ID]) ResetFrames(id ID) {
	delete(d.frames, id)
}

// Manager holds the registry and the active state.
type Manager[ID comparable] struct {
	Data Data[ID]

	states map[ID]State[ID]
	active State[ID]
}

// NewManager returns an empty manager at full brightness.
func NewManager[ID comparable]() *Manager[ID] {
	return &Manager[ID]{
		Data:   Data[ID]{Brightness: MaxBrightness, frames: make(map[ID]int)},
		states: make(map[ID]State[ID]),
	}
}

// Register binds s to id. An id can only be bound once.
func (m *Manager[ID]) Register(id ID, s State[ID]) bool {
	if s == nil {
		return false
	}
	if _, taken := m.states[id]; taken {
		return false
	}
	m.states[id] = s
	return true
}

// TransitionTo exits the active state and enters the one bound to id.
// Unregistered ids are ignored.
func (m *Manager[ID]) TransitionTo(id ID) bool {
	next, ok := m.states[id]
	if !ok {
		return false
	}
	if m.active != nil {
		m.active.Exit(m)
	}
	m.active = next
	next.Enter(m)
	return true
}

// Tick lets the active state pick its successor. If it stays, it gets its
// per-frame update; otherwise the transition happens and the update waits
// for the next tick.
func (m *Manager[ID]) Tick() {
	if m.active == nil {
		return
	}
	if next := m.active.Next(m); next != m.active.ID() {
		m.TransitionTo(next)
		return
	}
	m.active.Tick(m)
}

// Render draws the active state.
func (m *Manager[ID]) Render() {
	if m.active != nil {
		m.active.Render(m)
	}
}

// Active returns the id of the active state.
func (m *Manager[ID]) Active() (ID, bool) {
	if m.active == nil {
		var zero ID
		return zero, false
	}
	return m.active.ID(), true
}
