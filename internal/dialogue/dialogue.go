package dialogue

import (
	"unicode/utf8"

	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/world"
)

// Reveal speed bounds, in characters per tick.
const (
	DefaultSpeed = 2
	MinSpeed     = 1
	MaxSpeed     = 5
	RootNode     = 0
)

// State is the interpreter phase.
type State uint8

const (
	StateInactive State = iota
	StateDisplaying
	StateWaiting
	StateChoosing
	StateComplete
)

// Directory resolves NPC ids for the current area.
type Directory interface {
	NPC(id int) (world.NPCInfo, bool)
}

// Interpreter walks one conversation at a time through a node table.
type Interpreter struct {
	table Table
	npcs  Directory

	state    State
	node     Node
	length   int // rune count of node.Text
	cursor   int
	speed    int
	selected int
	sprite   int
	event    int
}

// New returns an inactive interpreter over table.
func New(table Table, npcs Directory) *Interpreter {
	return &Interpreter{table: table, npcs: npcs, speed: DefaultSpeed}
}

// Start begins a conversation with the given NPC at the root node.
func (d *Interpreter) Start(npcID int) bool {
	return d.StartAt(npcID, RootNode)
}

// StartAt begins a conversation with the given NPC at root. Fails while a
// conversation is running, or if the NPC or node does not exist.
func (d *Interpreter) StartAt(npcID, root int) bool {
	if d.state != StateInactive {
		return false
	}
	npc, ok := d.npcs.NPC(npcID)
	if !ok {
		return false
	}
	if _, ok := d.table[root]; !ok {
		return false
	}
	d.sprite = npc.SpriteID
	d.enter(root)
	return true
}

// enter shows node id from the beginning. Unknown ids end the conversation.
func (d *Interpreter) enter(id int) {
	n, ok := d.table[id]
	if !ok {
		d.End()
		return
	}
	d.node = n
	d.length = utf8.RuneCountInString(n.Text)
	d.cursor = 0
	d.selected = 0
	d.state = StateDisplaying
	if n.Event != 0 {
		d.event = n.Event
	}
}

// Tick advances the conversation by one frame. pressed holds the buttons
// that went down this tick.
func (d *Interpreter) Tick(pressed input.Buttons) {
	switch d.state {
	case StateDisplaying:
		d.cursor = min(d.cursor+d.speed, d.length)
		if d.cursor >= d.length {
			d.revealed()
		}
	case StateWaiting:
		if pressed.Any(input.ButtonA) {
			d.follow(d.node.Next)
		}
	case StateChoosing:
		n := len(d.node.Choices)
		if pressed.Any(input.ButtonUp) {
			d.selected = (d.selected - 1 + n) % n
		}
		if pressed.Any(input.ButtonDown) {
			d.selected = (d.selected + 1) % n
		}
		if pressed.Any(input.ButtonA) {
			c := d.node.Choices[d.selected]
			if c.Enabled {
				d.follow(c.Target)
			}
		}
	case StateComplete:
		d.End()
	}
}

func (d *Interpreter) revealed() {
	if len(d.node.Choices) > 0 {
		d.state = StateChoosing
	} else {
		d.state = StateWaiting
	}
}

func (d *Interpreter) follow(target int) {
	if target == 0 {
		d.End()
		return
	}
	d.enter(target)
}

// Skip shows the rest of the current line at once.
func (d *Interpreter) Skip() bool {
	if d.state != StateDisplaying {
		return false
	}
	d.cursor = d.length
	d.revealed()
	return true
}

// End closes the conversation.
func (d *Interpreter) End() {
	d.state = StateInactive
	d.node = Node{}
	d.length = 0
	d.cursor = 0
	d.selected = 0
	d.sprite = 0
}

// SetSpeed changes the reveal speed. Values outside 1..5 are ignored.
func (d *Interpreter) SetSpeed(speed int) bool {
	if speed < MinSpeed || speed > MaxSpeed {
		return false
	}
	d.speed = speed
	return true
}

// TakeEvent returns the event of the last node entered, once.
func (d *Interpreter) TakeEvent() (int, bool) {
	ev := d.event
	d.event = 0
	return ev, ev != 0
}

// State returns the current phase.
func (d *Interpreter) State() State { return d.state }

// Active reports whether a conversation is running.
func (d *Interpreter) Active() bool { return d.state != StateInactive }

// NodeID returns the current node id, or 0 when inactive.
func (d *Interpreter) NodeID() int { return d.node.ID }

// Text returns the whole text of the current node.
func (d *Interpreter) Text() string { return d.node.Text }

// VisibleText returns the part of the text revealed so far.
func (d *Interpreter) VisibleText() string {
	if d.cursor >= d.length {
		return d.node.Text
	}
	r := []rune(d.node.Text)
	return string(r[:d.cursor])
}

// Speaker returns the speaker's name.
func (d *Interpreter) Speaker() string { return d.node.Speaker }

// SpeakerSprite returns the sprite of the NPC being talked to.
func (d *Interpreter) SpeakerSprite() int { return d.sprite }

// ChoiceCount returns how many choices the current node offers.
func (d *Interpreter) ChoiceCount() int { return len(d.node.Choices) }

// ChoiceText returns the text of choice i, or "" if out of range.
func (d *Interpreter) ChoiceText(i int) string {
	if i < 0 || i >= len(d.node.Choices) {
		return ""
	}
	return d.node.Choices[i].Text
}

// ChoiceEnabled reports whether choice i can be picked.
func (d *Interpreter) ChoiceEnabled(i int) bool {
	if i < 0 || i >= len(d.node.Choices) {
		return false
	}
	return d.node.Choices[i].Enabled
}

// Selected returns the highlighted choice index.
func (d *Interpreter) Selected() int { return d.selected }

// Speed returns the reveal speed.
func (d *Interpreter) Speed() int { return d.speed }
