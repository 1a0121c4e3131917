package input

// Buttons is a bitmask of pad buttons, laid out like a 16-bit joypad
// register.
type Buttons uint16

const (
	ButtonR Buttons = 1 << (iota + 4)
	ButtonL
	ButtonX
	ButtonA
	ButtonRight
	ButtonLeft
	ButtonDown
	ButtonUp
	ButtonStart
	ButtonSelect
	ButtonY
	ButtonB
)

// DPad covers the four directions.
const DPad = ButtonUp | ButtonDown | ButtonLeft | ButtonRight

// Has reports whether every button in mask is set.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// Any reports whether any button in mask is set.
func (b Buttons) Any(mask Buttons) bool {
	return b&mask != 0
}

// Pad keeps this tick's and last tick's button state for edge detection.
type Pad struct {
	Current  Buttons
	Previous Buttons
}

// Latch shifts the current state into Previous and stores held as the new
// current state. Call once per tick before anything reads the pad.
func (p *Pad) Latch(held Buttons) {
	p.Previous = p.Current
	p.Current = held
}

// Pressed returns buttons that went down this tick.
func (p *Pad) Pressed() Buttons {
	return p.Current &^ p.Previous
}

// Released returns buttons that went up this tick.
func (p *Pad) Released() Buttons {
	return p.Previous &^ p.Current
}

// Held returns buttons currently down.
func (p *Pad) Held() Buttons {
	return p.Current
}

// Reset clears both states so a held button does not count as a new press
// after a mode switch.
func (p *Pad) Reset() {
	p.Previous = p.Current
}
