package history

// Ring sizing and rewind pricing.
const (
	Capacity           = 300 // samples kept (5 seconds at 60 TPS)
	MaxRewindDistance  = 180 // frames
	RewindCostPerFrame = 5   // time energy per frame rewound
)

// Sample is one recorded player position.
type Sample struct {
	X     int16
	Y     int16
	Frame uint16
}

// Traveler is whatever gets moved back in time. The buffer only needs to
// price the jump against its energy and then move it.
type Traveler interface {
	CurrentTimeEnergy() int
	SpendTimeEnergy(amount int) bool
	SetPosition(x, y int16)
}

// Buffer is a fixed-size ring of position samples, one per recorded tick.
// Frame numbers are 16-bit and wrap.
type Buffer struct {
	samples   [Capacity]Sample
	head      int    // next write slot
	tail      int    // oldest valid slot
	count     int    // valid samples
	frame     uint16 // frame number of the next sample
	rewinding bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Reset empties the buffer and restarts frame numbering at 0.
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Record appends the position for the current frame. While rewinding the
// timeline is frozen and nothing is recorded.
func (b *Buffer) Record(x, y int16) {
	if b.rewinding {
		return
	}
	b.samples[b.head] = Sample{X: x, Y: y, Frame: b.frame}
	b.head = (b.head + 1) % Capacity
	if b.count < Capacity {
		b.count++
	} else {
		b.tail = (b.tail + 1) % Capacity
	}
	b.frame++
}

// CanRewind reports whether there is any history to rewind into.
func (b *Buffer) CanRewind() bool {
	return b.count > 0 && !b.rewinding
}

// CanRewindDistance reports whether a rewind of the given length is allowed.
func (b *Buffer) CanRewindDistance(frames int) bool {
	return b.CanRewind() && frames >= 0 && frames <= MaxRewindDistance && frames <= b.count
}

// FindSampleAtFrame scans backwards from the newest sample for an exact
// frame match.
func (b *Buffer) FindSampleAtFrame(frame uint16) (Sample, bool) {
	idx := b.head
	for i := 0; i < b.count; i++ {
		idx = (idx - 1 + Capacity) % Capacity
		if b.samples[idx].Frame == frame {
			return b.samples[idx], true
		}
	}
	return Sample{}, false
}

// distanceTo returns how many frames back target lies. Zero means target is
// the current frame or in the future relative to the recorded window.
func (b *Buffer) distanceTo(target uint16) int {
	d := int(b.frame - target)
	if d == 0 || d > b.count {
		return 0
	}
	return d
}

// RewindCost returns the energy a rewind to target would cost, or 0 if the
// target is not behind the current frame.
func (b *Buffer) RewindCost(target uint16) int {
	return b.distanceTo(target) * RewindCostPerFrame
}

// RewindToFrame moves t back to the position recorded at target and pays
// for the distance in time energy. Targets that are not strictly older
// than the current frame are rejected. On success recording stays paused
// until StopRewind.
func (b *Buffer) RewindToFrame(target uint16, t Traveler) bool {
	if !b.CanRewind() {
		return false
	}
	sample, ok := b.FindSampleAtFrame(target)
	if !ok {
		return false
	}
	distance := b.distanceTo(target)
	if distance == 0 {
		return false
	}
	cost := distance * RewindCostPerFrame
	if t.CurrentTimeEnergy() < cost || !t.SpendTimeEnergy(cost) {
		return false
	}
	t.SetPosition(sample.X, sample.Y)
	b.rewinding = true
	return true
}

// RewindByFrames rewinds n frames back from the current frame.
func (b *Buffer) RewindByFrames(n int, t Traveler) bool {
	if !b.CanRewindDistance(n) {
		return false
	}
	return b.RewindToFrame(b.frame-uint16(n), t)
}

// StopRewind resumes recording. Frame numbering continues from where it
// paused, so no frame number is handed out twice.
func (b *Buffer) StopRewind() {
	b.rewinding = false
}

// IsRewinding reports whether recording is paused by a rewind.
func (b *Buffer) IsRewinding() bool {
	return b.rewinding
}

// Count returns the number of valid samples.
func (b *Buffer) Count() int {
	return b.count
}

// CurrentFrame returns the frame number the next sample will get.
func (b *Buffer) CurrentFrame() uint16 {
	return b.frame
}

// OldestFrame returns the frame of the oldest sample, or 0 when empty.
func (b *Buffer) OldestFrame() uint16 {
	if b.count == 0 {
		return 0
	}
	return b.samples[b.tail].Frame
}

// NewestFrame returns the frame of the newest sample, or 0 when empty.
func (b *Buffer) NewestFrame() uint16 {
	if b.count == 0 {
		return 0
	}
	return b.samples[(b.head-1+Capacity)%Capacity].Frame
}
