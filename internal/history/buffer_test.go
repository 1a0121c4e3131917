package history

import "testing"

type fakeTraveler struct {
	energy int
	x, y   int16
}

func (f *fakeTraveler) CurrentTimeEnergy() int { return f.energy }

func (f *fakeTraveler) SpendTimeEnergy(amount int) bool {
	if f.energy < amount {
		return false
	}
	f.energy -= amount
	return true
}

func (f *fakeTraveler) SetPosition(x, y int16) { f.x, f.y = x, y }

func fill(b *Buffer, n int) {
	for i := 0; i < n; i++ {
		b.Record(int16(i), int16(-i))
	}
}

func TestRecordWithinCapacity(t *testing.T) {
	b := New()
	fill(b, 120)

	if b.Count() != 120 {
		t.Fatalf("count = %d, want 120", b.Count())
	}
	for f := 0; f < 120; f++ {
		s, ok := b.FindSampleAtFrame(uint16(f))
		if !ok {
			t.Fatalf("frame %d not found", f)
		}
		if s.X != int16(f) || s.Y != int16(-f) {
			t.Errorf("frame %d = (%d,%d)", f, s.X, s.Y)
		}
	}
	if b.OldestFrame() != 0 || b.NewestFrame() != 119 {
		t.Errorf("oldest/newest = %d/%d, want 0/119", b.OldestFrame(), b.NewestFrame())
	}
}

func TestRecordEvictsOldest(t *testing.T) {
	b := New()
	const extra = 25
	fill(b, Capacity+extra)

	if b.Count() != Capacity {
		t.Fatalf("count = %d, want %d", b.Count(), Capacity)
	}
	for f := 0; f < extra; f++ {
		if _, ok := b.FindSampleAtFrame(uint16(f)); ok {
			t.Errorf("evicted frame %d still found", f)
		}
	}
	if _, ok := b.FindSampleAtFrame(extra); !ok {
		t.Errorf("frame %d should be the oldest kept sample", extra)
	}
	if b.OldestFrame() != extra {
		t.Errorf("oldest = %d, want %d", b.OldestFrame(), extra)
	}
	if b.NewestFrame() != Capacity+extra-1 {
		t.Errorf("newest = %d, want %d", b.NewestFrame(), Capacity+extra-1)
	}
}

func TestEmptyQueries(t *testing.T) {
	b := New()
	if b.CanRewind() {
		t.Error("empty buffer should not allow rewind")
	}
	if b.OldestFrame() != 0 || b.NewestFrame() != 0 {
		t.Error("empty buffer frames should be 0")
	}
	if _, ok := b.FindSampleAtFrame(0); ok {
		t.Error("empty buffer should find nothing")
	}
}

func TestCanRewindDistance(t *testing.T) {
	b := New()
	fill(b, 250)

	tests := []struct {
		frames int
		want   bool
	}{
		{1, true},
		{MaxRewindDistance, true},
		{MaxRewindDistance + 1, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := b.CanRewindDistance(tt.frames); got != tt.want {
			t.Errorf("CanRewindDistance(%d) = %v, want %v", tt.frames, got, tt.want)
		}
	}

	short := New()
	fill(short, 10)
	if short.CanRewindDistance(11) {
		t.Error("distance beyond recorded count should be refused")
	}
}

func TestRewindByFramesCostsEnergy(t *testing.T) {
	b := New()
	fill(b, 50)
	tr := &fakeTraveler{energy: 50}

	if !b.RewindByFrames(10, tr) {
		t.Fatal("rewind should succeed")
	}
	if tr.x != 40 || tr.y != -40 {
		t.Errorf("position = (%d,%d), want (40,-40)", tr.x, tr.y)
	}
	if tr.energy != 0 {
		t.Errorf("energy = %d, want 0", tr.energy)
	}
	if !b.IsRewinding() || b.CanRewind() {
		t.Error("buffer should be rewinding and refuse a second rewind")
	}
}

func TestRewindInsufficientEnergy(t *testing.T) {
	b := New()
	fill(b, 50)
	tr := &fakeTraveler{energy: 49, x: 7, y: 7}

	if b.RewindByFrames(10, tr) {
		t.Fatal("rewind should fail without energy")
	}
	if tr.energy != 49 || tr.x != 7 || tr.y != 7 {
		t.Errorf("traveler changed: %+v", tr)
	}
	if b.IsRewinding() {
		t.Error("failed rewind must not pause recording")
	}
}

func TestRewindToCurrentOrFutureRejected(t *testing.T) {
	b := New()
	fill(b, 20)
	tr := &fakeTraveler{energy: 1000}

	for _, target := range []uint16{b.CurrentFrame(), b.CurrentFrame() + 5} {
		if b.RewindToFrame(target, tr) {
			t.Errorf("rewind to frame %d should be rejected", target)
		}
	}
	if tr.energy != 1000 {
		t.Errorf("energy spent on rejected rewind: %d", tr.energy)
	}
	if b.RewindByFrames(0, tr) {
		t.Error("zero-distance rewind should be rejected")
	}
}

func TestStopRewindResumesWithoutReuse(t *testing.T) {
	b := New()
	fill(b, Capacity+40)
	tr := &fakeTraveler{energy: 100}
	before := b.CurrentFrame()

	if !b.RewindByFrames(5, tr) {
		t.Fatal("rewind should succeed")
	}
	b.Record(99, 99)
	if b.CurrentFrame() != before || b.Count() != Capacity {
		t.Fatal("record while rewinding must be ignored")
	}

	b.StopRewind()
	b.Record(1, 2)

	if b.NewestFrame() != before {
		t.Errorf("newest = %d, want %d", b.NewestFrame(), before)
	}
	s, ok := b.FindSampleAtFrame(before)
	if !ok || s.X != 1 || s.Y != 2 {
		t.Errorf("resumed sample = %+v, %v", s, ok)
	}
	for f := 0; f <= 40; f++ {
		if _, ok := b.FindSampleAtFrame(uint16(f)); ok {
			t.Errorf("evicted frame %d came back", f)
		}
	}
}

func TestFrameCounterWraps(t *testing.T) {
	b := New()
	fill(b, 65536+10)

	if b.CurrentFrame() != 10 {
		t.Fatalf("frame = %d, want 10", b.CurrentFrame())
	}
	tr := &fakeTraveler{energy: 100}
	if !b.RewindByFrames(15, tr) {
		t.Fatal("rewind across the wrap should succeed")
	}
	if tr.energy != 100-15*RewindCostPerFrame {
		t.Errorf("energy = %d", tr.energy)
	}
}

func TestReset(t *testing.T) {
	b := New()
	fill(b, 10)
	b.RewindByFrames(1, &fakeTraveler{energy: 100})
	b.Reset()

	if b.Count() != 0 || b.CurrentFrame() != 0 || b.IsRewinding() {
		t.Errorf("reset left state: count=%d frame=%d rewinding=%v", b.Count(), b.CurrentFrame(), b.IsRewinding())
	}
}
