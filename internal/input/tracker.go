package input

// Frame is the key state of a single frame. Pressed and Released are edge
// triggered: they are true only on the frame the transition happens.
type Frame struct {
	Prev, Down Set
}

func (f Frame) Pressed(k Key) bool {
	return f.Down.Has(k) && !f.Prev.Has(k)
}

func (f Frame) Released(k Key) bool {
	return !f.Down.Has(k) && f.Prev.Has(k)
}

func (f Frame) Held(k Key) bool {
	return f.Down.Has(k)
}

// Press builds a frame in which the given keys went down.
func Press(keys ...Key) Frame {
	var f Frame
	for _, k := range keys {
		f.Down = f.Down.With(k)
	}
	return f
}

// Tracker turns raw key events into per frame edges.
//
// Terminals report presses and auto-repeat but no releases, so a key held
// in the tracker is released once holdFrames frames pass without a new
// event for it. Sources that do report releases call Release directly.
type Tracker struct {
	holdFrames int
	down       Set
	prev       Set
	sustain    [keyCount]int
}

func NewTracker(holdFrames int) *Tracker {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Tracker{holdFrames: holdFrames}
}

// Press registers a press or auto-repeat of k for the coming frame.
func (t *Tracker) Press(k Key) {
	if k >= keyCount {
		return
	}
	t.down = t.down.With(k)
	t.sustain[k] = t.holdFrames
}

// Release registers an explicit release of k.
func (t *Tracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	t.down = t.down.Without(k)
	t.sustain[k] = 0
}

// Next closes the current frame and returns its key state.
func (t *Tracker) Next() Frame {
	f := Frame{Prev: t.prev, Down: t.down}
	t.prev = t.down
	for k := Key(0); k < keyCount; k++ {
		if !t.down.Has(k) {
			continue
		}
		t.sustain[k]--
		if t.sustain[k] <= 0 {
			t.down = t.down.Without(k)
		}
	}
	return f
}
