package input

import (
	"testing"

	"github.com/eiannone/keyboard"
)

func TestTrackerTap(t *testing.T) {
	tr := NewTracker(1)
	tr.Press(Left)

	f := tr.Next()
	if !f.Pressed(Left) || f.Released(Left) {
		t.Errorf("expected a press edge, got %+v", f)
	}

	f = tr.Next()
	if f.Pressed(Left) || !f.Released(Left) {
		t.Errorf("expected a release edge, got %+v", f)
	}

	f = tr.Next()
	if f.Pressed(Left) || f.Released(Left) || f.Held(Left) {
		t.Errorf("expected no edge, got %+v", f)
	}
}

func TestTrackerSustain(t *testing.T) {
	tr := NewTracker(4)
	tr.Press(Up)
	presses, releases := 0, 0
	for i := 0; i < 10; i++ {
		// auto-repeat every third frame for the first six frames
		if i > 0 && i < 6 && i%3 == 0 {
			tr.Press(Up)
		}
		f := tr.Next()
		if f.Pressed(Up) {
			presses++
		}
		if f.Released(Up) {
			releases++
			// last repeat on frame 3 sustains frames 3 to 6
			if i != 7 {
				t.Errorf("released on frame %d", i)
			}
		}
	}
	if presses != 1 || releases != 1 {
		t.Errorf("expected one press and one release, got %d and %d", presses, releases)
	}
}

func TestTrackerExplicitRelease(t *testing.T) {
	tr := NewTracker(100)
	tr.Press(Down)
	tr.Next()
	tr.Release(Down)
	if f := tr.Next(); !f.Released(Down) {
		t.Error("expected release edge")
	}
}

func TestBindings(t *testing.T) {
	b := DefaultBindings()
	b.Bind('f', Fire)
	tests := map[keyboard.KeyEvent]Key{
		{Key: keyboard.KeyArrowLeft}: Left,
		{Key: keyboard.KeySpace}:     Special,
		{Key: keyboard.KeyTab}:       Pause,
		{Rune: '2'}:                  Level2,
		{Rune: 'f'}:                  Fire,
	}
	for ev, expected := range tests {
		k, ok := b.lookup(ev)
		if !ok || k != expected {
			t.Errorf("%+v mapped to %v, expected %v", ev, k, expected)
		}
	}
	if _, ok := b.lookup(keyboard.KeyEvent{Rune: 'q'}); ok {
		t.Error("unbound rune was mapped")
	}
}
