package input

import (
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

// Bindings maps terminal key events onto game keys.
type Bindings struct {
	Keys  map[keyboard.Key]Key
	Runes map[rune]Key
}

// DefaultBindings uses the arrow keys and space for the lanes, tab to
// pause, escape to quit and the digits for level selection.
func DefaultBindings() Bindings {
	b := Bindings{
		Keys: map[keyboard.Key]Key{
			keyboard.KeyArrowLeft:  Left,
			keyboard.KeyArrowRight: Right,
			keyboard.KeyArrowUp:    Up,
			keyboard.KeyArrowDown:  Down,
			keyboard.KeySpace:      Special,
			keyboard.KeyTab:        Pause,
			keyboard.KeyEsc:        Escape,
			keyboard.KeyCtrlC:      Escape,
		},
		Runes: map[rune]Key{
			'z': Fire,
		},
	}
	for i := 0; i < 9; i++ {
		k, _ := LevelKey(i)
		b.Runes[rune('1'+i)] = k
	}
	return b
}

// Bind maps r onto k, replacing any previous binding of r.
func (b Bindings) Bind(r rune, k Key) {
	if r == ' ' {
		b.Keys[keyboard.KeySpace] = k
		return
	}
	b.Runes[r] = k
}

func (b Bindings) lookup(ev keyboard.KeyEvent) (Key, bool) {
	if ev.Key != 0 {
		k, ok := b.Keys[ev.Key]
		return k, ok
	}
	k, ok := b.Runes[ev.Rune]
	return k, ok
}

// Keyboard reads key events from the terminal.
type Keyboard struct {
	events   <-chan keyboard.KeyEvent
	bindings Bindings
}

func OpenKeyboard(bindings Bindings) (*Keyboard, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open keyboard")
	}
	return &Keyboard{events: events, bindings: bindings}, nil
}

// Drain feeds every event received since the last call into t without
// blocking.
func (kb *Keyboard) Drain(t *Tracker) error {
	for {
		select {
		case ev, ok := <-kb.events:
			if !ok {
				return errors.New("keyboard closed")
			}
			if nil != ev.Err {
				return errors.Wrap(ev.Err, "unable to read keyboard")
			}
			if k, ok := kb.bindings.lookup(ev); ok {
				t.Press(k)
			}
		default:
			return nil
		}
	}
}

func (kb *Keyboard) Close() error {
	return keyboard.Close()
}
