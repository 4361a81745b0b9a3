package input

// Key is a logical game key. Physical keys are mapped onto these by the
// configured bindings.
type Key uint8

const (
	Left Key = iota
	Right
	Up
	Down
	Special
	Fire
	Pause
	Escape
	Level1
	Level2
	Level3
	Level4
	Level5
	Level6
	Level7
	Level8
	Level9
	keyCount
)

var keyNames = [...]string{
	Left:    "left",
	Right:   "right",
	Up:      "up",
	Down:    "down",
	Special: "special",
	Fire:    "fire",
	Pause:   "pause",
	Escape:  "escape",
	Level1:  "1",
	Level2:  "2",
	Level3:  "3",
	Level4:  "4",
	Level5:  "5",
	Level6:  "6",
	Level7:  "7",
	Level8:  "8",
	Level9:  "9",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// LevelKey returns the key that selects the level at index i, counting
// from zero.
func LevelKey(i int) (Key, bool) {
	if i < 0 || Level1+Key(i) > Level9 {
		return 0, false
	}
	return Level1 + Key(i), true
}

// Set is a set of keys held down.
type Set uint32

func (s Set) Has(k Key) bool {
	return s&(1<<k) != 0
}

func (s Set) With(k Key) Set {
	return s | 1<<k
}

func (s Set) Without(k Key) Set {
	return s &^ (1 << k)
}
