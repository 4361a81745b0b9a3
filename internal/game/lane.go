package game

import (
	"strings"

	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"github.com/pkg/errors"
)

const (
	// TargetHeight is the y of the target line notes are judged against.
	TargetHeight = 657
	// LaneCentre is the y the lane art is centred on.
	LaneCentre = 384
)

// LaneKind identifies a lane and the key that plays it.
type LaneKind int

const (
	LaneLeft LaneKind = iota
	LaneRight
	LaneUp
	LaneDown
	LaneSpecial
	laneKindCount
)

var ErrUnknownLane = errors.New("unknown lane kind")

var laneNames = [...]string{
	LaneLeft:    "Left",
	LaneRight:   "Right",
	LaneUp:      "Up",
	LaneDown:    "Down",
	LaneSpecial: "Special",
}

var laneKeys = [...]input.Key{
	LaneLeft:    input.Left,
	LaneRight:   input.Right,
	LaneUp:      input.Up,
	LaneDown:    input.Down,
	LaneSpecial: input.Special,
}

func (k LaneKind) String() string {
	if k >= 0 && k < laneKindCount {
		return laneNames[k]
	}
	return "Unknown"
}

func (k LaneKind) Key() input.Key {
	return laneKeys[k]
}

func ParseLaneKind(s string) (LaneKind, error) {
	for k, name := range laneNames {
		if strings.EqualFold(name, s) {
			return LaneKind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownLane, "%q", s)
}

// Policy decides how many notes a lane may score in a single frame.
type Policy int

const (
	// PolicyPriority scores at most one note kind per frame, in variant
	// order. A hold or bomb stream with notes left always claims the frame.
	PolicyPriority Policy = iota
	// PolicySummed checks the current note of every stream and sums the
	// scores.
	PolicySummed
)

func (p Policy) String() string {
	if p == PolicySummed {
		return "summed"
	}
	return "priority"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "priority":
		return PolicyPriority, nil
	case "summed":
		return PolicySummed, nil
	}
	return 0, errors.Errorf("unknown scoring policy %q", s)
}

// stream is the ordered notes of one variant. cursor points at the
// earliest note not yet completed; notes before it are never revisited.
type stream struct {
	notes  []*Note
	cursor int
}

func (s *stream) done() bool {
	return s.cursor >= len(s.notes)
}

func (s *stream) current() *Note {
	return s.notes[s.cursor]
}

// remove unlinks n. Notes behind the cursor are completed and only active
// notes are ever struck, so the cursor keeps pointing at the same note
// unless n was that note, in which case its successor takes its place.
func (s *stream) remove(n *Note) bool {
	for i, o := range s.notes {
		if o != n {
			continue
		}
		s.notes = append(s.notes[:i], s.notes[i+1:]...)
		if i < s.cursor {
			s.cursor--
		}
		return true
	}
	return false
}

// Lane is a key bound track notes travel down. It keeps one stream per
// variant.
type Lane struct {
	Kind   LaneKind
	Key    input.Key
	X      int
	Policy Policy

	streams [variantCount]stream
}

func NewLane(kind LaneKind, x int) *Lane {
	return &Lane{Kind: kind, Key: kind.Key(), X: x}
}

// Add appends n to the stream of its variant.
func (l *Lane) Add(n *Note) {
	s := &l.streams[n.Variant]
	s.notes = append(s.notes, n)
}

// Notes returns the notes of variant v still in the lane.
func (l *Lane) Notes(v Variant) []*Note {
	return l.streams[v].notes
}

// Len is the number of notes in the lane.
func (l *Lane) Len() int {
	total := 0
	for i := range l.streams {
		total += len(l.streams[i].notes)
	}
	return total
}

// Active calls fn for every active note.
func (l *Lane) Active(fn func(n *Note)) {
	for i := range l.streams {
		s := &l.streams[i]
		for _, n := range s.notes[s.cursor:] {
			if n.IsActive() {
				fn(n)
			}
		}
	}
}

// Update advances every note of the lane by one frame and returns the
// lane's score for it.
func (l *Lane) Update(in Input, frame int, eval *score.Evaluator, pace *Pace) int {
	for i := range l.streams {
		s := &l.streams[i]
		for _, n := range s.notes[s.cursor:] {
			n.Update(frame, pace)
		}
	}

	if l.Policy == PolicySummed {
		total := 0
		for _, v := range Variants {
			total += l.check(v, in, eval, pace)
		}
		return total
	}

	for _, v := range Variants {
		s := &l.streams[v]
		if s.done() {
			continue
		}
		n := s.current()
		points := l.check(v, in, eval, pace)
		if n.IsCompleted() || v == Hold || v == Bomb {
			return points
		}
	}
	return 0
}

// check scores the current note of v and moves the cursor on if it
// completed.
func (l *Lane) check(v Variant, in Input, eval *score.Evaluator, pace *Pace) int {
	s := &l.streams[v]
	if s.done() {
		return 0
	}
	n := s.current()
	points := n.CheckScore(in, l.Key, eval, TargetHeight, pace)
	if n.IsCompleted() {
		s.cursor++
	}
	return points
}

// IsFinished reports whether every note of the lane has completed.
func (l *Lane) IsFinished() bool {
	for i := range l.streams {
		for _, n := range l.streams[i].notes {
			if !n.IsCompleted() {
				return false
			}
		}
	}
	return true
}

// Strike removes every active note within radius of pos. Struck notes are
// not scored and never complete; the lane simply has fewer notes.
func (l *Lane) Strike(pos Vec, radius float64) int {
	struck := []*Note{}
	l.Active(func(n *Note) {
		if n.Position(l.X).Dist(pos) <= radius {
			struck = append(struck, n)
		}
	})
	for _, n := range struck {
		l.streams[n.Variant].remove(n)
	}
	return len(struck)
}
