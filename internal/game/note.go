package game

import (
	"context"
	"strings"

	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
)

// Variant is the kind of a note. The order is the scoring priority of a
// lane.
type Variant int

const (
	Normal Variant = iota
	Hold
	SpeedUp
	SlowDown
	DoubleScore
	Bomb
	variantCount
)

// Variants lists every variant in priority order.
var Variants = []Variant{Normal, Hold, SpeedUp, SlowDown, DoubleScore, Bomb}

var ErrUnknownVariant = errors.New("unknown note variant")

var variantNames = [...]string{
	Normal:      "Normal",
	Hold:        "Hold",
	SpeedUp:     "SpeedUp",
	SlowDown:    "SlowDown",
	DoubleScore: "DoubleScore",
	Bomb:        "Bomb",
}

func (v Variant) String() string {
	if v >= 0 && v < variantCount {
		return variantNames[v]
	}
	return "Unknown"
}

// Kind is the speed kind notes of this variant move with.
func (v Variant) Kind() Kind {
	return Kind(v)
}

func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(name, s) {
			return Variant(v), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownVariant, "%q", s)
}

const (
	spawnHeight     = 100
	holdSpawnHeight = 24

	// HoldOffset is the distance from the centre of a hold note to either
	// of its edges.
	HoldOffset = 82

	// ActivationRadius is how close to the target line a power-up note
	// must be to be resolved by a press.
	ActivationRadius = 50

	speedReward       = 15
	doubleScoreFactor = 2
	DoubleScoreFrames = 480
)

// effect is applied when a power-up note is resolved by a press.
type effect struct {
	reward int
	apply  func(p *Pace)
}

var effects = map[Variant]effect{
	SpeedUp:  {reward: speedReward, apply: (*Pace).IncreaseSpeed},
	SlowDown: {reward: speedReward, apply: (*Pace).DecreaseSpeed},
	DoubleScore: {apply: func(p *Pace) {
		p.Boost(doubleScoreFactor, DoubleScoreFrames)
	}},
	Bomb: {},
}

const (
	statePending   = "pending"
	stateActive    = "active"
	stateCompleted = "completed"

	eventActivate = "activate"
	eventComplete = "complete"
)

// Input is the edge triggered key state of one frame.
type Input interface {
	Pressed(k input.Key) bool
	Released(k input.Key) bool
}

// Note is a single note travelling down a lane. It goes from pending to
// active when the frame counter reaches its appearance frame, and from
// active to completed when it is scored. Neither transition is reversible.
type Note struct {
	Variant         Variant
	AppearanceFrame int

	y           int
	holdStarted bool
	state       *fsm.FSM
}

func NewNote(v Variant, appearanceFrame int) *Note {
	y := spawnHeight
	if v == Hold {
		y = holdSpawnHeight
	}
	return &Note{
		Variant:         v,
		AppearanceFrame: appearanceFrame,
		y:               y,
		state: fsm.NewFSM(
			statePending,
			fsm.Events{
				{Name: eventActivate, Src: []string{statePending}, Dst: stateActive},
				{Name: eventComplete, Src: []string{stateActive}, Dst: stateCompleted},
			},
			fsm.Callbacks{},
		),
	}
}

func (n *Note) fire(event string) {
	if n.state.Can(event) {
		_ = n.state.Event(context.Background(), event)
	}
}

func (n *Note) Y() int {
	return n.y
}

func (n *Note) IsPending() bool {
	return n.state.Is(statePending)
}

func (n *Note) IsActive() bool {
	return n.state.Is(stateActive)
}

func (n *Note) IsCompleted() bool {
	return n.state.Is(stateCompleted)
}

// HoldStarted reports whether a hold note has been pressed and is waiting
// for its release.
func (n *Note) HoldStarted() bool {
	return n.holdStarted
}

// Edges returns the top and bottom of the note. Only hold notes have
// length.
func (n *Note) Edges() (top, bottom int) {
	if n.Variant != Hold {
		return n.y, n.y
	}
	return n.y - HoldOffset, n.y + HoldOffset
}

// Position is the centre of the note in a lane at x.
func (n *Note) Position(x int) Vec {
	return Vec{float64(x), float64(n.y)}
}

// Update moves an active note and activates a pending one once frame has
// reached its appearance frame.
func (n *Note) Update(frame int, pace *Pace) {
	if n.IsActive() {
		n.y += pace.Speed(n.Variant.Kind())
	}
	if frame >= n.AppearanceFrame && n.IsPending() {
		n.fire(eventActivate)
	}
}

func (n *Note) complete() {
	n.fire(eventComplete)
}

// CheckScore evaluates the note against the target line and returns its
// score for this frame. It is the only way a note completes.
func (n *Note) CheckScore(in Input, key input.Key, eval *score.Evaluator, target int, pace *Pace) int {
	if !n.IsActive() {
		return 0
	}
	switch n.Variant {
	case Normal:
		return n.checkNormal(in, key, eval, target)
	case Hold:
		return n.checkHold(in, key, eval, target)
	}
	return n.checkPowerUp(in, key, target, pace)
}

func (n *Note) checkNormal(in Input, key input.Key, eval *score.Evaluator, target int) int {
	tier := eval.Evaluate(n.y, target, in.Pressed(key))
	if tier.Scored() {
		n.complete()
	}
	return tier.Score()
}

func (n *Note) checkHold(in Input, key input.Key, eval *score.Evaluator, target int) int {
	top, bottom := n.Edges()
	if !n.holdStarted {
		tier := eval.Evaluate(bottom, target, in.Pressed(key))
		switch {
		case tier == score.Miss:
			n.complete()
		case tier.Scored():
			n.holdStarted = true
		}
		return tier.Score()
	}

	released := in.Released(key)
	tier := eval.Evaluate(top, target, released)
	if tier.Scored() {
		n.complete()
		return tier.Score()
	}
	if released {
		// let go before the tail reached the target band
		n.complete()
		eval.Force(score.Miss)
		return score.Miss.Score()
	}
	return 0
}

func (n *Note) checkPowerUp(in Input, key input.Key, target int, pace *Pace) int {
	distance := n.y - target
	if distance < 0 {
		distance = -distance
	}
	if distance <= ActivationRadius && in.Pressed(key) {
		n.complete()
		e := effects[n.Variant]
		if nil != e.apply {
			e.apply(pace)
		}
		return e.reward
	}
	if n.y >= target {
		// soft miss
		n.complete()
	}
	return 0
}
