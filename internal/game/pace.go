package game

// Kind is a speed-bearing entity kind. Each kind moves at its own speed but
// speed notes step every kind at once.
type Kind int

const (
	KindNote Kind = iota
	KindHold
	KindSpeedUp
	KindSlowDown
	KindDoubleScore
	KindBomb
	KindEnemy
	KindArrow
	kindCount
)

const (
	noteSpeed  = 2
	enemySpeed = 1
	arrowSpeed = 6
	minSpeed   = 1
)

// Pace is the speed and score multiplier state shared by every moving
// entity of a session. It is passed explicitly into every update.
type Pace struct {
	speeds     [kindCount]int
	multiplier int
	remaining  int
}

func NewPace() *Pace {
	p := &Pace{}
	p.Reset()
	return p
}

// Reset restores the starting speeds and a x1 multiplier.
func (p *Pace) Reset() {
	for k := Kind(0); k < kindCount; k++ {
		switch k {
		case KindEnemy:
			p.speeds[k] = enemySpeed
		case KindArrow:
			p.speeds[k] = arrowSpeed
		default:
			p.speeds[k] = noteSpeed
		}
	}
	p.multiplier = 1
	p.remaining = 0
}

func (p *Pace) Speed(k Kind) int {
	return p.speeds[k]
}

// IncreaseSpeed steps every kind up by one.
func (p *Pace) IncreaseSpeed() {
	for k := range p.speeds {
		p.speeds[k]++
	}
}

// DecreaseSpeed steps every kind down by one, never below 1.
func (p *Pace) DecreaseSpeed() {
	for k := range p.speeds {
		if p.speeds[k] > minSpeed {
			p.speeds[k]--
		}
	}
}

func (p *Pace) Multiplier() int {
	return p.multiplier
}

// SetMultiplier sets the multiplier with no expiry.
func (p *Pace) SetMultiplier(v int) {
	p.multiplier = v
	p.remaining = 0
}

// Boost sets the multiplier for the given number of frames, after which it
// falls back to x1. A new boost replaces a running one.
func (p *Pace) Boost(v, frames int) {
	p.multiplier = v
	p.remaining = frames
}

// Remaining is the number of frames left on the current boost.
func (p *Pace) Remaining() int {
	return p.remaining
}

// Tick counts down a running boost, once per frame.
func (p *Pace) Tick() {
	if p.remaining == 0 {
		return
	}
	p.remaining--
	if p.remaining == 0 {
		p.multiplier = 1
	}
}
