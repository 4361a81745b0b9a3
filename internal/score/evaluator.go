package score

// LabelFrames is how long an accuracy label stays on screen.
const LabelFrames = 30

// Evaluator judges note positions against the target line and keeps the
// single accuracy label shown on screen. Only one label is shown at a time,
// the last judgement wins.
type Evaluator struct {
	// WindowHeight is the bottom edge of the playing field. An untriggered
	// note at or below it is a miss.
	WindowHeight int

	// OnJudge, if set, is called for every scored judgement.
	OnJudge func(Judgement)

	label     Tier
	remaining int
}

func NewEvaluator(windowHeight int) *Evaluator {
	return &Evaluator{WindowHeight: windowHeight}
}

// Evaluate judges a note at height against target. triggered is true when
// the relevant key edge happened this frame.
func (e *Evaluator) Evaluate(height, target int, triggered bool) Tier {
	distance := height - target
	if distance < 0 {
		distance = -distance
	}
	tier := Judge(distance, triggered, height >= e.WindowHeight)
	if tier.Scored() {
		e.record(Judgement{Tier: tier, Distance: distance})
	}
	return tier
}

// Force records tier without a measured distance.
func (e *Evaluator) Force(tier Tier) {
	if !tier.Scored() {
		return
	}
	e.record(Judgement{Tier: tier, Forced: true})
}

func (e *Evaluator) record(j Judgement) {
	e.label = j.Tier
	e.remaining = LabelFrames
	if nil != e.OnJudge {
		e.OnJudge(j)
	}
}

// Tick counts down the label display, once per frame.
func (e *Evaluator) Tick() {
	if e.remaining > 0 {
		e.remaining--
	}
}

// Label returns the accuracy label to display, if any.
func (e *Evaluator) Label() (string, bool) {
	if e.remaining == 0 || !e.label.Scored() {
		return "", false
	}
	return e.label.String(), true
}

// Remaining is the number of frames the current label will still be shown.
func (e *Evaluator) Remaining() int {
	return e.remaining
}

// Reset clears the label.
func (e *Evaluator) Reset() {
	e.label = NotScored
	e.remaining = 0
}
