package game

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/score"
)

// dueLane returns a lane holding one note per variant given, all active
// and two units above the target so they reach it on the next update.
func dueLane(policy Policy, variants ...Variant) *Lane {
	l := NewLane(LaneLeft, 300)
	l.Policy = policy
	for _, v := range variants {
		l.Add(NewNote(v, 0))
	}
	l.Update(none, 0, score.NewEvaluator(WindowHeight), NewPace())
	l.Active(func(n *Note) { n.y = TargetHeight - noteSpeed })
	return l
}

func TestLanePriority(t *testing.T) {
	pace := NewPace()
	eval := score.NewEvaluator(WindowHeight)
	l := dueLane(PolicyPriority, Normal, SpeedUp)

	if s := l.Update(press, 1, eval, pace); s != score.Perfect.Score() {
		t.Fatalf("expected the normal note to claim the frame, got %d", s)
	}
	if l.Notes(SpeedUp)[0].IsCompleted() || pace.Speed(KindNote) != noteSpeed {
		t.Fatal("speed up note was evaluated in the same frame")
	}

	if s := l.Update(press, 2, eval, pace); s != speedReward {
		t.Errorf("expected the speed up on the next frame, got %d", s)
	}
	if !l.IsFinished() {
		t.Error("lane not finished")
	}
}

func TestLaneSummed(t *testing.T) {
	pace := NewPace()
	eval := score.NewEvaluator(WindowHeight)
	l := dueLane(PolicySummed, Normal, SpeedUp, Bomb)

	if s := l.Update(press, 1, eval, pace); s != score.Perfect.Score()+speedReward {
		t.Errorf("expected every due note to score, got %d", s)
	}
	if !l.IsFinished() {
		t.Error("lane not finished")
	}
}

func TestLaneHoldClaimsFrame(t *testing.T) {
	pace := NewPace()
	eval := score.NewEvaluator(WindowHeight)
	l := NewLane(LaneDown, 300)
	l.Add(NewNote(Hold, 1000))
	l.Add(NewNote(SpeedUp, 0))
	l.Update(none, 0, eval, pace)
	l.Notes(SpeedUp)[0].y = TargetHeight

	// the pending hold note is checked first and ends the frame
	if s := l.Update(input.Press(input.Down), 1, eval, pace); s != 0 {
		t.Errorf("scored %d", s)
	}
	if l.Notes(SpeedUp)[0].IsCompleted() {
		t.Error("speed up note evaluated behind a hold stream")
	}
}

func TestLaneCursor(t *testing.T) {
	pace := NewPace()
	eval := score.NewEvaluator(WindowHeight)
	l := NewLane(LaneLeft, 300)
	for _, f := range []int{0, 50, 100} {
		l.Add(NewNote(Normal, f))
	}

	total := 0
	frames := 0
	for frame := 0; !l.IsFinished() && frame < 2000; frame++ {
		var in input.Frame
		for _, n := range l.Notes(Normal) {
			// y only takes even values, press when the next step lands
			// one unit short of the target
			if d := n.Y() + noteSpeed - TargetHeight; n.IsActive() && d >= -1 && d <= 0 {
				in = press
			}
		}
		total += l.Update(in, frame, eval, pace)
		frames = frame
	}
	if !l.IsFinished() {
		t.Fatal("lane never finished")
	}
	if total != 3*score.Perfect.Score() {
		t.Errorf("scored %d after %d frames", total, frames)
	}
}

func TestLaneStrike(t *testing.T) {
	pace := NewPace()
	eval := score.NewEvaluator(WindowHeight)
	l := NewLane(LaneLeft, 300)
	for i := 0; i < 4; i++ {
		l.Add(NewNote(Normal, 0))
	}
	l.Update(none, 0, eval, pace)
	notes := l.Notes(Normal)
	first, second, third, fourth := notes[0], notes[1], notes[2], notes[3]
	first.y, second.y, third.y, fourth.y = TargetHeight, 500, 300, 100

	if s := l.Update(press, 1, eval, pace); s != score.Perfect.Score() {
		t.Fatalf("scored %d", s)
	}

	// nothing behind the cursor can be struck
	if n := l.Strike(first.Position(l.X), 1); n != 0 {
		t.Errorf("struck %d completed notes", n)
	}

	// strike the note at the cursor and one ahead of it
	if n := l.Strike(Vec{300, 502}, 5); n != 1 {
		t.Fatalf("struck %d notes", n)
	}
	if n := l.Strike(third.Position(l.X), 0); n != 1 {
		t.Fatalf("struck %d notes", n)
	}
	if l.Len() != 2 || l.Notes(Normal)[1] != fourth {
		t.Fatalf("unexpected notes left %v", l.Notes(Normal))
	}
	if second.IsCompleted() || third.IsCompleted() {
		t.Error("struck notes must not complete")
	}

	for frame := 2; !l.IsFinished() && frame < 1000; frame++ {
		if s := l.Update(none, frame, eval, pace); s != 0 && s != score.Miss.Score() {
			t.Errorf("unexpected score %d", s)
		}
	}
	if !l.IsFinished() {
		t.Error("lane never finished after strikes")
	}
}

func TestParseLaneKind(t *testing.T) {
	for k := LaneKind(0); k < laneKindCount; k++ {
		p, err := ParseLaneKind(k.String())
		if nil != err || p != k {
			t.Errorf("%v parsed as %v (%v)", k, p, err)
		}
	}
	if _, err := ParseLaneKind("Sideways"); nil == err {
		t.Error("expected an error")
	}
	if LaneSpecial.Key() != input.Special {
		t.Error("special lane is not played with the special key")
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyPriority, PolicySummed} {
		parsed, err := ParsePolicy(strings.ToUpper(p.String()))
		if nil != err || parsed != p {
			t.Errorf("%v parsed as %v, %v", p, parsed, err)
		}
	}
	if _, err := ParsePolicy("greedy"); nil == err {
		t.Error("expected unknown policy to fail")
	}
}
