package score

import (
	"testing"
)

type judgeTest struct {
	Distance  int
	Triggered bool
	OffScreen bool
	Expected  Tier
}

var judgeTests = []judgeTest{
	{0, true, false, Perfect},
	{15, true, false, Perfect},
	{-15, true, false, Perfect},
	{16, true, false, Good},
	{50, true, false, Good},
	{51, true, false, Bad},
	{100, true, false, Bad},
	{101, true, false, Miss},
	{200, true, false, Miss},
	{201, true, false, NotScored},
	{1000, true, true, NotScored},
	{0, false, false, NotScored},
	{300, false, true, Miss},
	{5, false, true, Miss},
}

func TestJudge(t *testing.T) {
	for _, test := range judgeTests {
		tier := Judge(test.Distance, test.Triggered, test.OffScreen)
		if tier != test.Expected {
			t.Log("    Distance:", test.Distance)
			t.Log("   Triggered:", test.Triggered)
			t.Log("   OffScreen:", test.OffScreen)
			t.Log("Calculated  ", tier)
			t.Log("  Expected  ", test.Expected)
			t.Fail()
		}
	}
}

func TestTierScores(t *testing.T) {
	expected := map[Tier]int{Perfect: 10, Good: 5, Bad: -1, Miss: -5, NotScored: 0}
	for tier, score := range expected {
		if tier.Score() != score {
			t.Errorf("%v scored %d, expected %d", tier, tier.Score(), score)
		}
	}
}

func TestEvaluateOffScreen(t *testing.T) {
	e := NewEvaluator(768)
	if tier := e.Evaluate(767, 657, false); tier != NotScored {
		t.Errorf("expected no score above the bottom edge, got %v", tier)
	}
	if tier := e.Evaluate(768, 657, false); tier != Miss {
		t.Errorf("expected a miss at the bottom edge, got %v", tier)
	}
}

func TestEvaluateLabel(t *testing.T) {
	judged := []Judgement{}
	e := NewEvaluator(768)
	e.OnJudge = func(j Judgement) { judged = append(judged, j) }

	if _, ok := e.Label(); ok {
		t.Fatal("label shown before any judgement")
	}

	e.Evaluate(660, 657, true)
	label, ok := e.Label()
	if !ok || label != "PERFECT" {
		t.Fatalf("expected PERFECT, got %q %v", label, ok)
	}

	// a non scoring check does not touch the label
	e.Evaluate(100, 657, true)
	if label, _ := e.Label(); label != "PERFECT" {
		t.Errorf("label changed to %q by an unscored check", label)
	}

	e.Evaluate(700, 657, true)
	if label, _ := e.Label(); label != "GOOD" {
		t.Errorf("expected last write to win, got %q", label)
	}

	for i := 0; i < LabelFrames-1; i++ {
		e.Tick()
	}
	if _, ok := e.Label(); !ok {
		t.Error("label expired early")
	}
	e.Tick()
	if _, ok := e.Label(); ok {
		t.Error("label still shown after its window")
	}

	e.Force(Miss)
	if label, _ := e.Label(); label != "MISS" {
		t.Errorf("expected forced MISS, got %q", label)
	}

	if len(judged) != 3 {
		t.Fatalf("expected 3 judgements, got %d", len(judged))
	}
	if judged[0].Distance != 3 || judged[1].Distance != 43 || !judged[2].Forced {
		t.Errorf("unexpected judgements %+v", judged)
	}
}
