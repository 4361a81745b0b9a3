package score

import (
	"math"
	"testing"
)

func TestJournalSummary(t *testing.T) {
	j, err := OpenJournal(MemoryDSN)
	if nil != err {
		t.Fatal(err)
	}
	defer j.Close()

	if err := j.Record(1, 1, Judgement{Tier: Perfect}); nil == err {
		t.Error("expected an error recording outside a run")
	}

	if err := j.Begin("one"); nil != err {
		t.Fatal(err)
	}
	records := []Judgement{
		{Tier: Perfect, Distance: 2},
		{Tier: Perfect, Distance: 4},
		{Tier: Good, Distance: 30},
		{Tier: Miss, Forced: true},
	}
	for i, r := range records {
		if err := j.Record(i, 1, r); nil != err {
			t.Fatal(err)
		}
	}

	s, err := j.Summary()
	if nil != err {
		t.Fatal(err)
	}
	if s.Level != "one" || s.Hits != 4 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.Counts[Perfect] != 2 || s.Counts[Good] != 1 || s.Counts[Miss] != 1 || s.Counts[Bad] != 0 {
		t.Errorf("unexpected counts %v", s.Counts)
	}
	if s.Mean != 12 {
		t.Errorf("expected mean 12, got %v", s.Mean)
	}
	// distances 2, 4, 30 around 12: (100+64+324)/2
	if math.Abs(s.Stdev-math.Sqrt(244)) > 1e-9 {
		t.Errorf("unexpected stdev %v", s.Stdev)
	}

	// a new run starts from nothing
	if err := j.Begin("two"); nil != err {
		t.Fatal(err)
	}
	s, err = j.Summary()
	if nil != err {
		t.Fatal(err)
	}
	if s.Hits != 0 || s.Mean != 0 || s.Level != "two" {
		t.Errorf("expected an empty run, got %+v", s)
	}
}
