package sfx

import (
	"testing"
	"time"
)

func TestTone(t *testing.T) {
	s := Tone(SampleRate, 440, 10*time.Millisecond)
	expected := SampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] < -1 || sample[0] > 1 || sample[0] != sample[1] {
				t.Fatalf("sample out of range %v", sample)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != expected {
		t.Errorf("streamed %d samples, expected %d", total, expected)
	}
}

func TestToneStartsSilent(t *testing.T) {
	buf := make([][2]float64, 1)
	Tone(SampleRate, 880, time.Millisecond).Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample %v", buf[0][0])
	}
}
