package render

import (
	"image/color"
	"strings"
	"testing"
)

type frameWriter struct {
	frames []string
}

func (w *frameWriter) Write(p []byte) (int, error) {
	w.frames = append(w.frames, string(p))
	return len(p), nil
}

func TestProject(t *testing.T) {
	r := NewRenderer(&frameWriter{}, 1024, 768, 48, 128)
	tests := []struct {
		X, Y     float64
		Row, Col uint16
		Ok       bool
	}{
		{0, 0, 1, 1, true},
		{512, 384, 25, 65, true},
		{1023, 767, 48, 128, true},
		{1024, 10, 0, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, test := range tests {
		row, col, ok := r.Project(test.X, test.Y)
		if row != test.Row || col != test.Col || ok != test.Ok {
			t.Errorf("(%v, %v) projected to %d %d %v", test.X, test.Y, row, col, ok)
		}
	}
}

func TestRenderLoopDecorations(t *testing.T) {
	w := &frameWriter{}
	r := NewRenderer(w, 1024, 768, 24, 80)
	r.AddDecoration(3, 4, "*", 2)
	r.RenderLoop(0, func(frame uint64) bool {
		r.FillColor(1, 1, color.RGBA{R: 255}, "x")
		return frame < 2
	})
	if len(w.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(w.frames))
	}
	for i, f := range w.frames {
		if !strings.Contains(f, "\033[1;1H\033[38;2;255;0;0mx\033[0m") {
			t.Errorf("frame %d missing fill: %q", i, f)
		}
		shown := strings.Contains(f, "\033[3;4H*")
		if shown != (i < 2) {
			t.Errorf("frame %d decoration shown %v", i, shown)
		}
	}
}

func TestText(t *testing.T) {
	w := &frameWriter{}
	r := NewRenderer(w, 1024, 768, 24, 80)
	r.Text(10, color.RGBA{}, "CLEAR!")
	r.flush()
	if !strings.HasPrefix(w.frames[0], "\033[10;38H") {
		t.Errorf("text not centred: %q", w.frames[0])
	}
}
