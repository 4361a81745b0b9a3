package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// DefaultRenderer draws to an ANSI terminal. Everything written during a
// frame is buffered and flushed at once.
type DefaultRenderer struct {
	// Width and Height are the size of the game window being projected.
	Width, Height float64

	out          io.Writer
	fd           int
	rows, cols   uint16
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	Row, Col uint16
	Content  string
	Frames   int // remaining frames until removed
}

// NewRenderer renders a width by height game window into a terminal of
// rows by cols cells.
func NewRenderer(out io.Writer, width, height float64, rows, cols uint16) *DefaultRenderer {
	return &DefaultRenderer{
		Width:  width,
		Height: height,
		out:    out,
		fd:     -1,
		rows:   rows,
		cols:   cols,
	}
}

// NewTerminalRenderer renders to stdout at the current terminal size.
func NewTerminalRenderer(width, height float64) (*DefaultRenderer, error) {
	fd := int(os.Stdout.Fd())
	cols, rows, err := term.GetSize(fd)
	if nil != err {
		return nil, errors.Wrap(err, "unable to get terminal size")
	}
	r := NewRenderer(os.Stdout, width, height, uint16(rows), uint16(cols))
	r.fd = fd
	return r, nil
}

func (r *DefaultRenderer) Init() error {
	if r.fd >= 0 {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return errors.Wrap(err, "unable to enter raw mode")
		}
		r.restoreState = state
	}

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) Size() (uint16, uint16) {
	return r.rows, r.cols
}

func (r *DefaultRenderer) Project(x, y float64) (uint16, uint16, bool) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return 0, 0, false
	}
	// terminal cells are 1 based
	row := uint16(y*float64(r.rows)/r.Height) + 1
	col := uint16(x*float64(r.cols)/r.Width) + 1
	return row, col, true
}

func (r *DefaultRenderer) AddDecoration(row, col uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		Row:     row,
		Col:     col,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Row, d.Col, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per period until it returns false.
func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(frame uint64) bool) {
	cont := true
	for frame := uint64(0); cont; frame++ {
		now := time.Now()
		deadline := now.Add(period)

		r.buffer.WriteString("\033[H\033[2J")
		cont = render(frame)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

// move places the cursor at a 1 based cell.
func (r *DefaultRenderer) move(row, column uint16) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatUint(uint64(row), 10))
	r.buffer.WriteByte(';')
	r.buffer.WriteString(strconv.FormatUint(uint64(column), 10))
	r.buffer.WriteByte('H')
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.move(row, column)
	r.buffer.WriteString(message)
}

// FillColor writes message in a 24 bit foreground colour and resets the
// attributes after it.
func (r *DefaultRenderer) FillColor(row, column uint16, c color.RGBA, message string) {
	r.move(row, column)
	r.buffer.WriteString("\033[38;2;")
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		if i > 0 {
			r.buffer.WriteByte(';')
		}
		r.buffer.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	r.buffer.WriteByte('m')
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) Text(row uint16, c color.RGBA, message string) {
	width := uint16(utf8.RuneCountInString(message))
	col := uint16(1)
	if width < r.cols {
		col = (r.cols-width)/2 + 1
	}
	r.FillColor(row, col, c, message)
}

func (r *DefaultRenderer) flush() {
	r.out.Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}
