// internal/cli/render.go
//
// Terminal rendering for tiles, the blank board row and the keyboard hint line.
// Colours follow the output's termenv profile, so piping to a file or a test
// buffer yields plain text.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/robalobadob/wordye/internal/game"
)

// Renderer writes coloured game output to a single writer.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer wraps w. Options are passed to termenv (e.g. termenv.WithProfile).
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{w: w, out: termenv.NewOutput(w, opts...)}
}

// Printf writes formatted text.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Println writes a line.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.w, args...)
}

// BlankRow is the empty board row printed before the first guess.
func (r *Renderer) BlankRow(length int) string {
	return strings.Repeat("  _  ", length)
}

// Tiles renders a scored guess as a row of coloured letter tiles.
func (r *Renderer) Tiles(rec game.GuessRecord) string {
	var b strings.Builder
	guess := strings.ToUpper(rec.Guess())
	for i, v := range rec.Verdicts() {
		b.WriteString(" ")
		b.WriteString(r.letter(" "+guess[i:i+1]+" ", v))
		b.WriteString(" ")
	}
	return b.String()
}

// Keyboard lists the letters not yet eliminated, coloured by what is known about them.
func (r *Renderer) Keyboard(kb game.Keyboard) string {
	var b strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if kb.Eliminated(c) {
			continue
		}
		b.WriteString(r.letter(string(c-'a'+'A'), kb[c]))
	}
	return b.String()
}

// letter styles text for verdict v; unknown letters stay plain.
func (r *Renderer) letter(text string, v game.Verdict) string {
	s := r.out.String(text)
	switch v {
	case game.Exact:
		s = s.Foreground(r.out.Color("0")).Background(r.out.Color("10")) // black on green
	case game.Present:
		s = s.Foreground(r.out.Color("0")).Background(r.out.Color("11")) // black on yellow
	case game.Absent:
		s = s.Foreground(r.out.Color("15")).Background(r.out.Color("0")) // white on black
	default:
		return text
	}
	return s.String()
}
