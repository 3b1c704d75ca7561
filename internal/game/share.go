package game

import (
	"fmt"
	"strings"
)

// Share renders the spoiler-free result grid of a finished session:
//
//	Wordye GRAPE 4/6*
//	⬛🟩🟩⬛🟩
//	...
//
// The score is X on a loss and the trailing * marks hard mode.
// It returns "" while the session is still in progress.
func (s *Session) Share() string {
	if !s.Over() {
		return ""
	}
	score := "X"
	if s.Won() {
		score = fmt.Sprint(len(s.records))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Wordye %s %s/%d", strings.ToUpper(s.secret), score, s.cfg.MaxTurns)
	if s.cfg.HardMode {
		b.WriteByte('*')
	}
	for _, r := range s.records {
		b.WriteByte('\n')
		for _, v := range r.verdicts {
			b.WriteString(v.Emoji())
		}
	}
	return b.String()
}
