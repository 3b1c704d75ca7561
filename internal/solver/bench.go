package solver

import (
	"fmt"

	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/words"
)

// Report summarizes a benchmark run.
type Report struct {
	Games int
	Turns map[int]int // turns-to-win → number of secrets
	Worst string      // a secret that needed the most turns
}

// Mean is the average number of turns per game.
func (r Report) Mean() float64 {
	if r.Games == 0 {
		return 0
	}
	total := 0
	for t, n := range r.Turns {
		total += t * n
	}
	return float64(total) / float64(r.Games)
}

// Max is the largest number of turns any game needed.
func (r Report) Max() int {
	m := 0
	for t := range r.Turns {
		m = max(m, t)
	}
	return m
}

// Bench solves every answer in list. A lost game or an emptied pool aborts the run.
// progress, if non-nil, is called once per finished game.
func Bench(cfg config.Game, list *words.List, progress func()) (Report, error) {
	r := Report{Turns: make(map[int]int)}
	for _, secret := range list.Answers() {
		s, err := Solve(cfg, list, secret)
		if err != nil {
			return r, fmt.Errorf("solver: bench %q: %w", secret, err)
		}
		if !s.Won() {
			return r, fmt.Errorf("solver: bench %q: not solved in %d turns", secret, s.MaxTurns())
		}
		if s.Turn() > r.Max() {
			r.Worst = secret
		}
		r.Games++
		r.Turns[s.Turn()]++
		if progress != nil {
			progress()
		}
	}
	return r, nil
}
