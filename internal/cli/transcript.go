package cli

import (
	"io"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/game"
	"github.com/robalobadob/wordye/internal/solver"
	"github.com/robalobadob/wordye/internal/words"
)

// Transcript returns a solver observer that prints each turn:
//
//	Considering 468 total candidates...
//	[1/6] Guessing: ALERT
//	 A  L  E  R  T
func Transcript(r *Renderer, maxTurns int) func(solver.Step) {
	return func(st solver.Step) {
		if st.Candidates > 1 {
			r.Printf("Considering %d total candidates...\n", st.Candidates)
		} else {
			r.Println("Solved it!")
		}
		r.Printf("[%d/%d] Guessing: %s\n", st.Turn, maxTurns, strings.ToUpper(st.Guess))
		r.Println(r.Tiles(game.NewGuessRecord(st.Guess, st.Verdicts)))
	}
}

// Summary prints the outcome of a solver session and its share grid.
func Summary(r *Renderer, s *game.Session) {
	secret, _ := s.Secret()
	if s.Won() {
		r.Printf("Solved %s in %d/%d.\n", strings.ToUpper(secret), s.Turn(), s.MaxTurns())
	} else {
		r.Printf("Failed to solve %s.\n", strings.ToUpper(secret))
	}
	r.Println()
	r.Println(s.Share())
}

// RunBench solves every answer in list, drawing a progress bar on progress,
// and prints the turn distribution to r.
func RunBench(cfg config.Game, list *words.List, r *Renderer, progress io.Writer) error {
	n, _ := list.Stats()
	bar := progressbar.NewOptions(n,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	rep, err := solver.Bench(cfg, list, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return err
	}

	turns := make([]int, 0, len(rep.Turns))
	for t := range rep.Turns {
		turns = append(turns, t)
	}
	sort.Ints(turns)

	r.Printf("Solved %d/%d answers, mean %.3f turns, worst %s (%d).\n", rep.Games, n, rep.Mean(), strings.ToUpper(rep.Worst), rep.Max())
	for _, t := range turns {
		r.Printf("%d: %5d %s\n", t, rep.Turns[t], strings.Repeat("#", (rep.Turns[t]+9)/10))
	}
	return nil
}
