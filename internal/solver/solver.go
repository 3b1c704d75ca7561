// internal/solver/solver.go
//
// Automated player.
// Responsibilities:
//   - Hold the candidate pool (answers still consistent with all feedback).
//   - Choose the next guess from the pool (letter-coverage heuristic).
//   - Filter the pool after each scored guess.
//
// Notes:
//   - Every guess comes from the pool, so it is consistent with all feedback so far and
//     therefore always satisfies hard-mode rules.
//   - Solve runs its session with hard mode on regardless of the caller's config.
package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/game"
	"github.com/robalobadob/wordye/internal/words"
)

// ErrInconsistentFeedback means no candidate matches the feedback received.
// It indicates a broken word list or scorer, never a normal outcome.
var ErrInconsistentFeedback = errors.New("solver: no candidate is consistent with the feedback")

// Step describes one turn played by the agent.
type Step struct {
	Turn       int            // 1-based turn number
	Candidates int            // pool size when the guess was chosen
	Guess      string         // lowercase guess
	Verdicts   []game.Verdict // feedback for Guess
}

// Agent is a candidate-pool solver.
type Agent struct {
	pool    []string
	observe func(Step)
}

// Option configures an Agent.
type Option func(*Agent)

// WithObserver registers fn to be called after every scored guess.
func WithObserver(fn func(Step)) Option {
	return func(a *Agent) { a.observe = fn }
}

// New creates an agent whose pool is the full answer list, in list order.
func New(list *words.List, opts ...Option) *Agent {
	a := &Agent{pool: list.Answers()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Pool returns a copy of the remaining candidates.
func (a *Agent) Pool() []string {
	return slices.Clone(a.pool)
}

// Next picks the guess for the coming turn.
//
// Each distinct letter is weighted by the number of candidates containing it; a word
// scores the sum of the weights of its distinct letters. The highest score wins and
// ties go to the earliest candidate. With one or two candidates left the first is taken.
func (a *Agent) Next() (string, error) {
	if len(a.pool) == 0 {
		return "", ErrInconsistentFeedback
	}
	if len(a.pool) <= 2 {
		return a.pool[0], nil
	}

	var freq [256]int
	for _, w := range a.pool {
		for _, c := range distinct(w) {
			freq[c]++
		}
	}

	best, bestScore := a.pool[0], -1
	for _, w := range a.pool {
		score := 0
		for _, c := range distinct(w) {
			score += freq[c]
		}
		if score > bestScore {
			best, bestScore = w, score
		}
	}
	return best, nil
}

// Observe keeps only the candidates that would have produced verdicts for guess
// had they been the secret.
func (a *Agent) Observe(guess string, verdicts []game.Verdict) error {
	kept := a.pool[:0]
	for _, w := range a.pool {
		v, err := game.Evaluate(w, guess)
		if err != nil {
			return err
		}
		if slices.Equal(v, verdicts) {
			kept = append(kept, w)
		}
	}
	a.pool = kept
	if len(a.pool) == 0 {
		return fmt.Errorf("%w: %q", ErrInconsistentFeedback, guess)
	}
	return nil
}

// Play guesses on s until it is over.
func (a *Agent) Play(s *game.Session) error {
	for !s.Over() {
		candidates := len(a.pool)
		guess, err := a.Next()
		if err != nil {
			return err
		}
		rec, err := s.Submit(guess)
		if err != nil {
			return fmt.Errorf("solver: submit %q: %w", guess, err)
		}
		verdicts := rec.Verdicts()
		if err := a.Observe(guess, verdicts); err != nil {
			log.Error().Err(err).Str("session", s.ID).Int("turn", s.Turn()).Msg("candidate pool emptied")
			return err
		}
		log.Debug().Str("session", s.ID).Str("guess", guess).Int("remaining", len(a.pool)).Msg("pool filtered")
		if a.observe != nil {
			a.observe(Step{Turn: s.Turn(), Candidates: candidates, Guess: guess, Verdicts: verdicts})
		}
	}
	return nil
}

// Solve plays a fresh hard-mode session against secret (random when empty).
func Solve(cfg config.Game, list *words.List, secret string, opts ...Option) (*game.Session, error) {
	cfg.HardMode = true
	s, err := game.NewSession(cfg, list, secret)
	if err != nil {
		return nil, err
	}
	if err := New(list, opts...).Play(s); err != nil {
		return s, err
	}
	return s, nil
}

// distinct returns the letters of w without repeats, in first-seen order.
func distinct(w string) []byte {
	out := make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		if !slices.Contains(out, w[i]) {
			out = append(out, w[i])
		}
	}
	return out
}
