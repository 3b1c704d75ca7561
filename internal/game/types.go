// internal/game/types.go
//
// Core type definitions for the Wordye game engine.
// Defines:
//   - Verdict: per-letter result of a guess (exact/present/absent).
//   - GuessRecord: one scored guess, immutable once created.
//   - State: lifecycle of a session (in progress → won/lost).
//   - Sentinel errors returned by Evaluate and Session.Submit.

package game

import "errors"

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  letter does not exist in the secret (or all copies are accounted for).
type Verdict string

const (
	Exact   Verdict = "exact"
	Present Verdict = "present"
	Absent  Verdict = "absent"
)

// Emoji returns the share-grid square for v.
func (v Verdict) Emoji() string {
	switch v {
	case Exact:
		return "\U0001F7E9"
	case Present:
		return "\U0001F7E8"
	default:
		return "⬛"
	}
}

// rank orders verdicts by how much they reveal; unknown letters rank 0.
func (v Verdict) rank() int {
	switch v {
	case Exact:
		return 3
	case Present:
		return 2
	case Absent:
		return 1
	}
	return 0
}

// GuessRecord pairs a guess with its verdicts.
type GuessRecord struct {
	guess    string
	verdicts []Verdict
}

// NewGuessRecord copies verdicts so the record cannot be mutated through them.
func NewGuessRecord(guess string, verdicts []Verdict) GuessRecord {
	return GuessRecord{guess: guess, verdicts: append([]Verdict(nil), verdicts...)}
}

// Guess is the lowercase guessed word.
func (r GuessRecord) Guess() string { return r.guess }

// Verdicts returns a copy of the per-position verdicts.
func (r GuessRecord) Verdicts() []Verdict {
	return append([]Verdict(nil), r.verdicts...)
}

// Solved reports whether every position is Exact.
func (r GuessRecord) Solved() bool { return AllExact(r.verdicts) }

// State is the coarse lifecycle of a session.
type State string

const (
	InProgress State = "in_progress"
	Won        State = "won"
	Lost       State = "lost"
)

var (
	// ErrInvalidLength: guess and secret differ in length.
	ErrInvalidLength = errors.New("game: guess length does not match the secret")
	// ErrInvalidGuess: wrong length or not in the accepted vocabulary.
	ErrInvalidGuess = errors.New("game: invalid guess")
	// ErrHardModeViolation: guess ignores hints revealed by the previous guess.
	ErrHardModeViolation = errors.New("game: guess must use all revealed hints")
	// ErrSessionOver: the session already reached Won or Lost.
	ErrSessionOver = errors.New("game: session is over")
)
