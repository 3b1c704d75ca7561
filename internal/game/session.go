// internal/game/session.go
//
// Session state machine for a single round.
// Responsibilities:
//   - Pick (or accept) the secret and hold the guess history.
//   - Validate guesses (length, vocabulary, hard-mode hints).
//   - Score guesses via Evaluate and track in_progress → won/lost.
//
// Notes:
//   - Rejected guesses never consume a turn and never touch the history.
//   - The secret is only exposed once the session is over.

package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/words"
)

// Session holds the state of a single round.
type Session struct {
	ID string // random identifier, only used to correlate log lines

	cfg     config.Game
	list    *words.List
	secret  string
	records []GuessRecord
	state   State
}

// NewSession starts a round under cfg.
// If secret is empty, a random answer is chosen from list.
func NewSession(cfg config.Game, list *words.List, secret string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if list.Length() != cfg.WordLength {
		return nil, fmt.Errorf("game: word list has %d-letter words, config wants %d", list.Length(), cfg.WordLength)
	}
	secret = strings.ToLower(strings.TrimSpace(secret))
	if secret == "" {
		secret = list.RandomAnswer()
	}
	if len(secret) != cfg.WordLength || !list.IsAllowed(secret) {
		return nil, fmt.Errorf("game: secret %q is not a word in the list", secret)
	}
	s := &Session{
		ID:     uuid.NewString(),
		cfg:    cfg,
		list:   list,
		secret: secret,
		state:  InProgress,
	}
	log.Debug().Str("session", s.ID).Bool("hardMode", cfg.HardMode).Int("maxTurns", cfg.MaxTurns).Msg("session started")
	return s, nil
}

// Submit validates and scores a guess, mutating the session state.
//
// Validation rules:
//   - Session must not be over (ErrSessionOver).
//   - Guess must be exactly WordLength letters (ErrInvalidGuess wrapping ErrInvalidLength).
//   - Guess must be in the accepted vocabulary (ErrInvalidGuess).
//   - In hard mode, guess must honour the previous record (ErrHardModeViolation).
//
// State transitions:
//   - If all tiles are Exact → Won.
//   - Else if the number of guesses reaches MaxTurns → Lost.
func (s *Session) Submit(guess string) (GuessRecord, error) {
	if s.Over() {
		return GuessRecord{}, ErrSessionOver
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != s.cfg.WordLength {
		return GuessRecord{}, fmt.Errorf("%w: %w", ErrInvalidGuess, ErrInvalidLength)
	}
	if !s.list.IsAllowed(guess) {
		return GuessRecord{}, fmt.Errorf("%w: %q is not in the word list", ErrInvalidGuess, guess)
	}
	if s.cfg.HardMode && len(s.records) > 0 {
		if err := checkHardMode(s.records[len(s.records)-1], guess); err != nil {
			return GuessRecord{}, err
		}
	}

	verdicts, err := Evaluate(s.secret, guess)
	if err != nil {
		return GuessRecord{}, fmt.Errorf("%w: %w", ErrInvalidGuess, err)
	}
	rec := NewGuessRecord(guess, verdicts)
	s.records = append(s.records, rec)

	if rec.Solved() {
		s.state = Won
	} else if len(s.records) >= s.cfg.MaxTurns {
		s.state = Lost
	}
	log.Debug().Str("session", s.ID).Str("guess", guess).Int("turn", len(s.records)).Str("state", string(s.state)).Msg("guess scored")
	return rec, nil
}

// Forfeit ends an in-progress session as Lost, revealing the secret.
func (s *Session) Forfeit() {
	if s.state == InProgress {
		s.state = Lost
		log.Debug().Str("session", s.ID).Msg("session forfeited")
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Over reports whether the session reached Won or Lost.
func (s *Session) Over() bool { return s.state != InProgress }

// Won reports whether the secret was guessed.
func (s *Session) Won() bool { return s.state == Won }

// Turn is the number of guesses recorded so far.
func (s *Session) Turn() int { return len(s.records) }

// TurnsLeft is the number of guesses still available.
func (s *Session) TurnsLeft() int { return s.cfg.MaxTurns - len(s.records) }

// MaxTurns is the configured guess limit.
func (s *Session) MaxTurns() int { return s.cfg.MaxTurns }

// WordLength is the number of letters per guess.
func (s *Session) WordLength() int { return s.cfg.WordLength }

// HardMode reports whether hard-mode validation is on.
func (s *Session) HardMode() bool { return s.cfg.HardMode }

// Records returns a copy of the guess history, oldest first.
func (s *Session) Records() []GuessRecord {
	return append([]GuessRecord(nil), s.records...)
}

// Secret returns the secret word once the session is over.
func (s *Session) Secret() (string, bool) {
	if !s.Over() {
		return "", false
	}
	return s.secret, true
}
