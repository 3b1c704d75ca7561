// internal/config/config.go
//
// Run configuration shared by both programs.
//   - Game: explicit rules for one session, built once from parsed flags.
//   - Env:  process environment (optionally seeded from a .env file).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultMaxTurns   = 6
	DefaultWordLength = 5
	DefaultLogLevel   = "warn"
)

// Game holds the rules for one session.
type Game struct {
	HardMode   bool // every guess must reuse the hints of the previous one
	MaxTurns   int  // guesses allowed before the session is lost
	WordLength int  // letters per word
}

// Default returns the classic 6x5 rules without hard mode.
func Default() Game {
	return Game{MaxTurns: DefaultMaxTurns, WordLength: DefaultWordLength}
}

// Validate checks the numeric limits.
func (g Game) Validate() error {
	if g.MaxTurns <= 0 {
		return fmt.Errorf("config: max turns must be positive, got %d", g.MaxTurns)
	}
	if g.WordLength <= 0 {
		return errors.New("config: word length must be positive")
	}
	return nil
}

// Env collects the environment settings the programs read at startup.
type Env struct {
	LogLevel    string // zerolog level name
	AnswersFile string // optional answer list override
	AllowedFile string // optional accepted-guess list override
	DailySalt   string // key for the daily word selection
}

// LoadEnv loads .env (if present) and reads the known variables.
func LoadEnv() Env {
	_ = godotenv.Load()
	return Env{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		AnswersFile: os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile: os.Getenv("WORDS_ALLOWED_FILE"),
		DailySalt:   getEnv("DAILY_SALT", "wordye"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
