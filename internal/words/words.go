// internal/words/words.go
//
// Word list management for the game engine and the solver.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the embedded defaults.
//   - Validate every entry (exact length, lowercase a–z) and fail loudly on malformed input.
//   - Expose an immutable List with lookups (IsAllowed, IsAnswer) and RandomAnswer.
//
// Word Lists:
//   - "answers": canonical secrets, in file order (the solver relies on this order).
//   - "allowed": valid guesses (always includes answers).
//
// Source selection (Load):
//  1. If both AnswersPath and AllowedPath are set,
//     load answers from the first and allowed guesses from the second.
//  2. If only AllowedPath is set,
//     load that file and use it for both answers and allowed guesses.
//  3. If only AnswersPath is set,
//     answers come from that file and are the only accepted guesses.
//  4. If neither is set,
//     fall back to the lists embedded in the assets package.
package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordye/assets"
)

// ErrWordList is returned when a word list is missing, unreadable or malformed.
var ErrWordList = errors.New("words: invalid word list")

// Source names optional word list files. Empty paths select the embedded lists.
type Source struct {
	AnswersPath string
	AllowedPath string
}

// List is a loaded, read-only pair of word lists.
type List struct {
	length     int
	answers    []string
	answerSet  mapset.Set[string] // answers only
	allowedSet mapset.Set[string] // answers ∪ guesses
}

// Load reads the lists selected by src and validates them against length.
func Load(src Source, length int) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.AnswersPath != "" && src.AllowedPath != "":
		if ansList, err = readWordFile(src.AnswersPath, length); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedPath, length); err != nil {
			return nil, err
		}

	case src.AllowedPath != "":
		if allowList, err = readWordFile(src.AllowedPath, length); err != nil {
			return nil, err
		}
		ansList = allowList

	case src.AnswersPath != "":
		if ansList, err = readWordFile(src.AnswersPath, length); err != nil {
			return nil, err
		}

	default:
		if ansList, err = readEmbedded(assets.Answers, assets.AnswersFile, length); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed, assets.AllowedFile, length); err != nil {
			return nil, err
		}
	}

	l, err := New(length, ansList, allowList)
	if err != nil {
		return nil, err
	}
	a, g := l.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Int("length", length).Msg("word lists loaded")
	return l, nil
}

// New builds a List from in-memory words. Answers are always accepted as guesses.
// Duplicate answers are dropped, keeping the first occurrence.
func New(length int, answers, allowed []string) (*List, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: word length must be positive, got %d", ErrWordList, length)
	}
	l := &List{
		length:     length,
		answerSet:  mapset.NewThreadUnsafeSet[string](),
		allowedSet: mapset.NewThreadUnsafeSet[string](),
	}
	for _, w := range answers {
		w = normalize(w)
		if !valid(w, length) {
			return nil, fmt.Errorf("%w: answer %q is not a %d-letter word", ErrWordList, w, length)
		}
		if l.answerSet.Add(w) {
			l.answers = append(l.answers, w)
		}
		l.allowedSet.Add(w)
	}
	for _, w := range allowed {
		w = normalize(w)
		if !valid(w, length) {
			return nil, fmt.Errorf("%w: guess %q is not a %d-letter word", ErrWordList, w, length)
		}
		l.allowedSet.Add(w)
	}
	if len(l.answers) == 0 {
		return nil, fmt.Errorf("%w: answers list is empty", ErrWordList)
	}
	return l, nil
}

// Parse reads one word per line from r. Blank lines and "#" comments are skipped;
// any other line must be a word of exactly length letters.
func Parse(r io.Reader, name string, length int) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		w := normalize(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !valid(w, length) {
			return nil, fmt.Errorf("%w: %s:%d: %q is not a %d-letter word", ErrWordList, name, n, w, length)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWordList, name, err)
	}
	return out, nil
}

// readWordFile loads a word list from disk.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordList, err)
	}
	defer f.Close()
	return Parse(f, path, length)
}

// readEmbedded loads a word list from the assets package.
func readEmbedded(open func() (fs.File, error), name string, length int) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordList, err)
	}
	defer f.Close()
	return Parse(f, name, length)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// valid reports whether w is exactly length lowercase ASCII letters.
func valid(w string, length int) bool {
	if len(w) != length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Length is the number of letters in every word of the list.
func (l *List) Length() int { return l.length }

// Answers returns a copy of the answer list in load order.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// RandomAnswer returns a cryptographically random answer.
func (l *List) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	return l.allowedSet.Contains(normalize(w))
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	return l.answerSet.Contains(normalize(w))
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), l.allowedSet.Cardinality()
}
