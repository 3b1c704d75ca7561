// internal/game/feedback.go
//
// Guess scoring with Wordle duplicate-letter semantics.

package game

import "fmt"

// Evaluate scores guess against secret using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as Exact.
//   - Count the remaining (non-exact) secret letters.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Absent.
//
// Repeated guess letters therefore turn Present only as often as the secret still has
// unmatched copies, left to right. Both words are expected to be normalized already.
func Evaluate(secret, guess string) ([]Verdict, error) {
	n := len(guess)
	if n != len(secret) {
		return nil, fmt.Errorf("%w: %d letters, want %d", ErrInvalidLength, n, len(secret))
	}
	res := make([]Verdict, n)

	// Letter frequency for the non-exact positions.
	counts := make(map[byte]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = Exact
		} else {
			counts[secret[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Exact {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			res[i] = Present
			counts[c]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}

// AllExact returns true if all verdicts are Exact.
func AllExact(v []Verdict) bool {
	for _, x := range v {
		if x != Exact {
			return false
		}
	}
	return true
}
