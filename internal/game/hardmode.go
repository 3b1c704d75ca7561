package game

import "fmt"

// checkHardMode enforces the hints of prev on guess:
// every Exact letter stays in place, and every letter marked Exact or Present
// appears at least as many times as it was marked.
func checkHardMode(prev GuessRecord, guess string) error {
	required := make(map[byte]int)
	for i, v := range prev.verdicts {
		c := prev.guess[i]
		switch v {
		case Exact:
			if guess[i] != c {
				return fmt.Errorf("%w: position %d must be %c", ErrHardModeViolation, i+1, upper(c))
			}
			required[c]++
		case Present:
			required[c]++
		}
	}

	have := make(map[byte]int, len(guess))
	for i := 0; i < len(guess); i++ {
		have[guess[i]]++
	}
	for c, n := range required {
		if have[c] < n {
			return fmt.Errorf("%w: guess must contain %c", ErrHardModeViolation, upper(c))
		}
	}
	return nil
}

func upper(c byte) byte { return c - 'a' + 'A' }
