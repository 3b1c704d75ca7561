package game

// Keyboard maps each guessed letter to the most informative verdict seen for it.
// Letters that were never guessed are absent from the map.
type Keyboard map[byte]Verdict

// Keyboard summarizes the guess history letter by letter.
func (s *Session) Keyboard() Keyboard {
	kb := make(Keyboard)
	for _, r := range s.records {
		for i, v := range r.verdicts {
			c := r.guess[i]
			if v.rank() > kb[c].rank() {
				kb[c] = v
			}
		}
	}
	return kb
}

// Eliminated reports whether c is known not to be in the secret.
func (kb Keyboard) Eliminated(c byte) bool {
	return kb[c] == Absent
}
