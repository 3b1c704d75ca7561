// internal/cli/play.go
//
// Interactive prompt loop for a human player.
//   - Prompts "[n/N] Enter guess (LETTERS): " with the keyboard hint line.
//   - Invalid or hard-mode-violating guesses print a message and re-prompt.
//   - EOF or context cancellation (Ctrl-C) forfeits and reveals the secret.
//   - On completion prints the outcome and the share grid.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/robalobadob/wordye/internal/game"
)

// Play runs s to completion reading guesses line by line from in.
func Play(ctx context.Context, s *game.Session, in io.Reader, r *Renderer) error {
	lines := scanLines(ctx, in)

	r.Println()
	r.Println(r.BlankRow(s.WordLength()))
	for !s.Over() {
		r.Printf("[%d/%d] Enter guess (%s): ", s.Turn()+1, s.MaxTurns(), r.Keyboard(s.Keyboard()))

		var guess string
		select {
		case <-ctx.Done():
			forfeit(s, r)
			return nil
		case line, ok := <-lines:
			if !ok {
				forfeit(s, r)
				return nil
			}
			guess = line
		}

		rec, err := s.Submit(guess)
		switch {
		case errors.Is(err, game.ErrHardModeViolation):
			r.Println("Invalid guess! Must use all revealed hints from previous guesses (hard mode).")
		case errors.Is(err, game.ErrInvalidLength):
			r.Printf("Invalid guess! Must be %d letters long.\n", s.WordLength())
		case errors.Is(err, game.ErrInvalidGuess):
			r.Printf("Invalid guess! Could not find %q in the dictionary.\n", guess)
		case err != nil:
			return err
		default:
			r.Println()
			r.Println(r.Tiles(rec))
		}
	}

	secret, _ := s.Secret()
	if s.Won() {
		tries := "tries"
		if s.Turn() == 1 {
			tries = "try"
		}
		r.Printf("Congrats! You solved it in %d %s!\n", s.Turn(), tries)
	} else {
		r.Println("Better luck next time!")
		r.Printf("The correct solution was: %s\n", strings.ToUpper(secret))
	}
	r.Println()
	r.Println(s.Share())
	return nil
}

// forfeit ends the session early and reveals the answer.
func forfeit(s *game.Session, r *Renderer) {
	s.Forfeit()
	secret, _ := s.Secret()
	r.Println()
	r.Printf("You lost! The correct answer was: %s\n", strings.ToUpper(secret))
}

// scanLines feeds lines from in to the returned channel until EOF or ctx is done.
func scanLines(ctx context.Context, in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
