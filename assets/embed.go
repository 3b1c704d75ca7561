// assets/embed.go
//
// Embedded default word lists.
//   - answers.txt: secrets the game may pick (and the solver's starting pool).
//   - allowed.txt: extra words accepted as guesses but never chosen as secrets.
//
// Format: one word per line; blank lines and lines starting with "#" are ignored.
// Parsing and validation live in internal/words.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

// Answers opens the embedded answer list.
func Answers() (fs.File, error) {
	return FS.Open(AnswersFile)
}

// Allowed opens the embedded list of extra accepted guesses.
func Allowed() (fs.File, error) {
	return FS.Open(AllowedFile)
}
