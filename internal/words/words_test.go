package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load(Source{}, 5)
	require.NoError(t, err)

	a, g := l.Stats()
	assert.Equal(t, 468, a)
	assert.Greater(t, g, a)
	assert.Equal(t, 5, l.Length())

	assert.True(t, l.IsAnswer("grape"))
	assert.True(t, l.IsAllowed("grape"), "answers are always allowed")
	assert.True(t, l.IsAllowed("LOLLY"), "lookups are case-insensitive")
	assert.False(t, l.IsAnswer("lolly"))
	assert.False(t, l.IsAllowed("zzzzz"))

	answers := l.Answers()
	assert.Equal(t, "about", answers[0])
	answers[0] = "mutated"
	assert.Equal(t, "about", l.Answers()[0], "Answers returns a copy")
}

func TestLoadEmbeddedWrongLength(t *testing.T) {
	_, err := Load(Source{}, 6)
	assert.ErrorIs(t, err, ErrWordList)
}

func TestLoadFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "# comment\nCrane\n\n grape \n")
	allowed := writeList(t, "allowed.txt", "lolly\n")

	t.Run("both", func(t *testing.T) {
		l, err := Load(Source{AnswersPath: ans, AllowedPath: allowed}, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "grape"}, l.Answers())
		assert.True(t, l.IsAllowed("lolly"))
		assert.True(t, l.IsAllowed("crane"))
	})

	t.Run("allowed only", func(t *testing.T) {
		l, err := Load(Source{AllowedPath: allowed}, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"lolly"}, l.Answers())
	})

	t.Run("answers only", func(t *testing.T) {
		l, err := Load(Source{AnswersPath: ans}, 5)
		require.NoError(t, err)
		a, g := l.Stats()
		assert.Equal(t, 2, a)
		assert.Equal(t, 2, g)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  func(t *testing.T) Source
		msg  string
	}{
		{
			name: "missing file",
			src: func(t *testing.T) Source {
				return Source{AnswersPath: filepath.Join(t.TempDir(), "nope.txt")}
			},
		},
		{
			name: "wrong length",
			src: func(t *testing.T) Source {
				return Source{AnswersPath: writeList(t, "a.txt", "crane\ncranes\n")}
			},
			msg: ":2:",
		},
		{
			name: "non letters",
			src: func(t *testing.T) Source {
				return Source{AnswersPath: writeList(t, "a.txt", "cr4ne\n")}
			},
			msg: "cr4ne",
		},
		{
			name: "empty",
			src: func(t *testing.T) Source {
				return Source{AnswersPath: writeList(t, "a.txt", "# nothing here\n")}
			},
			msg: "empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src(t), 5)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrWordList)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader("ABC\n#x\n  def\n"), "mem", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def"}, got)
}

func TestNewDeduplicatesAnswers(t *testing.T) {
	l, err := New(5, []string{"crane", "grape", "CRANE"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "grape"}, l.Answers())
}

func TestRandomAnswer(t *testing.T) {
	l, err := New(5, []string{"crane", "grape", "alloy"}, nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.True(t, l.IsAnswer(l.RandomAnswer()))
	}
}
