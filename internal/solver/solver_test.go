package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/game"
	"github.com/robalobadob/wordye/internal/words"
)

func embedded(t *testing.T) *words.List {
	t.Helper()
	l, err := words.Load(words.Source{}, 5)
	require.NoError(t, err)
	return l
}

func TestSolveSequences(t *testing.T) {
	l := embedded(t)
	tests := []struct {
		secret     string
		guesses    []string
		candidates []int
	}{
		{"grape", []string{"alert", "grace", "grade", "grape"}, []int{468, 13, 2, 1}},
		{"crane", []string{"alert", "grace", "crane"}, []int{468, 13, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.secret, func(t *testing.T) {
			var guesses []string
			var candidates []int
			s, err := Solve(config.Default(), l, tt.secret, WithObserver(func(st Step) {
				guesses = append(guesses, st.Guess)
				candidates = append(candidates, st.Candidates)
			}))
			require.NoError(t, err)
			assert.True(t, s.Won())

			if diff := cmp.Diff(tt.guesses, guesses); diff != "" {
				t.Errorf("guesses mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.candidates, candidates); diff != "" {
				t.Errorf("candidate counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolveAlwaysHardMode(t *testing.T) {
	cfg := config.Default()
	cfg.HardMode = false
	s, err := Solve(cfg, embedded(t), "alloy")
	require.NoError(t, err)
	assert.True(t, s.HardMode())
	assert.True(t, s.Won())
}

func TestSolveEveryAnswer(t *testing.T) {
	l := embedded(t)
	for _, secret := range l.Answers() {
		s, err := Solve(config.Default(), l, secret)
		require.NoError(t, err, secret)
		require.True(t, s.Won(), "%s not solved", secret)
		assert.LessOrEqual(t, s.Turn(), 6, secret)
	}
}

func TestNextIsDeterministic(t *testing.T) {
	l := embedded(t)
	first, err := New(l).Next()
	require.NoError(t, err)
	second, err := New(l).Next()
	require.NoError(t, err)
	assert.Equal(t, "alert", first)
	assert.Equal(t, first, second)
}

func TestNextSmallPoolTakesFirst(t *testing.T) {
	l, err := words.New(5, []string{"grade", "grape"}, nil)
	require.NoError(t, err)
	g, err := New(l).Next()
	require.NoError(t, err)
	assert.Equal(t, "grade", g)
}

func TestObserveFilters(t *testing.T) {
	l, err := words.New(5, []string{"grape", "grade", "crane", "alloy"}, nil)
	require.NoError(t, err)
	a := New(l)

	// CRANE scored against GRAPE.
	v, err := game.Evaluate("grape", "crane")
	require.NoError(t, err)
	require.NoError(t, a.Observe("crane", v))
	assert.Equal(t, []string{"grape", "grade"}, a.Pool())
}

func TestObserveInconsistent(t *testing.T) {
	l, err := words.New(5, []string{"crane", "grape"}, nil)
	require.NoError(t, err)
	a := New(l)

	absent := []game.Verdict{game.Absent, game.Absent, game.Absent, game.Absent, game.Absent}
	err = a.Observe("crane", absent)
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
	assert.Empty(t, a.Pool())

	_, err = a.Next()
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
}

func TestPlaySecretOutsidePool(t *testing.T) {
	// The secret is accepted as a guess but the solver only considers answers,
	// so its pool empties: that must surface as an internal error.
	l, err := words.New(5, []string{"crane", "grape"}, []string{"lolly"})
	require.NoError(t, err)
	_, err = Solve(config.Default(), l, "lolly")
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
}
