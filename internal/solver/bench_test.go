package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/words"
)

func TestBench(t *testing.T) {
	l := embedded(t)
	calls := 0
	rep, err := Bench(config.Default(), l, func() { calls++ })
	require.NoError(t, err)

	n, _ := l.Stats()
	assert.Equal(t, n, rep.Games)
	assert.Equal(t, n, calls)
	assert.LessOrEqual(t, rep.Max(), 6)
	assert.Equal(t, 1, rep.Turns[1], "only the opening word is solved in one")
	assert.NotEmpty(t, rep.Worst)
	assert.Greater(t, rep.Mean(), 1.0)

	total := 0
	for _, c := range rep.Turns {
		total += c
	}
	assert.Equal(t, rep.Games, total)
}

func TestBenchFailsWhenTurnsRunOut(t *testing.T) {
	l, err := words.New(5, []string{"batch", "catch", "hatch", "latch", "match", "patch", "watch"}, nil)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.MaxTurns = 2
	_, err = Bench(cfg, l, nil)
	assert.Error(t, err)
}

func TestReportEmpty(t *testing.T) {
	var r Report
	assert.Zero(t, r.Mean())
	assert.Zero(t, r.Max())
}
