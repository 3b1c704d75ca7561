package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-03-02 05:00 at +10 is still March 1st in UTC.
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(d))
}

func TestWordIndexStableWithinDay(t *testing.T) {
	morning := time.Date(2026, 10, 17, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 10, 17, 23, 59, 59, 0, time.UTC)

	i := WordIndex(morning, "salt", 468)
	assert.Equal(t, i, WordIndex(night, "salt", 468))
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 468)
}

func TestWordIndexVariesWithSaltAndDate(t *testing.T) {
	d := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for k := 0; k < 30; k++ {
		seen[WordIndex(d.AddDate(0, 0, k), "salt", 1000)] = true
	}
	// 30 days over 1000 slots: collisions are possible but not wholesale.
	assert.Greater(t, len(seen), 20)
}

func TestWordIndexEmpty(t *testing.T) {
	assert.Equal(t, 0, WordIndex(time.Now(), "salt", 0))
	assert.Equal(t, "", Pick(nil, time.Now(), "salt"))
}

func TestPick(t *testing.T) {
	answers := []string{"crane", "grape", "alloy"}
	d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Pick(answers, d, "salt")
	assert.Equal(t, answers[WordIndex(d, "salt", 3)], got)
	assert.Contains(t, answers, got)
}
