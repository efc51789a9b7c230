package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2026-03-02 03:00 at UTC+9 is still March 1st in UTC.
	at := time.Date(2026, 3, 2, 3, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(at))
}

func TestSeedStableWithinDay(t *testing.T) {
	morning := time.Date(2026, 10, 17, 0, 5, 0, 0, time.UTC)
	night := time.Date(2026, 10, 17, 23, 55, 0, 0, time.UTC)
	assert.Equal(t, Seed(morning, "s"), Seed(night, "s"))
}

func TestSeedVaries(t *testing.T) {
	day := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	assert.NotEqual(t, Seed(day, "s"), Seed(next, "s"))
	assert.NotEqual(t, Seed(day, "s"), Seed(day, "other"))
}

func TestSeedDefaultSalt(t *testing.T) {
	day := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Seed(day, DefaultSalt), Seed(day, ""))
}
