package schedule

import (
	"fmt"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
)

const day = 24 * time.Hour

// DaysBetween returns the number of calendar days from one date to another.
// Both dates are reduced to their civil date in UTC first, so a DST change in
// between never shifts the count.
func DaysBetween(from, to time.Time) (int, error) {
	diff := civilUTC(to).Sub(civilUTC(from))
	if diff%day != 0 {
		return 0, fmt.Errorf("%w: %s from %s to %s is not a whole number of days",
			domain.ErrInvariant, diff, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	}
	return int(diff / day), nil
}

// OwnerIndex returns the roster position owning the week that starts at
// weekStart. Both dates must be Monday-aligned window starts. The anchor week
// is owned by position 0 and weeks before the anchor wrap backwards.
func OwnerIndex(weekStart, anchorStart time.Time, rosterLen int) (int, error) {
	if rosterLen <= 0 {
		return 0, domain.NewConfigError("roster", "must contain at least one unit")
	}

	diffDays, err := DaysBetween(anchorStart, weekStart)
	if err != nil {
		return 0, err
	}

	weeksPassed := floorDiv(diffDays, 7)
	return floorMod(weeksPassed, rosterLen), nil
}

func civilUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// floorDiv rounds towards negative infinity: floorDiv(-1, 7) == -1
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is always in [0, n) for n > 0
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
