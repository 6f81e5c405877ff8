// Package schedule maps calendar weeks to the roster unit on cleaning duty.
//
// Everything here is a pure function of its inputs: the roster, the cycle
// anchor date, a reference date and the current instant. Nothing is cached or
// stored, so callers can regenerate schedules freely and join the results
// against per-week records using Assignment.Key.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

// ParseAnchor parses a YYYY-MM-DD cycle start date at midnight in loc
func ParseAnchor(value string, loc *time.Location) (time.Time, error) {
	anchor, err := time.ParseInLocation(domain.DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, domain.NewConfigError("cycle_start_date", fmt.Sprintf("%q is not a YYYY-MM-DD date", value))
	}
	return anchor, nil
}

// ValidateRoster rejects rosters that cannot drive a rotation
func ValidateRoster(roster []*entity.Unit) error {
	if len(roster) == 0 {
		return domain.NewConfigError("roster", "must contain at least one unit")
	}

	seen := make(map[string]bool, len(roster))
	for i, unit := range roster {
		if unit == nil || unit.ID == "" {
			return domain.NewConfigError("roster", fmt.Sprintf("unit at position %d has no id", i))
		}
		if seen[unit.ID] {
			return domain.NewConfigError("roster", fmt.Sprintf("duplicated unit id %q", unit.ID))
		}
		seen[unit.ID] = true
	}

	return nil
}

// GenerateForward returns weeks assignments starting with the week that
// contains reference, in ascending order. IsCurrentWeek is computed against
// the week containing now, whatever the reference is. All dates are computed
// in the anchor's location.
func GenerateForward(roster []*entity.Unit, anchor time.Time, weeks int, reference, now time.Time) ([]entity.Assignment, error) {
	if err := validateRequest(roster, weeks); err != nil {
		return nil, err
	}

	loc := anchor.Location()
	anchorStart := WindowContaining(anchor).Start
	first := WindowContaining(reference.In(loc)).Start
	current := WindowContaining(now.In(loc)).Start

	assignments := make([]entity.Assignment, 0, weeks)
	for i := 0; i < weeks; i++ {
		a, err := assign(roster, first.AddDate(0, 0, 7*i), anchorStart, current)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// GenerateBackward returns the weeks assignments before the week containing
// now, most recent first. The current week itself is never included.
func GenerateBackward(roster []*entity.Unit, anchor time.Time, weeks int, now time.Time) ([]entity.Assignment, error) {
	if err := validateRequest(roster, weeks); err != nil {
		return nil, err
	}

	loc := anchor.Location()
	anchorStart := WindowContaining(anchor).Start
	current := WindowContaining(now.In(loc)).Start

	assignments := make([]entity.Assignment, 0, weeks)
	for i := 1; i <= weeks; i++ {
		a, err := assign(roster, current.AddDate(0, 0, -7*i), anchorStart, current)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func validateRequest(roster []*entity.Unit, weeks int) error {
	if err := ValidateRoster(roster); err != nil {
		return err
	}
	if weeks < 0 {
		return domain.NewConfigError("weeks", fmt.Sprintf("must not be negative, got %d", weeks))
	}
	return nil
}

func assign(roster []*entity.Unit, weekStart, anchorStart, currentStart time.Time) (entity.Assignment, error) {
	idx, err := OwnerIndex(weekStart, anchorStart, len(roster))
	if err != nil {
		return entity.Assignment{}, err
	}

	return entity.Assignment{
		StartDate:     weekStart,
		EndDate:       weekStart.AddDate(0, 0, 6),
		Unit:          roster[idx],
		IsCurrentWeek: weekStart.Equal(currentStart),
	}, nil
}

// Generator binds the pure functions to a location and a clock
type Generator struct {
	loc *time.Location
	now func() time.Time
}

// NewGenerator creates a generator. A nil location means time.Local and a
// nil clock means time.Now.
func NewGenerator(loc *time.Location, now func() time.Time) *Generator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{loc: loc, now: now}
}

func (g *Generator) Location() *time.Location {
	return g.loc
}

func (g *Generator) Now() time.Time {
	return g.now().In(g.loc)
}

// Today is the current date at local midnight
func (g *Generator) Today() time.Time {
	return Midnight(g.Now())
}

// CurrentWindow is the real current duty week
func (g *Generator) CurrentWindow() Window {
	return WindowContaining(g.Now())
}

func (g *Generator) ParseAnchor(value string) (time.Time, error) {
	return ParseAnchor(value, g.loc)
}

// Forward generates weeks assignments starting at the current week
func (g *Generator) Forward(roster []*entity.Unit, anchor string, weeks int) ([]entity.Assignment, error) {
	return g.ForwardFrom(roster, anchor, weeks, g.Now())
}

// ForwardFrom generates weeks assignments starting at the week containing reference
func (g *Generator) ForwardFrom(roster []*entity.Unit, anchor string, weeks int, reference time.Time) ([]entity.Assignment, error) {
	anchorDate, err := g.ParseAnchor(anchor)
	if err != nil {
		return nil, err
	}
	return GenerateForward(roster, anchorDate, weeks, reference, g.Now())
}

// Backward generates the weeks assignments preceding the current week
func (g *Generator) Backward(roster []*entity.Unit, anchor string, weeks int) ([]entity.Assignment, error) {
	anchorDate, err := g.ParseAnchor(anchor)
	if err != nil {
		return nil, err
	}
	return GenerateBackward(roster, anchorDate, weeks, g.Now())
}
