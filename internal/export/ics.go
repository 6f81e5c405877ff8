// Package export renders duty schedules as calendar and spreadsheet files.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

const (
	CalendarName = "Cleaning rotation"
	productID    = "-//cleaning-rotation-bot//schedule//EN"
)

// ICS builds an iCalendar feed with one all-day event per duty week.
// DTEND is exclusive, so each event ends the Monday after the window.
func ICS(assignments []entity.Assignment, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(CalendarName)

	for _, a := range assignments {
		event := cal.AddEvent(EventUID(a))
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(a.StartDate)
		event.SetAllDayEndAt(a.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Cleaning duty: unit %s", a.Unit.Label()))
		event.SetDescription(fmt.Sprintf("Unit %s cleans the common areas from %s to %s.",
			a.Unit.Label(),
			a.StartDate.Format("Mon Jan 2"),
			a.EndDate.Format("Mon Jan 2"),
		))
	}

	return cal.Serialize()
}

// EventUID is stable per week so calendar clients update instead of duplicating events
func EventUID(a entity.Assignment) string {
	return "week-" + a.Key() + "@cleaning-rotation-bot"
}
