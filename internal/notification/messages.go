package notification

import (
	"fmt"
	"strings"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

const dayLayout = "Mon Jan 2"

// WeekRange formats the duty window, e.g. "Mon Jan 19 to Sun Jan 25"
func WeekRange(a entity.Assignment) string {
	return a.StartDate.Format(dayLayout) + " to " + a.EndDate.Format(dayLayout)
}

func TurnStartMessage(duty *entity.Duty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧹 *Cleaning duty*\n\nThis week (%s) it's unit *%s*'s turn.\n\nChecklist:\n",
		WeekRange(duty.Assignment), duty.Assignment.Unit.Label())
	for _, task := range duty.Tasks {
		fmt.Fprintf(&b, "• %s\n", task.Label)
	}
	b.WriteString("\nUse `/cleaning done <task>` as you go. Everything must be done by *Sunday*.")
	return b.String()
}

func CompletionMessage(duty *entity.Duty) string {
	return fmt.Sprintf("✨ *Cleaning done!*\n\nUnit *%s* finished all %d tasks for %s. Thank you!",
		duty.Assignment.Unit.Label(), len(duty.Tasks), WeekRange(duty.Assignment))
}

func ReminderMessage(duty *entity.Duty) string {
	var b strings.Builder
	pending := len(duty.Tasks) - duty.CompletedCount()
	fmt.Fprintf(&b, "⏰ *Last day!*\n\nToday is Sunday and the cleaning cycle ends in a few hours. Unit *%s* still has %d of %d tasks pending:\n",
		duty.Assignment.Unit.Label(), pending, len(duty.Tasks))
	for _, task := range duty.Tasks {
		if !duty.Record.Completed[task.ID] {
			fmt.Fprintf(&b, "• %s\n", task.Label)
		}
	}
	if duty.Record.PlannedDay != nil {
		fmt.Fprintf(&b, "\nPlanned day was %s.", domain.WeekdayNames[*duty.Record.PlannedDay])
	}
	return strings.TrimRight(b.String(), "\n")
}
