package handlers

import (
	"fmt"
	"strings"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/cleaning-rotation-bot/internal/notification"
)

func formatDuty(duty *entity.Duty) string {
	var b strings.Builder

	if duty.PreCycle {
		fmt.Fprintf(&b, "⏳ The cycle has not started yet. Unit *%s* opens it on %s.\n\n",
			duty.Assignment.Unit.Label(), notification.WeekRange(duty.Assignment))
	} else {
		fmt.Fprintf(&b, "🧹 *This week* (%s): unit *%s*\n", notification.WeekRange(duty.Assignment), duty.Assignment.Unit.Label())
		if duty.MyTurn {
			b.WriteString("👉 It's your turn!\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "*Checklist* (%d/%d):\n", duty.CompletedCount(), len(duty.Tasks))
	for i, task := range duty.Tasks {
		mark := "⬜"
		if duty.Record.Completed[task.ID] {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, i+1, task.Label)
	}

	if duty.Record.PlannedDay != nil {
		fmt.Fprintf(&b, "\nPlanned day: *%s*", domain.WeekdayNames[*duty.Record.PlannedDay])
	}
	if duty.Record.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", duty.Record.Notes)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatSchedule(assignments []entity.Assignment) string {
	if len(assignments) == 0 {
		return "No weeks to show."
	}

	var b strings.Builder
	b.WriteString("*Upcoming weeks:*\n")
	for _, a := range assignments {
		marker := ""
		if a.IsCurrentWeek {
			marker = " 👈 this week"
		}
		fmt.Fprintf(&b, "• %s: *%s*%s\n", notification.WeekRange(a), a.Unit.Label(), marker)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatHistory(summaries []*entity.WeekSummary) string {
	if len(summaries) == 0 {
		return "No past weeks to show."
	}

	var b strings.Builder
	b.WriteString("*Past weeks:*\n")
	for _, s := range summaries {
		status := "⚠️"
		if s.Total > 0 && s.Completed == s.Total {
			status = "✅"
		}
		fmt.Fprintf(&b, "%s %s: *%s* (%d/%d)", status, notification.WeekRange(s.Assignment), s.Assignment.Unit.Label(), s.Completed, s.Total)
		if s.Notes != "" {
			fmt.Fprintf(&b, " - %s", s.Notes)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatUnits(units []*entity.Unit) string {
	if len(units) == 0 {
		return "No units in rotation. Use `/cleaning units add NUMBER` to add one."
	}

	var b strings.Builder
	b.WriteString("*Units in rotation:*\n")
	for i, unit := range units {
		fmt.Fprintf(&b, "%d. %s\n", i+1, unit.Label())
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatSettings(settings *entity.Settings, units []*entity.Unit) string {
	mine := "not set"
	for _, unit := range units {
		if unit.ID == settings.MyUnitID {
			mine = unit.Label()
			break
		}
	}

	return fmt.Sprintf("*Current settings:*\n• Cycle start: %s\n• Notification time: %s\n• My unit: %s\n• Units in rotation: %d",
		settings.CycleStartDate, settings.NotificationTime, mine, len(units))
}
