package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdNow      CommandType = "now"
	CmdSchedule CommandType = "schedule"
	CmdHistory  CommandType = "history"
	CmdDone     CommandType = "done"
	CmdUndo     CommandType = "undo"
	CmdPlan     CommandType = "plan"
	CmdNote     CommandType = "note"
	CmdUnits    CommandType = "units"
	CmdConfig   CommandType = "config"
	CmdTip      CommandType = "tip"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	// Rest is the text after the subcommand with its spacing preserved, used by free-text commands
	Rest string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Fields(trimmed)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Rest: strings.TrimSpace(strings.TrimPrefix(trimmed, parts[0])),
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "now", "status", "current":
		cmd.Type = CmdNow
	case "schedule", "next", "upcoming":
		cmd.Type = CmdSchedule
	case "history":
		cmd.Type = CmdHistory
	case "done", "check":
		cmd.Type = CmdDone
	case "undo", "uncheck":
		cmd.Type = CmdUndo
	case "plan":
		cmd.Type = CmdPlan
	case "note", "notes":
		cmd.Type = CmdNote
	case "units", "roster":
		cmd.Type = CmdUnits
	case "config":
		cmd.Type = CmdConfig
	case "tip":
		cmd.Type = CmdTip
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*This week:*
• ` + "`/cleaning now`" + ` - Show who is on duty and the checklist
• ` + "`/cleaning done TASK`" + ` - Mark a task as done (task number, id or name)
• ` + "`/cleaning undo TASK`" + ` - Mark a task as pending again
• ` + "`/cleaning plan DAY`" + ` - Set the planned cleaning day (ex: sat, 6)
• ` + "`/cleaning note TEXT`" + ` - Set notes for the week (` + "`/cleaning note clear`" + ` removes them)

*Schedule:*
• ` + "`/cleaning schedule [weeks]`" + ` - Show the upcoming weeks
• ` + "`/cleaning history [weeks]`" + ` - Show past weeks with their completion

*Rotation:*
• ` + "`/cleaning units`" + ` - List the units in rotation order
• ` + "`/cleaning units add NUMBER [name]`" + ` - Add a unit at the end of the rotation
• ` + "`/cleaning units remove NUMBER`" + ` - Remove a unit from the rotation

*Configuration:*
• ` + "`/cleaning config show`" + ` - Show current settings
• ` + "`/cleaning config anchor YYYY-MM-DD`" + ` - Set the date the first unit starts the cycle
• ` + "`/cleaning config mine NUMBER`" + ` - Set your unit (` + "`none`" + ` to clear)
• ` + "`/cleaning config time HH:MM`" + ` - Set notification time (ex: 09:30)

• ` + "`/cleaning tip`" + ` - Get a cleaning tip`
}
