package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/cleaning-rotation-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// usageError is shown to the user as is
type usageError string

func (e usageError) Error() string {
	return string(e)
}

type SlackHandler struct {
	service       contract.DutyService
	signingSecret string
	metrics       contract.MetricsCollector
	log           *zap.Logger
}

func New(service contract.DutyService, signingSecret string, metrics contract.MetricsCollector, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		service:       service,
		signingSecret: signingSecret,
		metrics:       metrics,
		log:           log.Named("slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command with an invalid signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.metrics.RecordCommand("unknown", "error")
		h.respond(w, h.createErrorResponse(err.Error()+". Use `/cleaning help` to see the available commands."))
		return
	}

	response, err := h.handleCommand(r.Context(), cmd)
	if err != nil {
		h.metrics.RecordCommand(string(cmd.Type), "error")
		h.respond(w, h.errorResponse(cmd, err))
		return
	}

	h.metrics.RecordCommand(string(cmd.Type), "ok")
	h.respond(w, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	switch cmd.Type {
	case slackcmd.CmdNow:
		return h.handleNow(ctx)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(ctx, cmd)
	case slackcmd.CmdHistory:
		return h.handleHistory(ctx, cmd)
	case slackcmd.CmdDone:
		return h.handleSetTask(ctx, cmd, true)
	case slackcmd.CmdUndo:
		return h.handleSetTask(ctx, cmd, false)
	case slackcmd.CmdPlan:
		return h.handlePlan(ctx, cmd)
	case slackcmd.CmdNote:
		return h.handleNote(ctx, cmd)
	case slackcmd.CmdUnits:
		return h.handleUnits(ctx, cmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(ctx, cmd)
	case slackcmd.CmdTip:
		return h.handleTip(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp(), nil
	default:
		return nil, usageError("Unknown command")
	}
}

func (h *SlackHandler) handleNow(ctx context.Context) (*slack.Msg, error) {
	duty, err := h.service.CurrentDuty(ctx)
	if err != nil {
		return nil, err
	}

	return ephemeral(formatDuty(duty)), nil
}

func (h *SlackHandler) handleSchedule(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	weeks, err := parseWeeks(cmd.Args)
	if err != nil {
		return nil, err
	}

	assignments, err := h.service.Upcoming(ctx, time.Time{}, weeks)
	if err != nil {
		return nil, err
	}

	return ephemeral(formatSchedule(assignments)), nil
}

func (h *SlackHandler) handleHistory(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	weeks, err := parseWeeks(cmd.Args)
	if err != nil {
		return nil, err
	}

	summaries, err := h.service.History(ctx, weeks)
	if err != nil {
		return nil, err
	}

	return ephemeral(formatHistory(summaries)), nil
}

func (h *SlackHandler) handleSetTask(ctx context.Context, cmd *slackcmd.Command, done bool) (*slack.Msg, error) {
	if cmd.Rest == "" {
		return nil, usageError(fmt.Sprintf("Please tell which task: `/cleaning %s TASK` (number, id or name)", cmd.Type))
	}

	duty, err := h.service.SetTask(ctx, cmd.Rest, done)
	if err != nil {
		return nil, err
	}

	verb := "is pending again"
	if done {
		verb = "is done"
	}
	task := findTask(duty.Tasks, cmd.Rest)

	text := fmt.Sprintf("✅ *%s* %s. Progress: %d/%d", task, verb, duty.CompletedCount(), len(duty.Tasks))
	return inChannel(text), nil
}

func (h *SlackHandler) handlePlan(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if len(cmd.Args) == 0 {
		return nil, usageError("Please tell the day: `/cleaning plan DAY` (ex: sat, saturday or 6)")
	}

	day, ok := domain.WeekdayNumbers[strings.ToLower(cmd.Args[0])]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlannedDay, cmd.Args[0])
	}

	duty, err := h.service.SetPlannedDay(ctx, day)
	if err != nil {
		return nil, err
	}

	return inChannel(fmt.Sprintf("📅 Unit *%s* plans to clean on *%s*.",
		duty.Assignment.Unit.Label(), domain.WeekdayNames[day])), nil
}

func (h *SlackHandler) handleNote(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if cmd.Rest == "" {
		return nil, usageError("Please write the note: `/cleaning note TEXT`")
	}

	notes := cmd.Rest
	if strings.EqualFold(notes, "clear") {
		notes = ""
	}

	if _, err := h.service.SetNotes(ctx, notes); err != nil {
		return nil, err
	}

	if notes == "" {
		return inChannel("📝 Notes cleared for this week."), nil
	}
	return inChannel(fmt.Sprintf("📝 Notes for this week: %s", notes)), nil
}

func (h *SlackHandler) handleUnits(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if len(cmd.Args) == 0 || cmd.Args[0] == "list" {
		units, err := h.service.ListUnits(ctx)
		if err != nil {
			return nil, err
		}
		return ephemeral(formatUnits(units)), nil
	}

	switch cmd.Args[0] {
	case "add":
		if len(cmd.Args) < 2 {
			return nil, usageError("Please tell the unit number: `/cleaning units add NUMBER [name]`")
		}
		unit, err := h.service.AddUnit(ctx, cmd.Args[1], strings.Join(cmd.Args[2:], " "))
		if err != nil {
			return nil, err
		}
		return inChannel(fmt.Sprintf("✅ Unit *%s* has been added to the end of the rotation!", unit.Label())), nil

	case "remove", "rm":
		if len(cmd.Args) < 2 {
			return nil, usageError("Please tell the unit number: `/cleaning units remove NUMBER`")
		}
		if err := h.service.RemoveUnit(ctx, cmd.Args[1]); err != nil {
			return nil, err
		}
		return inChannel(fmt.Sprintf("✅ Unit *%s* has been removed from the rotation.", cmd.Args[1])), nil

	default:
		return nil, usageError("Use: `/cleaning units`, `/cleaning units add NUMBER [name]` or `/cleaning units remove NUMBER`")
	}
}

func (h *SlackHandler) handleConfig(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if len(cmd.Args) == 0 || cmd.Args[0] == "show" {
		return h.handleConfigShow(ctx)
	}

	if len(cmd.Args) < 2 {
		return nil, usageError("Invalid format. Use: `/cleaning config anchor YYYY-MM-DD`, `/cleaning config mine NUMBER` or `/cleaning config time HH:MM`")
	}

	field := strings.ToLower(cmd.Args[0])
	value := strings.Join(cmd.Args[1:], " ")

	if err := h.service.UpdateSetting(ctx, field, value); err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("✅ Configuration updated: %s = %s", field, value)), nil
}

func (h *SlackHandler) handleConfigShow(ctx context.Context) (*slack.Msg, error) {
	settings, err := h.service.Settings(ctx)
	if err != nil {
		return nil, err
	}

	units, err := h.service.ListUnits(ctx)
	if err != nil {
		return nil, err
	}

	return ephemeral(formatSettings(settings, units)), nil
}

func (h *SlackHandler) handleTip(ctx context.Context) (*slack.Msg, error) {
	return ephemeral("💡 " + h.service.Tip(ctx)), nil
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return ephemeral(slackcmd.GetHelpText())
}

// errorResponse turns service errors into a message the user can act on
func (h *SlackHandler) errorResponse(cmd *slackcmd.Command, err error) *slack.Msg {
	var usage usageError
	var cfgErr *domain.ConfigError

	switch {
	case errors.As(err, &usage):
		return h.createErrorResponse(usage.Error())
	case errors.As(err, &cfgErr):
		return h.createErrorResponse(fmt.Sprintf(
			"The rotation is not configured correctly (%s: %s). Fix it with `/cleaning config anchor YYYY-MM-DD` or `/cleaning units add NUMBER`.",
			cfgErr.Field, cfgErr.Reason))
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return h.createErrorResponse("The rotation is not configured correctly. Check `/cleaning config show` and `/cleaning units`.")
	case errors.Is(err, domain.ErrTaskNotFound):
		return h.createErrorResponse("Task not found. Use `/cleaning now` to see the checklist.")
	case errors.Is(err, domain.ErrInvalidPlannedDay):
		return h.createErrorResponse("Invalid day. Use a name like `sat` or a number from 0 (Sunday) to 6 (Saturday).")
	case errors.Is(err, domain.ErrUnitNotFound):
		return h.createErrorResponse("Unit not found in the rotation. Use `/cleaning units` to see the roster.")
	case errors.Is(err, domain.ErrUnitExists):
		return h.createErrorResponse("This unit is already in the rotation.")
	case errors.Is(err, domain.ErrLastUnit):
		return h.createErrorResponse("The rotation needs at least one unit. Add another unit before removing this one.")
	case errors.Is(err, domain.ErrInvalidSetting):
		return h.createErrorResponse(fmt.Sprintf("Invalid value: %v", err))
	}

	h.log.Error("failed to handle command", zap.String("command", string(cmd.Type)), zap.Error(err))
	return h.createErrorResponse("Something went wrong, please try again.")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to encode slack response", zap.Error(err))
	}
}

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: text}
}

func inChannel(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: text}
}

// parseWeeks reads an optional week count; 0 lets the service pick its default
func parseWeeks(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}

	weeks, err := strconv.Atoi(args[0])
	if err != nil || weeks < 1 {
		return 0, usageError(fmt.Sprintf("%q is not a valid number of weeks", args[0]))
	}

	return weeks, nil
}

func findTask(tasks []*entity.Task, ref string) string {
	for i, task := range tasks {
		if task.ID == ref || strings.EqualFold(task.Label, ref) || strconv.Itoa(i+1) == ref {
			return task.Label
		}
	}
	return ref
}
