package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// CurrentDuty returns the week the building is working on. Before the cycle
// starts that is the anchor week, flagged as PreCycle.
func (s *dutyService) CurrentDuty(ctx context.Context) (*entity.Duty, error) {
	roster, settings, err := s.loadRotation()
	if err != nil {
		return nil, err
	}

	assignment, preCycle, err := s.currentAssignment(roster, settings)
	if err != nil {
		return nil, err
	}

	tasks, err := s.dm.Task().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	record, err := s.getRecord(ctx, assignment.Key())
	if err != nil {
		return nil, err
	}

	return &entity.Duty{
		Assignment: assignment,
		PreCycle:   preCycle,
		MyTurn:     settings.MyUnitID != "" && assignment.Unit.ID == settings.MyUnitID,
		Tasks:      tasks,
		Record:     record,
	}, nil
}

func (s *dutyService) currentAssignment(roster []*entity.Unit, settings *entity.Settings) (entity.Assignment, bool, error) {
	anchor, err := s.gen.ParseAnchor(settings.CycleStartDate)
	if err != nil {
		return entity.Assignment{}, false, err
	}

	preCycle := s.gen.Today().Before(anchor)
	reference := s.gen.Now()
	if preCycle {
		reference = anchor
	}

	assignments, err := s.gen.ForwardFrom(roster, settings.CycleStartDate, 1, reference)
	if err != nil {
		return entity.Assignment{}, false, err
	}

	return assignments[0], preCycle, nil
}

// Upcoming returns the schedule starting at the week containing from.
// A zero from means the current week and zero weeks the default length.
func (s *dutyService) Upcoming(ctx context.Context, from time.Time, weeks int) ([]entity.Assignment, error) {
	roster, settings, err := s.loadRotation()
	if err != nil {
		return nil, err
	}

	weeks = normalizeWeeks(weeks, domain.DefaultUpcomingWeeks)
	if from.IsZero() {
		return s.gen.Forward(roster, settings.CycleStartDate, weeks)
	}

	return s.gen.ForwardFrom(roster, settings.CycleStartDate, weeks, from)
}

// History returns the weeks before the current one, most recent first, with
// their checklist progress
func (s *dutyService) History(ctx context.Context, weeks int) ([]*entity.WeekSummary, error) {
	roster, settings, err := s.loadRotation()
	if err != nil {
		return nil, err
	}

	assignments, err := s.gen.Backward(roster, settings.CycleStartDate, normalizeWeeks(weeks, domain.DefaultHistoryWeeks))
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(assignments))
	for _, a := range assignments {
		keys = append(keys, a.Key())
	}

	records, err := s.dm.Record().GetMany(keys)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly records: %w", err)
	}

	tasks, err := s.dm.Task().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	summaries := make([]*entity.WeekSummary, 0, len(assignments))
	for _, a := range assignments {
		summary := &entity.WeekSummary{
			Assignment: a,
			Total:      len(tasks),
		}
		if record, ok := records[a.Key()]; ok {
			summary.Completed = record.CompletedCount(tasks)
			summary.PlannedDay = record.PlannedDay
			summary.Notes = record.Notes
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Week returns the record of the week starting at weekKey. Weeks without a
// record yield an empty one.
func (s *dutyService) Week(ctx context.Context, weekKey string) (*entity.WeeklyRecord, error) {
	start, err := time.ParseInLocation(entity.WeekKeyLayout, weekKey, s.gen.Location())
	if err != nil || start.Weekday() != time.Monday {
		return nil, fmt.Errorf("%w: %q is not the Monday of a duty week", domain.ErrInvalidWeekKey, weekKey)
	}

	return s.getRecord(ctx, weekKey)
}

// SetTask checks or unchecks a task of the current duty week. taskID may be
// the task id, its label or its 1-based position in the checklist.
func (s *dutyService) SetTask(ctx context.Context, taskID string, done bool) (*entity.Duty, error) {
	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	duty, err := s.CurrentDuty(ctx)
	if err != nil {
		return nil, err
	}

	task := resolveTask(duty.Tasks, taskID)
	if task == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, taskID)
	}

	duty.Record.Completed[task.ID] = done
	if err := s.saveRecord(ctx, duty.Record); err != nil {
		return nil, err
	}

	s.metrics.SetCompletedTasks(duty.CompletedCount(), len(duty.Tasks))
	s.evaluateCompletion(ctx, duty)

	return duty, nil
}

// SetPlannedDay records the day the owner plans to clean, 0=Sunday..6=Saturday
func (s *dutyService) SetPlannedDay(ctx context.Context, day int) (*entity.Duty, error) {
	if _, ok := domain.WeekdayNames[day]; !ok {
		return nil, fmt.Errorf("%w: %d is not between 0 (Sunday) and 6 (Saturday)", domain.ErrInvalidPlannedDay, day)
	}

	return s.updateCurrent(ctx, func(record *entity.WeeklyRecord) {
		record.PlannedDay = &day
	})
}

func (s *dutyService) SetNotes(ctx context.Context, notes string) (*entity.Duty, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must have at most %d characters", domain.ErrInvalidSetting, domain.MaxNotesLength)
	}

	return s.updateCurrent(ctx, func(record *entity.WeeklyRecord) {
		record.Notes = notes
	})
}

func (s *dutyService) updateCurrent(ctx context.Context, apply func(record *entity.WeeklyRecord)) (*entity.Duty, error) {
	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	duty, err := s.CurrentDuty(ctx)
	if err != nil {
		return nil, err
	}

	apply(duty.Record)
	if err := s.saveRecord(ctx, duty.Record); err != nil {
		return nil, err
	}

	return duty, nil
}

func (s *dutyService) loadRotation() ([]*entity.Unit, *entity.Settings, error) {
	settings, err := s.dm.Settings().Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		return nil, nil, domain.NewConfigError("settings", "not initialized")
	}

	roster, err := s.dm.Unit().List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list units: %w", err)
	}

	return roster, settings, nil
}

// getRecord reads the local record, then the mirror, and falls back to an empty record
func (s *dutyService) getRecord(ctx context.Context, weekKey string) (*entity.WeeklyRecord, error) {
	record, err := s.dm.Record().Get(weekKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly record: %w", err)
	}
	if record != nil {
		return record, nil
	}

	if s.mirror != nil {
		remote, err := s.mirror.Fetch(ctx, weekKey)
		if err != nil {
			s.log.Warn("failed to fetch weekly record from mirror", zap.String("week", weekKey), zap.Error(err))
		} else if remote != nil {
			if err := s.dm.Record().Upsert(remote); err != nil {
				return nil, fmt.Errorf("failed to store mirrored weekly record: %w", err)
			}
			return remote, nil
		}
	}

	return entity.NewWeeklyRecord(weekKey), nil
}

func (s *dutyService) saveRecord(ctx context.Context, record *entity.WeeklyRecord) error {
	record.UpdatedAt = s.gen.Now().UTC()
	if err := s.dm.Record().Upsert(record); err != nil {
		return fmt.Errorf("failed to save weekly record: %w", err)
	}

	if s.mirror != nil {
		if err := s.mirror.Publish(ctx, record); err != nil {
			// local state stays authoritative, the next write republishes
			s.log.Warn("failed to publish weekly record", zap.String("week", record.WeekKey), zap.Error(err))
		}
	}

	return nil
}

func resolveTask(tasks []*entity.Task, ref string) *entity.Task {
	ref = strings.TrimSpace(ref)
	for _, task := range tasks {
		if task.ID == ref || strings.EqualFold(task.Label, ref) {
			return task
		}
	}

	if position, err := strconv.Atoi(ref); err == nil && position >= 1 && position <= len(tasks) {
		return tasks[position-1]
	}

	return nil
}

func normalizeWeeks(weeks, defaultWeeks int) int {
	if weeks == 0 {
		return defaultWeeks
	}
	if weeks > domain.MaxListWeeks {
		return domain.MaxListWeeks
	}
	return weeks
}
