package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// AnnounceTurn tells the building whose turn starts this week. It sends at
// most once per week and never before the cycle starts.
func (s *dutyService) AnnounceTurn(ctx context.Context) error {
	duty, err := s.CurrentDuty(ctx)
	if err != nil {
		return err
	}

	key := duty.Assignment.Key()
	if !s.weekStarted(duty) {
		s.log.Debug("cycle not started, skipping turn announcement", zap.String("week", key))
		return nil
	}

	if !s.tracker.MarkTurnStart(key) {
		return nil
	}

	if err := s.notify(ctx, "turn_start", duty, s.notifier.NotifyTurnStart); err != nil {
		s.tracker.UnmarkTurnStart(key)
		return err
	}
	return nil
}

// RemindPending warns the owner on Sunday, the last day of the duty week,
// while the checklist is incomplete
func (s *dutyService) RemindPending(ctx context.Context) error {
	if s.gen.Now().Weekday() != time.Sunday {
		return nil
	}

	duty, err := s.CurrentDuty(ctx)
	if err != nil {
		return err
	}
	if !s.weekStarted(duty) || duty.AllCompleted() {
		return nil
	}

	return s.notify(ctx, "reminder", duty, s.notifier.NotifyReminder)
}

// weekStarted reports whether the duty week is under way. A pre-cycle duty
// counts once today falls in the anchor's own week.
func (s *dutyService) weekStarted(duty *entity.Duty) bool {
	return !duty.PreCycle || s.gen.CurrentWindow().Contains(duty.Assignment.StartDate)
}

// evaluateCompletion announces a fully checked week once, and re-arms the
// announcement when a task gets unchecked
func (s *dutyService) evaluateCompletion(ctx context.Context, duty *entity.Duty) {
	key := duty.Assignment.Key()
	if !duty.AllCompleted() {
		s.tracker.ResetCompletion(key)
		return
	}

	if !s.tracker.MarkCompleted(key) {
		return
	}

	if err := s.notify(ctx, "completion", duty, s.notifier.NotifyCompletion); err != nil {
		s.tracker.ResetCompletion(key)
	}
}

func (s *dutyService) notify(ctx context.Context, kind string, duty *entity.Duty, send func(context.Context, *entity.Duty) error) error {
	if err := send(ctx, duty); err != nil {
		s.log.Error("failed to send notification",
			zap.String("kind", kind),
			zap.String("week", duty.Assignment.Key()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send %s notification: %w", kind, err)
	}

	s.log.Info("notification sent", zap.String("kind", kind), zap.String("week", duty.Assignment.Key()))
	return nil
}

// Sync applies records published by other instances until ctx is done.
// It returns immediately when no mirror is configured.
func (s *dutyService) Sync(ctx context.Context) error {
	if s.mirror == nil {
		return nil
	}

	return s.mirror.Subscribe(ctx, func(record *entity.WeeklyRecord) {
		if err := s.applyRemote(record); err != nil {
			s.log.Warn("failed to apply mirrored record", zap.String("week", record.WeekKey), zap.Error(err))
		}
	})
}

// applyRemote stores a mirrored record unless the local copy is newer.
// A remote completion is treated as already announced.
func (s *dutyService) applyRemote(remote *entity.WeeklyRecord) error {
	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	local, err := s.dm.Record().Get(remote.WeekKey)
	if err != nil {
		return fmt.Errorf("failed to get weekly record: %w", err)
	}
	if local != nil && !remote.UpdatedAt.After(local.UpdatedAt) {
		return nil
	}

	if err := s.dm.Record().Upsert(remote); err != nil {
		return fmt.Errorf("failed to store mirrored weekly record: %w", err)
	}

	tasks, err := s.dm.Task().List()
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if remote.AllCompleted(tasks) {
		s.tracker.MarkCompleted(remote.WeekKey)
	} else {
		s.tracker.ResetCompletion(remote.WeekKey)
	}

	return nil
}
