package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const jobTimeout = time.Minute

// dutyJobs are the periodic duty operations run by the scheduler
type dutyJobs interface {
	AnnounceTurn(ctx context.Context) error
	RemindPending(ctx context.Context) error
}

type scheduler struct {
	dm            contract.DataManager
	jobs          dutyJobs
	cron          *cron.Cron
	log           *zap.Logger
	mu            sync.Mutex
	entries       []cron.EntryID
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newScheduler(dm contract.DataManager, jobs dutyJobs, loc *time.Location, log *zap.Logger) *scheduler {
	if log == nil {
		log = zap.NewNop()
	}

	return &scheduler{
		dm:            dm,
		jobs:          jobs,
		cron:          cron.New(cron.WithLocation(loc)),
		log:           log.Named("scheduler"),
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

// Start registers the jobs for the stored notification time and starts the
// cron runner. The turn announcement also runs once right away, so a week
// whose Monday slot was missed while the bot was down still gets announced.
func (s *scheduler) Start() error {
	if err := s.reschedule(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stopChan = make(chan struct{})
	stop := s.stopChan
	s.mu.Unlock()

	s.log.Info("scheduler starting")
	s.cron.Start()
	go s.watchConfig(stop)
	go s.run("turn_start", s.jobs.AnnounceTurn)()
	return nil
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	<-s.cron.Stop().Done()
	s.running = false
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// a reschedule is already pending
	}
}

func (s *scheduler) watchConfig(stop <-chan struct{}) {
	for {
		select {
		case <-s.configChanged:
			s.log.Info("configuration changed, rescheduling")
			if err := s.reschedule(); err != nil {
				s.log.Error("failed to reschedule jobs", zap.Error(err))
			}
		case <-stop:
			return
		}
	}
}

// reschedule replaces the registered jobs with ones at the stored notification time
func (s *scheduler) reschedule() error {
	settings, err := s.dm.Settings().Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	notificationTime := domain.DefaultNotificationTime
	if settings != nil && settings.NotificationTime != "" {
		notificationTime = settings.NotificationTime
	}

	turnSpec, reminderSpec, err := cronSpecs(notificationTime)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]

	turnID, err := s.cron.AddFunc(turnSpec, s.run("turn_start", s.jobs.AnnounceTurn))
	if err != nil {
		return fmt.Errorf("failed to schedule turn announcement: %w", err)
	}
	reminderID, err := s.cron.AddFunc(reminderSpec, s.run("reminder", s.jobs.RemindPending))
	if err != nil {
		s.cron.Remove(turnID)
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}
	s.entries = append(s.entries, turnID, reminderID)

	s.log.Info("jobs scheduled", zap.String("turn_start", turnSpec), zap.String("reminder", reminderSpec))
	return nil
}

func (s *scheduler) run(name string, job func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := job(ctx); err != nil {
			s.log.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
		}
	}
}

// cronSpecs converts an HH:MM time into the Monday turn start and the Sunday
// reminder cron specs
func cronSpecs(notificationTime string) (turnStart, reminder string, err error) {
	at, err := time.Parse(domain.TimeLayout, notificationTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: notification time must be HH:MM, got %q", domain.ErrInvalidSetting, notificationTime)
	}

	turnStart = fmt.Sprintf("%d %d * * %d", at.Minute(), at.Hour(), time.Monday)
	reminder = fmt.Sprintf("%d %d * * %d", at.Minute(), at.Hour(), time.Sunday)
	return turnStart, reminder, nil
}
