package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/schedule"
	"github.com/diegoclair/cleaning-rotation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockSettingsRepo *mocks.MockSettingsRepo
	mockUnitRepo     *mocks.MockUnitRepo
	mockTaskRepo     *mocks.MockTaskRepo
	mockRecordRepo   *mocks.MockWeeklyRecordRepo
	mockNotifier     *mocks.MockNotifier
	mockMirror       *mocks.MockRecordMirror
	mockTips         *mocks.MockTipProvider
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	unitRepo := mocks.NewMockUnitRepo(ctrl)
	dm.EXPECT().Unit().Return(unitRepo).AnyTimes()

	taskRepo := mocks.NewMockTaskRepo(ctrl)
	dm.EXPECT().Task().Return(taskRepo).AnyTimes()

	recordRepo := mocks.NewMockWeeklyRecordRepo(ctrl)
	dm.EXPECT().Record().Return(recordRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockSettingsRepo: settingsRepo,
		mockUnitRepo:     unitRepo,
		mockTaskRepo:     taskRepo,
		mockRecordRepo:   recordRepo,
		mockNotifier:     mocks.NewMockNotifier(ctrl),
		mockMirror:       mocks.NewMockRecordMirror(ctrl),
		mockTips:         mocks.NewMockTipProvider(ctrl),
	}

	// validate service creation
	dutyService := newTestService(m, wednesday)
	require.NotNil(t, dutyService)

	return
}

var (
	// wednesday of the duty week starting 2026-01-19, owned by unit 201
	wednesday = time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC)
	// sunday closing that same week
	sunday = time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)
)

const currentWeekKey = "2026-01-19"

func newTestService(m allMocks, now time.Time) *dutyService {
	gen := schedule.NewGenerator(time.UTC, func() time.Time { return now })
	collab := Collaborators{
		Notifier: m.mockNotifier,
		Mirror:   m.mockMirror,
		Tips:     m.mockTips,
	}
	return newDuty(m.mockDataManager, gen, collab, Defaults{CycleStartDate: "2026-01-05", NotificationTime: "09:00"}, zap.NewNop())
}

func testSettings() *entity.Settings {
	return &entity.Settings{CycleStartDate: "2026-01-05", NotificationTime: "09:00"}
}

func testUnits() []*entity.Unit {
	return []*entity.Unit{
		{ID: "1", Number: "101", Position: 0},
		{ID: "2", Number: "102", Position: 1},
		{ID: "3", Number: "201", Position: 2},
		{ID: "4", Number: "202", Position: 3},
		{ID: "5", Number: "301", Position: 4},
		{ID: "6", Number: "302", Position: 5},
	}
}

func testTasks() []*entity.Task {
	return []*entity.Task{
		{ID: "stairs_corridor", Label: "Clean corridor and stairs", Position: 0},
		{ID: "garage", Label: "Clean garage", Position: 1},
		{ID: "bbq", Label: "Clean barbecue area", Position: 2},
		{ID: "trash_house", Label: "Clean the trash shelter", Position: 3},
	}
}

func recordWith(weekKey string, done ...string) *entity.WeeklyRecord {
	record := entity.NewWeeklyRecord(weekKey)
	for _, id := range done {
		record.Completed[id] = true
	}
	record.UpdatedAt = time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)
	return record
}

// expectCurrentDuty sets the repository reads done by CurrentDuty. A nil
// record is looked up in the mirror, which has nothing either.
func expectCurrentDuty(m allMocks, settings *entity.Settings, weekKey string, record *entity.WeeklyRecord) {
	m.mockSettingsRepo.EXPECT().Get().Return(settings, nil).Times(1)
	m.mockUnitRepo.EXPECT().List().Return(testUnits(), nil).Times(1)
	m.mockTaskRepo.EXPECT().List().Return(testTasks(), nil).Times(1)
	m.mockRecordRepo.EXPECT().Get(weekKey).Return(record, nil).Times(1)
	if record == nil {
		m.mockMirror.EXPECT().Fetch(gomock.Any(), weekKey).Return(nil, nil).Times(1)
	}
}

func expectSave(m allMocks, weekKey string) {
	m.mockRecordRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(record *entity.WeeklyRecord) error {
		if record.WeekKey != weekKey {
			return assertErr("unexpected week key " + record.WeekKey)
		}
		return nil
	}).Times(1)
	m.mockMirror.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
}

func runInTransaction(m allMocks) func(ctx context.Context, fn func(contract.DataManager) error) error {
	return func(ctx context.Context, fn func(contract.DataManager) error) error {
		return fn(m.mockDataManager)
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
