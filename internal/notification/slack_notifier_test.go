package notification

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/cleaning-rotation-bot/internal/metrics"
	"github.com/diegoclair/cleaning-rotation-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testDuty(done ...string) *entity.Duty {
	start := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)
	record := entity.NewWeeklyRecord("2026-01-19")
	for _, id := range done {
		record.Completed[id] = true
	}
	return &entity.Duty{
		Assignment: entity.Assignment{
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, 6),
			Unit:          &entity.Unit{ID: "3", Number: "201"},
			IsCurrentWeek: true,
		},
		Tasks: []*entity.Task{
			{ID: "stairs_corridor", Label: "Clean corridor and stairs"},
			{ID: "garage", Label: "Clean garage"},
		},
		Record: record,
	}
}

// postedText extracts the text of a message from its options
func postedText(t *testing.T, options ...slack.MsgOption) string {
	t.Helper()
	_, values, err := slack.UnsafeApplyMsgOptions("token", "C123", "https://slack.com/api/", options...)
	require.NoError(t, err)
	return values.Get("text")
}

func TestSlackNotifier_Notify(t *testing.T) {
	tests := []struct {
		name     string
		send     func(n *SlackNotifier, ctx context.Context, duty *entity.Duty) error
		contains string
	}{
		{
			name:     "Should post the turn start",
			send:     (*SlackNotifier).NotifyTurnStart,
			contains: "This week (Mon Jan 19 to Sun Jan 25) it's unit *201*'s turn.",
		},
		{
			name:     "Should post the completion",
			send:     (*SlackNotifier).NotifyCompletion,
			contains: "Unit *201* finished all 2 tasks",
		},
		{
			name:     "Should post the reminder",
			send:     (*SlackNotifier).NotifyReminder,
			contains: "still has 2 of 2 tasks pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockSlackClient(ctrl)
			n := NewSlackNotifier(client, "C123", metrics.NewNop(), zap.NewNop())

			var text string
			client.EXPECT().PostMessage("C123", gomock.Any(), gomock.Any()).
				DoAndReturn(func(channelID string, options ...slack.MsgOption) (string, string, error) {
					text = postedText(t, options...)
					return channelID, "1700000000.000100", nil
				}).Times(1)

			require.NoError(t, tt.send(n, context.Background(), testDuty()))
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestSlackNotifier_PostError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSlackClient(ctrl)
	client.EXPECT().PostMessage("C123", gomock.Any(), gomock.Any()).Return("", "", assert.AnError).Times(1)

	n := NewSlackNotifier(client, "C123", metrics.NewNop(), zap.NewNop())
	err := n.NotifyCompletion(context.Background(), testDuty())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSlackNotifier_NoChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no PostMessage expectation: any call fails the test
	n := NewSlackNotifier(mocks.NewMockSlackClient(ctrl), "", metrics.NewNop(), zap.NewNop())
	assert.NoError(t, n.NotifyTurnStart(context.Background(), testDuty()))
}
