package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/cleaning-rotation-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type args struct {
	command string
	text    string
}

type slashTest struct {
	name          string
	args          args
	buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
	checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
}

func testTasks() []*entity.Task {
	return []*entity.Task{
		{ID: "stairs_corridor", Label: "Clean corridor and stairs", Position: 0},
		{ID: "garage", Label: "Clean garage", Position: 1},
		{ID: "bbq", Label: "Clean barbecue area", Position: 2},
		{ID: "trash_house", Label: "Clean the trash shelter", Position: 3},
	}
}

func testUnits() []*entity.Unit {
	return []*entity.Unit{
		{ID: "1", Number: "101", Position: 0},
		{ID: "2", Number: "102", Position: 1},
		{ID: "3", Number: "201", Name: "Ana", Position: 2},
	}
}

func testAssignment(start time.Time, unit *entity.Unit) entity.Assignment {
	return entity.Assignment{
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 6),
		Unit:          unit,
		IsCurrentWeek: true,
	}
}

func testDuty(completed ...string) *entity.Duty {
	record := entity.NewWeeklyRecord("2026-01-19")
	for _, id := range completed {
		record.Completed[id] = true
	}

	return &entity.Duty{
		Assignment: testAssignment(time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), testUnits()[2]),
		Tasks:      testTasks(),
		Record:     record,
	}
}

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func expectText(responseType string, texts ...string) func(t *testing.T, resp *httptest.ResponseRecorder) {
	return func(t *testing.T, resp *httptest.ResponseRecorder) {
		response := decodeMsg(t, resp)
		assert.Equal(t, responseType, response.ResponseType)
		for _, text := range texts {
			assert.Contains(t, response.Text, text)
		}
	}
}

func runSlashTests(t *testing.T, tests []slashTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h, ctrl := test.GetHandlerTest(t, time.UTC)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, "C123456789", "U987654321", test.SigningSecret)

			h.Slack.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Now(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should show the current duty with its checklist",
			args: args{command: "/cleaning", text: "now"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				duty := testDuty("stairs_corridor")
				day := domain.Saturday
				duty.Record.PlannedDay = &day
				duty.Record.Notes = "key is with 102"

				m.DutyServiceMock.EXPECT().CurrentDuty(gomock.Any()).Return(duty, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral,
				"*This week* (Mon Jan 19 to Sun Jan 25): unit *201 (Ana)*",
				"*Checklist* (1/4)",
				"✅ 1. Clean corridor and stairs",
				"⬜ 2. Clean garage",
				"Planned day: *Saturday*",
				"Notes: key is with 102",
			),
		},
		{
			name: "Should highlight my turn",
			args: args{command: "/cleaning", text: "status"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				duty := testDuty()
				duty.MyTurn = true
				m.DutyServiceMock.EXPECT().CurrentDuty(gomock.Any()).Return(duty, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "It's your turn!"),
		},
		{
			name: "Should explain that the cycle has not started yet",
			args: args{command: "/cleaning", text: "now"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				duty := testDuty()
				duty.PreCycle = true
				m.DutyServiceMock.EXPECT().CurrentDuty(gomock.Any()).Return(duty, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "The cycle has not started yet. Unit *201 (Ana)* opens it"),
		},
		{
			name: "Should ask to repair an invalid configuration",
			args: args{command: "/cleaning", text: "now"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().CurrentDuty(gomock.Any()).
					Return(nil, domain.NewConfigError("roster", "must contain at least one unit")).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral,
				"❌ The rotation is not configured correctly (roster: must contain at least one unit)",
				"`/cleaning units add NUMBER`",
			),
		},
		{
			name: "Should hide unexpected errors",
			args: args{command: "/cleaning", text: "now"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().CurrentDuty(gomock.Any()).
					Return(nil, errors.New("database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Something went wrong, please try again.", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Schedule(t *testing.T) {
	start := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)
	units := testUnits()

	runSlashTests(t, []slashTest{
		{
			name: "Should list the upcoming weeks",
			args: args{command: "/cleaning", text: "schedule 2"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				next := testAssignment(start.AddDate(0, 0, 7), units[0])
				next.IsCurrentWeek = false

				m.DutyServiceMock.EXPECT().Upcoming(gomock.Any(), time.Time{}, 2).
					Return([]entity.Assignment{testAssignment(start, units[2]), next}, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral,
				"• Mon Jan 19 to Sun Jan 25: *201 (Ana)* 👈 this week",
				"• Mon Jan 26 to Sun Feb 1: *101*",
			),
		},
		{
			name: "Should let the service pick the default length",
			args: args{command: "/cleaning", text: "schedule"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().Upcoming(gomock.Any(), time.Time{}, 0).Return(nil, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "No weeks to show."),
		},
		{
			name:          "Should reject an invalid number of weeks",
			args:          args{command: "/cleaning", text: "schedule many"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, `❌ "many" is not a valid number of weeks`),
		},
		{
			name:          "Should reject zero weeks",
			args:          args{command: "/cleaning", text: "history 0"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, `❌ "0" is not a valid number of weeks`),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_History(t *testing.T) {
	start := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	units := testUnits()

	runSlashTests(t, []slashTest{
		{
			name: "Should list past weeks with their completion",
			args: args{command: "/cleaning", text: "history 2"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				summaries := []*entity.WeekSummary{
					{Assignment: testAssignment(start, units[1]), Completed: 4, Total: 4},
					{Assignment: testAssignment(start.AddDate(0, 0, -7), units[0]), Completed: 1, Total: 4, Notes: "rainy week"},
				}
				m.DutyServiceMock.EXPECT().History(gomock.Any(), 2).Return(summaries, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral,
				"✅ Mon Jan 12 to Sun Jan 18: *102* (4/4)",
				"⚠️ Mon Jan 5 to Sun Jan 11: *101* (1/4) - rainy week",
			),
		},
		{
			name: "Should say when there is no history",
			args: args{command: "/cleaning", text: "history"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().History(gomock.Any(), 0).Return([]*entity.WeekSummary{}, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "No past weeks to show."),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Tasks(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should mark a task as done by position",
			args: args{command: "/cleaning", text: "done 2"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetTask(gomock.Any(), "2", true).
					Return(testDuty("stairs_corridor", "garage"), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "✅ *Clean garage* is done. Progress: 2/4"),
		},
		{
			name: "Should mark a task as done by its name",
			args: args{command: "/cleaning", text: "done clean barbecue area"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetTask(gomock.Any(), "clean barbecue area", true).
					Return(testDuty("bbq"), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "✅ *Clean barbecue area* is done. Progress: 1/4"),
		},
		{
			name: "Should uncheck a task",
			args: args{command: "/cleaning", text: "undo garage"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetTask(gomock.Any(), "garage", false).
					Return(testDuty(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "✅ *Clean garage* is pending again. Progress: 0/4"),
		},
		{
			name: "Should report an unknown task",
			args: args{command: "/cleaning", text: "done windows"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetTask(gomock.Any(), "windows", true).
					Return(nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, "windows")).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Task not found. Use `/cleaning now` to see the checklist."),
		},
		{
			name:          "Should ask which task when none is given",
			args:          args{command: "/cleaning", text: "done"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Please tell which task: `/cleaning done TASK`"),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Plan(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should plan the cleaning for saturday",
			args: args{command: "/cleaning", text: "plan sat"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetPlannedDay(gomock.Any(), domain.Saturday).Return(testDuty(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "📅 Unit *201 (Ana)* plans to clean on *Saturday*."),
		},
		{
			name: "Should map sunday to zero",
			args: args{command: "/cleaning", text: "plan Sunday"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetPlannedDay(gomock.Any(), 0).Return(testDuty(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "*Sunday*"),
		},
		{
			name:          "Should reject an unknown day without calling the service",
			args:          args{command: "/cleaning", text: "plan someday"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Invalid day."),
		},
		{
			name:          "Should ask for the day",
			args:          args{command: "/cleaning", text: "plan"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Please tell the day"),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Note(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should save the note",
			args: args{command: "/cleaning", text: "note key is with unit 102"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetNotes(gomock.Any(), "key is with unit 102").Return(testDuty(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "📝 Notes for this week: key is with unit 102"),
		},
		{
			name: "Should clear the note",
			args: args{command: "/cleaning", text: "note clear"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetNotes(gomock.Any(), "").Return(testDuty(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "📝 Notes cleared for this week."),
		},
		{
			name: "Should report notes that are too long",
			args: args{command: "/cleaning", text: "note too long"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().SetNotes(gomock.Any(), "too long").
					Return(nil, fmt.Errorf("%w: notes must have at most 500 characters", domain.ErrInvalidSetting)).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Invalid value: invalid setting: notes must have at most 500 characters"),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Units(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should list the units in rotation order",
			args: args{command: "/cleaning", text: "units"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().ListUnits(gomock.Any()).Return(testUnits(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "*Units in rotation:*\n1. 101\n2. 102\n3. 201 (Ana)"),
		},
		{
			name: "Should add a unit with a name",
			args: args{command: "/cleaning", text: "units add 401 Maria Clara"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().AddUnit(gomock.Any(), "401", "Maria Clara").
					Return(&entity.Unit{ID: "u-401", Number: "401", Name: "Maria Clara"}, nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "✅ Unit *401 (Maria Clara)* has been added to the end of the rotation!"),
		},
		{
			name: "Should report a duplicated unit",
			args: args{command: "/cleaning", text: "units add 101"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().AddUnit(gomock.Any(), "101", "").Return(nil, domain.ErrUnitExists).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ This unit is already in the rotation."),
		},
		{
			name: "Should remove a unit",
			args: args{command: "/cleaning", text: "units remove 102"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().RemoveUnit(gomock.Any(), "102").Return(nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeInChannel, "✅ Unit *102* has been removed from the rotation."),
		},
		{
			name: "Should refuse to remove the last unit",
			args: args{command: "/cleaning", text: "units rm 101"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().RemoveUnit(gomock.Any(), "101").Return(domain.ErrLastUnit).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ The rotation needs at least one unit."),
		},
		{
			name: "Should report an unknown unit",
			args: args{command: "/cleaning", text: "units remove 999"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().RemoveUnit(gomock.Any(), "999").
					Return(fmt.Errorf("%w: %s", domain.ErrUnitNotFound, "999")).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Unit not found in the rotation."),
		},
		{
			name:          "Should show usage for missing unit numbers",
			args:          args{command: "/cleaning", text: "units add"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Please tell the unit number: `/cleaning units add NUMBER [name]`"),
		},
		{
			name:          "Should show usage for unknown unit actions",
			args:          args{command: "/cleaning", text: "units swap 101 102"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Use: `/cleaning units`"),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Config(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should show the current settings",
			args: args{command: "/cleaning", text: "config show"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().Settings(gomock.Any()).Return(&entity.Settings{
					CycleStartDate:   "2026-01-05",
					MyUnitID:         "3",
					NotificationTime: "09:00",
				}, nil).Times(1)
				m.DutyServiceMock.EXPECT().ListUnits(gomock.Any()).Return(testUnits(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral,
				"• Cycle start: 2026-01-05",
				"• Notification time: 09:00",
				"• My unit: 201 (Ana)",
				"• Units in rotation: 3",
			),
		},
		{
			name: "Should show settings without my unit",
			args: args{command: "/cleaning", text: "config"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().Settings(gomock.Any()).Return(&entity.Settings{
					CycleStartDate:   "2026-01-05",
					NotificationTime: "09:00",
				}, nil).Times(1)
				m.DutyServiceMock.EXPECT().ListUnits(gomock.Any()).Return(testUnits(), nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "• My unit: not set"),
		},
		{
			name: "Should update the notification time",
			args: args{command: "/cleaning", text: "config time 08:30"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().UpdateSetting(gomock.Any(), "time", "08:30").Return(nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "✅ Configuration updated: time = 08:30"),
		},
		{
			name: "Should update the cycle anchor",
			args: args{command: "/cleaning", text: "config Anchor 2026-02-02"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().UpdateSetting(gomock.Any(), "anchor", "2026-02-02").Return(nil).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "✅ Configuration updated: anchor = 2026-02-02"),
		},
		{
			name: "Should report an invalid anchor as a configuration problem",
			args: args{command: "/cleaning", text: "config anchor 02/02/2026"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().UpdateSetting(gomock.Any(), "anchor", "02/02/2026").
					Return(domain.NewConfigError("cycle_start_date", `"02/02/2026" is not a YYYY-MM-DD date`)).Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "(cycle_start_date: \"02/02/2026\" is not a YYYY-MM-DD date)"),
		},
		{
			name:          "Should show usage when the value is missing",
			args:          args{command: "/cleaning", text: "config time"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ Invalid format."),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Misc(t *testing.T) {
	runSlashTests(t, []slashTest{
		{
			name: "Should return a cleaning tip",
			args: args{command: "/cleaning", text: "tip"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.DutyServiceMock.EXPECT().Tip(gomock.Any()).Return("Sweep before mopping.").Times(1)
			},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "💡 Sweep before mopping."),
		},
		{
			name:          "Should show help without text",
			args:          args{command: "/cleaning", text: ""},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "*Available Commands:*", "`/cleaning done TASK`"),
		},
		{
			name:          "Should show help",
			args:          args{command: "/cleaning", text: "help"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "*Available Commands:*"),
		},
		{
			name:          "Should reject unknown commands",
			args:          args{command: "/cleaning", text: "dance"},
			checkResponse: expectText(slack.ResponseTypeEphemeral, "❌ unknown command: dance. Use `/cleaning help`"),
		},
	})
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, h, ctrl := test.GetHandlerTest(t, time.UTC)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateSlackRequest(t, "/cleaning", "now", "C123456789", "U987654321", "another-secret")

	h.Slack.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSlackHandler_HandleSlashCommand_RecordsMetrics(t *testing.T) {
	m, h, ctrl := test.GetHandlerTest(t, time.UTC)
	defer ctrl.Finish()

	m.DutyServiceMock.EXPECT().Tip(gomock.Any()).Return("tip").Times(1)
	m.DutyServiceMock.EXPECT().RemoveUnit(gomock.Any(), "101").Return(domain.ErrLastUnit).Times(1)

	for _, text := range []string{"tip", "units remove 101", "dance"} {
		req := test.CreateSlackRequest(t, "/cleaning", text, "C123456789", "U987654321", test.SigningSecret)
		h.Slack.HandleSlashCommand(test.CreateTestRecorder(), req)
	}

	name := "cleaning_bot_slack_commands_total"
	assert.Equal(t, 1.0, test.CounterValue(t, h.Registry, name, map[string]string{"command": "tip", "result": "ok"}))
	assert.Equal(t, 1.0, test.CounterValue(t, h.Registry, name, map[string]string{"command": "units", "result": "error"}))
	assert.Equal(t, 1.0, test.CounterValue(t, h.Registry, name, map[string]string{"command": "unknown", "result": "error"}))
}
