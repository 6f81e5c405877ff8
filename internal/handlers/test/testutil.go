package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/handlers"
	"github.com/diegoclair/cleaning-rotation-bot/internal/metrics"
	"github.com/diegoclair/cleaning-rotation-bot/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	DutyServiceMock *mocks.MockDutyService
}

type Handlers struct {
	Slack    *handlers.SlackHandler
	API      *handlers.APIHandler
	Router   http.Handler
	Registry *prometheus.Registry
}

// GetHandlerTest builds every handler around a mocked duty service. Metrics go
// to a private registry so tests can inspect them.
func GetHandlerTest(t *testing.T, loc *time.Location) (m ServiceMocks, h Handlers, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		DutyServiceMock: mocks.NewMockDutyService(ctrl),
	}

	h.Registry = prometheus.NewRegistry()
	collector := metrics.NewPrometheus(h.Registry, "")

	h.Slack = handlers.New(m.DutyServiceMock, SigningSecret, collector, zap.NewNop())
	h.API = handlers.NewAPIHandler(m.DutyServiceMock, loc, zap.NewNop())
	h.Router = handlers.NewRouter(handlers.RouterConfig{
		Slack:          h.Slack,
		API:            h.API,
		Metrics:        collector,
		Gatherer:       h.Registry,
		AllowedOrigins: []string{"https://board.example.com"},
	})

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"building"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// CounterValue sums the samples of a counter family whose labels include want
func CounterValue(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			matches := true
			for k, v := range want {
				if labels[k] != v {
					matches = false
					break
				}
			}
			if matches {
				total += metric.GetCounter().GetValue()
			}
		}
	}

	return total
}
