package metrics

import (
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
)

// NopMetrics discards every metric. Used in tests and when metrics are disabled.
type NopMetrics struct{}

var _ contract.MetricsCollector = (*NopMetrics)(nil)

func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (n *NopMetrics) RecordNotification(_, _ string) {}

func (n *NopMetrics) RecordCommand(_, _ string) {}

func (n *NopMetrics) RecordHTTPRequest(_ string, _ int, _ time.Duration) {}

func (n *NopMetrics) RecordMirror(_, _ string) {}

func (n *NopMetrics) SetCompletedTasks(_, _ int) {}
