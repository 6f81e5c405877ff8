package contract

import "time"

// MetricsCollector records bot activity. Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordNotification records a delivery attempt; result is "sent", "failed" or "skipped"
	RecordNotification(kind, result string)
	RecordCommand(command, result string)
	RecordHTTPRequest(route string, status int, duration time.Duration)
	// RecordMirror records a remote mirror operation; result is "ok" or "error"
	RecordMirror(op, result string)
	// SetCompletedTasks exposes the checklist progress of the current week
	SetCompletedTasks(completed, total int)
}
