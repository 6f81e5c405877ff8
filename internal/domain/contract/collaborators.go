package contract

import (
	"context"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

// Notifier delivers duty notifications to the building
type Notifier interface {
	NotifyTurnStart(ctx context.Context, duty *entity.Duty) error
	NotifyCompletion(ctx context.Context, duty *entity.Duty) error
	NotifyReminder(ctx context.Context, duty *entity.Duty) error
}

// RecordMirror mirrors weekly records to a shared remote store so several
// instances see the same completion state
type RecordMirror interface {
	Publish(ctx context.Context, record *entity.WeeklyRecord) error
	Fetch(ctx context.Context, weekKey string) (*entity.WeeklyRecord, error)
	// Subscribe blocks until ctx is done, calling fn for every record published elsewhere
	Subscribe(ctx context.Context, fn func(record *entity.WeeklyRecord)) error
}

// TipProvider returns a short cleaning tip. It never fails; providers fall back to a fixed text.
type TipProvider interface {
	Tip(ctx context.Context) string
}
