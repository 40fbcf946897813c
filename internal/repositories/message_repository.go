package repositories

import (
	"context"
	"time"

	"github.com/anonto42/nano-midea/relations/internal/models"
)

// MessageRepository defines the interface for direct message operations
type MessageRepository interface {
	CreateMessage(ctx context.Context, from, to, body string) (*models.Message, error)
	FindSentBy(ctx context.Context, from string) ([]models.Message, error)
	FindReceivedBy(ctx context.Context, to string) ([]models.Message, error)
	FindByID(ctx context.Context, id string) (*models.Message, error)
	FindByDate(ctx context.Context, from, date string) ([]models.Message, error)
	DeleteByID(ctx context.Context, id string) (models.DeleteResult, error)
	DeleteAllSentBy(ctx context.Context, from string) (models.DeleteResult, error)
}

const messageDateLayout = "2006-01-02"

// dayRange turns a YYYY-MM-DD date into the half-open UTC interval it covers.
func dayRange(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(messageDateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return start, start.AddDate(0, 0, 1), nil
}

// now is the store-assigned send time. Mongo keeps millisecond precision, so
// both stores truncate to keep the returned record equal to the stored one.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
