package repository

import (
	"context"
	"time"

	"WooPulse/internal/domain/models"
)

// OrderQuery filters a page fetch against the commerce platform.
type OrderQuery struct {
	After  time.Time
	Before time.Time
	Status string
}

// OrderSource supplies paginated order records from a commerce platform.
// An empty page signals end-of-data.
type OrderSource interface {
	FetchPage(ctx context.Context, q OrderQuery, page int) ([]models.Order, error)
}
