package jobs

import (
	"context"

	"vehicle-rental-backend/internal/logger"
)

// ExpireQuotes marks sent quotes whose validity window has passed as
// expired. The sweep is a single conditional update, so overlapping runs
// and concurrent accepts stay safe.
func (jr *JobRunner) ExpireQuotes() {
	jr.runWithRecovery("ExpireQuotes", func() {
		ctx := context.Background()

		expired, err := jr.services.Quote.ExpireStale(ctx)
		if err != nil {
			logger.Error("Failed to expire stale quotes", "error", err)
			return
		}

		logger.Info("Expired stale quotes", "count", expired)
	})
}
