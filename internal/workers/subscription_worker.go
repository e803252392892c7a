package workers

import (
	"context"
	"time"

	"linkbio_backend/internal/logger"

	"gorm.io/gorm"
)

const expiryCheckInterval = 6 * time.Hour

// SubscriptionWorker marks active subscriptions whose billing period
// has ended as expired. Entitlement reads treat any non-active status
// as free tier, so the sweep only keeps the stored status honest.
type SubscriptionWorker struct {
	db *gorm.DB
}

func NewSubscriptionWorker(db *gorm.DB) *SubscriptionWorker {
	return &SubscriptionWorker{db: db}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.checkExpiredSubscriptions(ctx)
}

func (w *SubscriptionWorker) checkExpiredSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(expiryCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE subscriptions
				SET status = 'expired', updated_at = NOW()
				WHERE status = 'active'
				AND current_period_end < NOW()
			`)
			if result.Error != nil {
				logger.Error("Error checking expired subscriptions", "error", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("Marked subscriptions as expired", "count", result.RowsAffected)
			}
		}
	}
}
