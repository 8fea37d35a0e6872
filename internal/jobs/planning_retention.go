package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

// Every night at 03:00, salon time.
const planningRetentionSpec = "0 3 * * *"

// RetentionCutoff is the first calendar day kept when pruning.
func RetentionCutoff(now time.Time, days int) time.Time {
	return timezone.Day(now).AddDate(0, 0, -days)
}

// PrunePlanning deletes planning entries dated before cutoff.
func PrunePlanning(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("date < ?", cutoff).
		Delete(&models.PlanningEntry{})
	return res.RowsAffected, res.Error
}

// StartPlanningRetention schedules the nightly prune; the caller stops the returned cron.
func StartPlanningRetention(db *gorm.DB, tz string, days int, logger *zap.Logger) (*cron.Cron, error) {
	logger = logger.Named("planning_retention")
	c := cron.New(cron.WithLocation(timezone.Location(tz)))

	_, err := c.AddFunc(planningRetentionSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cutoff := RetentionCutoff(timezone.NowIn(tz), days)
		n, err := PrunePlanning(ctx, db, cutoff)
		if err != nil {
			logger.Error("prune failed", zap.Error(err))
			return
		}
		logger.Info("planning pruned",
			zap.Int64("deleted", n),
			zap.String("before", timezone.FormatDay(cutoff)),
		)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Info("planning retention scheduled", zap.String("spec", planningRetentionSpec), zap.Int("days", days))
	return c, nil
}
