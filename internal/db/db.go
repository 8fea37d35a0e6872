package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/radoraza-hash/hair-style-it/internal/config"
	"github.com/radoraza-hash/hair-style-it/internal/models"
)

const slowQueryThreshold = 200 * time.Millisecond

// newGormLogger sends gorm's output through the application logger.
func newGormLogger(logger *zap.Logger, production bool) gormlogger.Interface {
	level := gormlogger.Warn
	if production {
		level = gormlogger.Error
	}

	return gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func NewDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         newGormLogger(logger, cfg.IsProduction()),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedCatalog(db); err != nil {
		return nil, err
	}

	logger.Info("database ready")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Option{},
		&models.Barber{},
		&models.PlanningEntry{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// One confirmed booking per barber, day and slot.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_confirmed_slot
        ON bookings (barber_id, booking_date, booking_time)
        WHERE status = 'confirmed'
    `).Error; err != nil {
		return fmt.Errorf("create slot index: %w", err)
	}

	for _, stmt := range []string{
		`ALTER TABLE planning DROP CONSTRAINT IF EXISTS chk_planning_barber`,
		`ALTER TABLE planning ADD CONSTRAINT chk_planning_barber CHECK (
            (kind = 'holiday' AND barber_id IS NULL) OR
            (kind = 'barber_absence' AND barber_id IS NOT NULL)
        )`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create planning check: %w", err)
		}
	}

	return nil
}
