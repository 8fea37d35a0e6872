package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/radoraza-hash/hair-style-it/internal/models"
)

var defaultServices = []models.Service{
	{Name: "Coupe Enfant", Price: 10, DurationMin: 30, Position: 1},
	{Name: "Coupe simple homme", Price: 15, DurationMin: 45, Position: 2},
	{Name: "Coupe + barbe", Price: 20, DurationMin: 60, Position: 3},
	{Name: "Barbe uniquement", Price: 15, DurationMin: 30, Position: 4},
}

var defaultOptions = []models.Option{
	{Name: "Défrisage", Price: 15, DurationMin: 45, Position: 1},
	{Name: "Lissage brésilien", Price: 30, DurationMin: 90, Position: 2},
	{Name: "Brushing", Price: 10, DurationMin: 20, Position: 3},
}

// SeedCatalog inserts the salon catalog; existing names are left untouched.
func SeedCatalog(db *gorm.DB) error {
	services := make([]models.Service, len(defaultServices))
	copy(services, defaultServices)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&services).Error; err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	options := make([]models.Option, len(defaultOptions))
	copy(options, defaultOptions)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&options).Error; err != nil {
		return fmt.Errorf("seed options: %w", err)
	}

	return nil
}
