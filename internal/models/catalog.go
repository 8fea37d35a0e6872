package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a catalog entry; exactly one is picked per booking.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	DurationMin int       `gorm:"not null" json:"duration"`
	Position    int       `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Service) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// Option is an add-on to a service, zero or more per booking.
type Option struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	DurationMin int       `gorm:"not null" json:"duration"`
	Position    int       `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (o *Option) BeforeCreate(*gorm.DB) error {
	ensureID(&o.ID)
	return nil
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
