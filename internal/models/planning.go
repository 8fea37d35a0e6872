package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanningEntry blocks a whole day, salon-wide (holiday) or for one barber.
type PlanningEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Date        time.Time  `gorm:"type:date;not null;index" json:"date"`
	Description string     `gorm:"size:255" json:"description"`
	Kind        string     `gorm:"size:20;not null" json:"kind"`
	BarberID    *uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`
	Barber      *Barber    `gorm:"constraint:OnDelete:CASCADE;" json:"barber,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (PlanningEntry) TableName() string {
	return "planning"
}

func (p *PlanningEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
