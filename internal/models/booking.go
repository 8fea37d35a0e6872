package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookedOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:255" json:"customer_email"`
	CustomerPhone string `gorm:"size:30;not null" json:"customer_phone"`

	BarberID uuid.UUID `gorm:"type:uuid;not null;index" json:"barber_id"`
	Barber   *Barber   `gorm:"constraint:OnDelete:RESTRICT;" json:"barber,omitempty"`

	ServiceName  string         `gorm:"size:100;not null" json:"service_name"`
	ServicePrice float64        `gorm:"not null" json:"service_price"`
	Options      []BookedOption `gorm:"type:jsonb;serializer:json" json:"options"`
	TotalPrice   float64        `gorm:"not null" json:"total_price"`

	BookingDate time.Time `gorm:"type:date;not null;index" json:"booking_date"`
	BookingTime string    `gorm:"size:5;not null" json:"booking_time"`
	Status      string    `gorm:"size:20;not null;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	if b.Options == nil {
		b.Options = []BookedOption{}
	}
	return nil
}
