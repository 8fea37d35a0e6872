package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

type BookingDTO struct {
	ID            uuid.UUID             `json:"id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone"`
	BarberID      uuid.UUID             `json:"barber_id"`
	BarberName    string                `json:"barber_name"`
	ServiceName   string                `json:"service_name"`
	ServicePrice  float64               `json:"service_price"`
	Options       []models.BookedOption `json:"options"`
	TotalPrice    float64               `json:"total_price"`
	BookingDate   string                `json:"booking_date"`
	BookingTime   string                `json:"booking_time"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
}

func Booking(b models.Booking) BookingDTO {
	out := BookingDTO{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		BarberID:      b.BarberID,
		ServiceName:   b.ServiceName,
		ServicePrice:  b.ServicePrice,
		Options:       b.Options,
		TotalPrice:    b.TotalPrice,
		BookingDate:   timezone.FormatDay(b.BookingDate),
		BookingTime:   b.BookingTime,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
	if b.Barber != nil {
		out.BarberName = b.Barber.Name
	}
	if out.Options == nil {
		out.Options = []models.BookedOption{}
	}
	return out
}

func Bookings(list []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for _, b := range list {
		out = append(out, Booking(b))
	}
	return out
}
