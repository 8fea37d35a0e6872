package notification

import (
	"context"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

// Confirmation is the payload of a booking confirmation.
type Confirmation struct {
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	ServiceName   string                `json:"serviceName"`
	BookingDate   string                `json:"bookingDate"`
	BookingTime   string                `json:"bookingTime"`
	BarberName    string                `json:"barberName"`
	TotalPrice    float64               `json:"totalPrice"`
	Options       []models.BookedOption `json:"options"`
}

type Sender interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

func FromBooking(b *models.Booking, barberName string) Confirmation {
	return Confirmation{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		ServiceName:   b.ServiceName,
		BookingDate:   timezone.FormatDay(b.BookingDate),
		BookingTime:   b.BookingTime,
		BarberName:    barberName,
		TotalPrice:    b.TotalPrice,
		Options:       b.Options,
	}
}
