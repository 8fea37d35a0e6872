package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/availability"
	"github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

type DraftDTO struct {
	ID            uuid.UUID       `json:"id"`
	Service       *models.Service `json:"service"`
	Options       []models.Option `json:"options"`
	Barber        *models.Barber  `json:"barber"`
	Date          string          `json:"date,omitempty"`
	Time          string          `json:"time,omitempty"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	TotalPrice    float64         `json:"total_price"`
	TotalDuration int             `json:"total_duration"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func Draft(d *booking.Draft) DraftDTO {
	out := DraftDTO{
		ID:            d.ID,
		Service:       d.Service,
		Options:       d.Options,
		Barber:        d.Barber,
		Time:          d.Time,
		Phone:         d.Phone,
		Email:         d.Email,
		Name:          d.Name,
		TotalPrice:    d.TotalPrice(),
		TotalDuration: d.TotalDuration(),
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Date != nil {
		out.Date = timezone.FormatDay(*d.Date)
	}
	if out.Options == nil {
		out.Options = []models.Option{}
	}
	return out
}

type DayDTO struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

func Days(list []availability.DayAvailability) []DayDTO {
	out := make([]DayDTO, 0, len(list))
	for _, d := range list {
		out = append(out, DayDTO{Date: timezone.FormatDay(d.Date), Selectable: d.Selectable})
	}
	return out
}

type SlotsDTO struct {
	Date     string    `json:"date"`
	BarberID uuid.UUID `json:"barber_id"`
	Slots    []string  `json:"slots"`
	Degraded bool      `json:"degraded"`
	Stale    bool      `json:"stale,omitempty"`
}
