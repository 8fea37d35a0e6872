package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/validators"
)

// Draft accumulates a customer's selections for one booking session.
// Totals are derived on read and never stored.
type Draft struct {
	ID uuid.UUID `json:"id"`

	Service *models.Service `json:"service,omitempty"`
	Options []models.Option `json:"options"`
	Barber  *models.Barber  `json:"barber,omitempty"`
	Date    *time.Time      `json:"date,omitempty"`
	Time    string          `json:"time,omitempty"`

	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewDraft() *Draft {
	return &Draft{
		ID:      uuid.New(),
		Options: []models.Option{},
	}
}

func (d *Draft) TotalPrice() float64 {
	total := 0.0
	if d.Service != nil {
		total += d.Service.Price
	}
	for _, o := range d.Options {
		total += o.Price
	}
	return total
}

// TotalDuration is display-only, in minutes.
func (d *Draft) TotalDuration() int {
	total := 0
	if d.Service != nil {
		total += d.Service.DurationMin
	}
	for _, o := range d.Options {
		total += o.DurationMin
	}
	return total
}

func (d *Draft) SetService(s models.Service) {
	d.Service = &s
}

// ToggleOption adds the option, or removes it when already selected.
func (d *Draft) ToggleOption(o models.Option) {
	for i, cur := range d.Options {
		if cur.ID == o.ID {
			d.Options = append(d.Options[:i], d.Options[i+1:]...)
			return
		}
	}
	d.Options = append(d.Options, o)
}

func (d *Draft) SetOptions(opts []models.Option) {
	d.Options = append([]models.Option{}, opts...)
}

// SetBarber changes the barber; slot sets are per barber so the time is cleared.
func (d *Draft) SetBarber(b models.Barber) {
	if d.Barber != nil && d.Barber.ID == b.ID {
		return
	}
	d.Barber = &b
	d.Time = ""
}

// SetDate changes the day; slot sets are per day so the time is cleared.
func (d *Draft) SetDate(day time.Time) {
	if d.Date != nil && d.Date.Equal(day) {
		return
	}
	d.Date = &day
	d.Time = ""
}

func (d *Draft) ClearDate() {
	d.Date = nil
	d.Time = ""
}

func (d *Draft) SetTime(label string) {
	d.Time = label
}

func (d *Draft) SetContact(phone, email, name string) {
	d.Phone = strings.TrimSpace(phone)
	d.Email = strings.TrimSpace(email)
	d.Name = strings.TrimSpace(name)
}

func (d *Draft) BarberID() *uuid.UUID {
	if d.Barber == nil {
		return nil
	}
	id := d.Barber.ID
	return &id
}

// Validate checks the submission preconditions.
func (d *Draft) Validate() error {
	switch {
	case d.Service == nil:
		return &ValidationError{Field: "service", Reason: ReasonMissing}
	case d.Barber == nil:
		return &ValidationError{Field: "barber", Reason: ReasonMissing}
	case d.Date == nil:
		return &ValidationError{Field: "date", Reason: ReasonMissing}
	case d.Time == "":
		return &ValidationError{Field: "time", Reason: ReasonMissing}
	case strings.TrimSpace(d.Phone) == "":
		return &ValidationError{Field: "phone", Reason: ReasonMissing}
	}

	if !IsFixedSlot(d.Time) {
		return &ValidationError{Field: "time", Reason: ReasonInvalid}
	}
	if !validators.IsFrenchPhone(d.Phone) {
		return &ValidationError{Field: "phone", Reason: ReasonInvalid}
	}
	if d.Email != "" && !validators.IsEmail(d.Email) {
		return &ValidationError{Field: "email", Reason: ReasonInvalid}
	}
	return nil
}

// BookedOptions snapshots the selected options as stored on a booking.
func (d *Draft) BookedOptions() []models.BookedOption {
	out := make([]models.BookedOption, 0, len(d.Options))
	for _, o := range d.Options {
		out = append(out, models.BookedOption{Name: o.Name, Price: o.Price})
	}
	return out
}
