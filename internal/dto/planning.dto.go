package dto

import (
	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

type PlanningDTO struct {
	ID          uuid.UUID  `json:"id"`
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Kind        string     `json:"kind"`
	BarberID    *uuid.UUID `json:"barber_id"`
	BarberName  string     `json:"barber_name,omitempty"`
}

func Planning(p models.PlanningEntry) PlanningDTO {
	out := PlanningDTO{
		ID:          p.ID,
		Date:        timezone.FormatDay(p.Date),
		Description: p.Description,
		Kind:        p.Kind,
		BarberID:    p.BarberID,
	}
	if p.Barber != nil {
		out.BarberName = p.Barber.Name
	}
	return out
}

func PlanningList(list []models.PlanningEntry) []PlanningDTO {
	out := make([]PlanningDTO, 0, len(list))
	for _, p := range list {
		out = append(out, Planning(p))
	}
	return out
}
