package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
)

var fieldLabels = map[string]string{
	"service": "la prestation",
	"options": "les options",
	"barber":  "le coiffeur",
	"date":    "la date",
	"time":    "l'horaire",
	"phone":   "le téléphone",
	"email":   "l'email",
	"name":    "le nom",

	"kind":      "le type d'indisponibilité",
	"barber_id": "le coiffeur",
}

func validationMessage(ve *domain.ValidationError) string {
	label, ok := fieldLabels[ve.Field]
	if !ok {
		label = ve.Field
	}

	switch ve.Reason {
	case domain.ReasonMissing:
		return "Merci de renseigner " + label + "."
	case domain.ReasonNotSelectable:
		return "Cette date n'est pas disponible."
	case domain.ReasonUnavailable:
		return "Sélection indisponible : " + label + "."
	default:
		return "Format invalide pour " + label + "."
	}
}

// writeError maps booking flow errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	var (
		ve *domain.ValidationError
		pe *domain.PersistenceError
		qe *domain.AvailabilityQueryError
		be httperr.BusinessError
	)

	switch {
	case errors.As(err, &ve):
		httperr.WriteField(c, http.StatusBadRequest, ve.Field, ve.Field+"_"+ve.Reason, validationMessage(ve))

	case errors.As(err, &pe) && pe.Reason == domain.ReasonSlotTaken:
		httperr.Conflict(c, domain.ReasonSlotTaken, "Ce créneau vient d'être réservé, merci d'en choisir un autre.")

	case errors.As(err, &pe):
		httperr.Internal(c, "booking_"+pe.Reason, "Erreur lors de l'enregistrement de la réservation.")

	case errors.As(err, &qe):
		httperr.Unavailable(c, "availability_unavailable", "Disponibilités momentanément indisponibles.")

	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "not_found", "Ressource introuvable.")

	case errors.As(err, &be):
		httperr.BadRequest(c, be.Code, be.Message)

	default:
		httperr.Internal(c, "internal_error", "Erreur interne.")
	}
}
