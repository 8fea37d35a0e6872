package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/availability"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/dto"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
	"github.com/radoraza-hash/hair-style-it/internal/httpresp"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
	ucBooking "github.com/radoraza-hash/hair-style-it/internal/usecase/booking"
)

const maxCalendarDays = 120

// AvailabilityReader is the resolver surface exposed to customers.
type AvailabilityReader interface {
	Today() time.Time
	Calendar(ctx context.Context, from time.Time, days int, barberID *uuid.UUID) ([]availability.DayAvailability, error)
	OpenSlots(ctx context.Context, day time.Time, barberID uuid.UUID) availability.Slots
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo       domain.Repository
	dates      AvailabilityReader
	drafts     *ucBooking.Drafts
	submit     *ucBooking.SubmitBooking
	windowDays int
	logger     *zap.Logger
}

func NewPublicHandler(
	repo domain.Repository,
	dates AvailabilityReader,
	drafts *ucBooking.Drafts,
	submit *ucBooking.SubmitBooking,
	windowDays int,
	logger *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		repo:       repo,
		dates:      dates,
		drafts:     drafts,
		submit:     submit,
		windowDays: windowDays,
		logger:     logger.Named("public"),
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// BookingRequest carries a complete selection; totals are never read from it.
type BookingRequest struct {
	ServiceID *uuid.UUID  `json:"service_id"`
	OptionIDs []uuid.UUID `json:"option_ids"`
	BarberID  *uuid.UUID  `json:"barber_id"`
	Date      *string     `json:"date"`
	Time      *string     `json:"time"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
}

func (r BookingRequest) changes() ucBooking.DraftChanges {
	ch := ucBooking.DraftChanges{
		ServiceID: r.ServiceID,
		BarberID:  r.BarberID,
		Date:      r.Date,
		Time:      r.Time,
		Phone:     &r.Phone,
		Email:     &r.Email,
		Name:      &r.Name,
	}
	if len(r.OptionIDs) > 0 {
		ids := r.OptionIDs
		ch.OptionIDs = &ids
	}
	return ch
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		h.logger.Error("list services", zap.Error(err))
		httperr.Internal(c, "failed_to_list_services", "Erreur lors du chargement des prestations.")
		return
	}
	httpresp.List(c, services)
}

func (h *PublicHandler) ListOptions(c *gin.Context) {
	options, err := h.repo.ListOptions(c.Request.Context())
	if err != nil {
		h.logger.Error("list options", zap.Error(err))
		httperr.Internal(c, "failed_to_list_options", "Erreur lors du chargement des options.")
		return
	}
	httpresp.List(c, options)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context(), true)
	if err != nil {
		h.logger.Error("list barbers", zap.Error(err))
		httperr.Internal(c, "failed_to_list_barbers", "Erreur lors du chargement des coiffeurs.")
		return
	}
	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func optionalBarberID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("barber_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// AvailableDates answers the selectable days of the booking calendar.
func (h *PublicHandler) AvailableDates(c *gin.Context) {
	barberID, ok := optionalBarberID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "Coiffeur invalide.")
		return
	}

	from := h.dates.Today()
	if raw := c.Query("from"); raw != "" {
		day, err := timezone.ParseDay(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date invalide (format attendu AAAA-MM-JJ).")
			return
		}
		from = day
	}

	days := h.windowDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxCalendarDays {
			httperr.BadRequest(c, "invalid_days", "Nombre de jours invalide.")
			return
		}
		days = n
	}

	calendar, err := h.dates.Calendar(c.Request.Context(), from, days, barberID)
	if err != nil {
		h.logger.Error("calendar query failed", zap.Error(err))
		writeError(c, err)
		return
	}

	httpresp.List(c, dto.Days(calendar))
}

// AvailableSlots answers the open slots of one barber on one day.
func (h *PublicHandler) AvailableSlots(c *gin.Context) {
	barberID, err := uuid.Parse(c.Query("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Coiffeur invalide.")
		return
	}

	day, err := timezone.ParseDay(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide (format attendu AAAA-MM-JJ).")
		return
	}

	slots := h.dates.OpenSlots(c.Request.Context(), day, barberID)

	httpresp.OK(c, dto.SlotsDTO{
		Date:     timezone.FormatDay(day),
		BarberID: barberID,
		Slots:    slots.Labels,
		Degraded: slots.Degraded,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

// CreateBooking submits a full selection without a stored draft.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ctx := c.Request.Context()

	draft, err := h.drafts.Assemble(ctx, req.changes())
	if err != nil {
		writeError(c, err)
		return
	}

	booking, err := h.submit.Execute(ctx, draft)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Booking(*booking))
}
