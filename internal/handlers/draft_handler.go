package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/dto"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
	"github.com/radoraza-hash/hair-style-it/internal/httpresp"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
	ucBooking "github.com/radoraza-hash/hair-style-it/internal/usecase/booking"
)

type DraftHandler struct {
	drafts *ucBooking.Drafts
}

func NewDraftHandler(drafts *ucBooking.Drafts) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// UpdateDraftRequest applies only the fields present in the body.
type UpdateDraftRequest struct {
	ServiceID      *uuid.UUID   `json:"service_id"`
	OptionIDs      *[]uuid.UUID `json:"option_ids"`
	ToggleOptionID *uuid.UUID   `json:"toggle_option_id"`
	BarberID       *uuid.UUID   `json:"barber_id"`
	Date           *string      `json:"date"`
	Time           *string      `json:"time"`
	Phone          *string      `json:"phone"`
	Email          *string      `json:"email"`
	Name           *string      `json:"name"`
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_draft_id", "Réservation en cours invalide.")
		return uuid.Nil, false
	}
	return id, true
}

func (h *DraftHandler) Create(c *gin.Context) {
	d, err := h.drafts.Create(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, dto.Draft(d))
}

func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	d, err := h.drafts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.Draft(d))
}

func (h *DraftHandler) Update(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	d, err := h.drafts.Update(c.Request.Context(), id, ucBooking.DraftChanges{
		ServiceID:      req.ServiceID,
		OptionIDs:      req.OptionIDs,
		ToggleOptionID: req.ToggleOptionID,
		BarberID:       req.BarberID,
		Date:           req.Date,
		Time:           req.Time,
		Phone:          req.Phone,
		Email:          req.Email,
		Name:           req.Name,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.Draft(d))
}

// Slots queries the open slots for the draft's current barber and day.
func (h *DraftHandler) Slots(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	out, err := h.drafts.Slots(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.SlotsDTO{
		Slots:    out.Slots.Labels,
		Degraded: out.Slots.Degraded,
		Stale:    out.Stale,
	}
	if out.Draft.Date != nil {
		resp.Date = timezone.FormatDay(*out.Draft.Date)
	}
	if out.Draft.Barber != nil {
		resp.BarberID = out.Draft.Barber.ID
	}
	if resp.Slots == nil {
		resp.Slots = []string{}
	}

	httpresp.OK(c, resp)
}

func (h *DraftHandler) Submit(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	b, err := h.drafts.Submit(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Booking(*b))
}
