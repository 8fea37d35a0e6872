package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/dto"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
	"github.com/radoraza-hash/hair-style-it/internal/httpresp"
	"github.com/radoraza-hash/hair-style-it/internal/middleware"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

type PlanningHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPlanningHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *PlanningHandler {
	return &PlanningHandler{db: db, audit: auditDispatcher}
}

type CreatePlanningRequest struct {
	Date        string     `json:"date" binding:"required"`
	Description string     `json:"description"`
	Kind        string     `json:"kind" binding:"required"`
	BarberID    *uuid.UUID `json:"barber_id"`
}

// List returns entries by ascending date, optionally from a given day.
func (h *PlanningHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Preload("Barber")

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDay(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date invalide (format attendu AAAA-MM-JJ).")
			return
		}
		q = q.Where("date >= ?", from)
	}

	var entries []models.PlanningEntry
	if err := q.Order("date ASC").Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_planning", "Erreur lors du chargement du planning.")
		return
	}

	httpresp.List(c, dto.PlanningList(entries))
}

func (h *PlanningHandler) Create(c *gin.Context) {
	var req CreatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	day, err := timezone.ParseDay(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide (format attendu AAAA-MM-JJ).")
		return
	}

	kind := domain.PlanningKind(strings.TrimSpace(req.Kind))
	if err := domain.ValidatePlanningEntry(kind, req.BarberID); err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()

	if req.BarberID != nil {
		var n int64
		if err := h.db.WithContext(ctx).Model(&models.Barber{}).Where("id = ?", *req.BarberID).Count(&n).Error; err != nil {
			httperr.Internal(c, "failed_to_check_barber", "Erreur interne.")
			return
		}
		if n == 0 {
			httperr.NotFound(c, "barber_not_found", "Coiffeur introuvable.")
			return
		}
	}

	entry := models.PlanningEntry{
		Date:        day,
		Description: strings.TrimSpace(req.Description),
		Kind:        string(kind),
		BarberID:    req.BarberID,
	}

	if err := h.db.WithContext(ctx).Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_planning", "Erreur lors de l'enregistrement.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   "planning_created",
		Entity:   "planning",
		EntityID: &entry.ID,
		Metadata: gin.H{"date": req.Date, "kind": entry.Kind},
	})

	httpresp.Created(c, dto.Planning(entry))
}

func (h *PlanningHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_planning_id", "Entrée de planning invalide.")
		return
	}

	ctx := c.Request.Context()

	var entry models.PlanningEntry
	if err := h.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "planning_not_found", "Entrée de planning introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_planning", "Erreur interne.")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_planning", "Erreur lors de la suppression.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   "planning_deleted",
		Entity:   "planning",
		EntityID: &entry.ID,
	})

	c.Status(http.StatusNoContent)
}
