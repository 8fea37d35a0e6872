package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
	"github.com/radoraza-hash/hair-style-it/internal/httpresp"
	"github.com/radoraza-hash/hair-style-it/internal/middleware"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/storage"
)

type AvatarUploader interface {
	Upload(ctx context.Context, barberID uuid.UUID, r io.Reader) (string, error)
}

type BarberHandler struct {
	db      *gorm.DB
	avatars AvatarUploader
	audit   *audit.Dispatcher
	logger  *zap.Logger
}

// NewBarberHandler accepts a nil uploader; avatar uploads then answer 503.
func NewBarberHandler(db *gorm.DB, avatars AvatarUploader, auditDispatcher *audit.Dispatcher, logger *zap.Logger) *BarberHandler {
	return &BarberHandler{
		db:      db,
		avatars: avatars,
		audit:   auditDispatcher,
		logger:  logger.Named("barbers"),
	}
}

// --------- Requests ---------

type BarberRequest struct {
	Name            *string  `json:"name"`
	AvatarURL       *string  `json:"avatar_url"`
	Specialties     []string `json:"specialties"`
	SpecialtiesText *string  `json:"specialties_text"`
	IsActive        *bool    `json:"is_active"`
}

type ToggleActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// ParseSpecialties splits a comma separated list, dropping blanks.
func ParseSpecialties(text string) []string {
	out := []string{}
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanSpecialties(list []string) []string {
	return ParseSpecialties(strings.Join(list, ","))
}

func (r BarberRequest) specialties() ([]string, bool) {
	switch {
	case r.SpecialtiesText != nil:
		return ParseSpecialties(*r.SpecialtiesText), true
	case r.Specialties != nil:
		return cleanSpecialties(r.Specialties), true
	}
	return nil, false
}

func barberID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Coiffeur invalide.")
		return uuid.Nil, false
	}
	return id, true
}

func (h *BarberHandler) load(c *gin.Context) (*models.Barber, bool) {
	id, ok := barberID(c)
	if !ok {
		return nil, false
	}

	var b models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Coiffeur introuvable.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barber", "Erreur lors du chargement du coiffeur.")
		return nil, false
	}
	return &b, true
}

func (h *BarberHandler) record(c *gin.Context, action string, id uuid.UUID, meta any) {
	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   action,
		Entity:   "barber",
		EntityID: &id,
		Metadata: meta,
	})
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erreur lors du chargement des coiffeurs.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		httperr.WriteField(c, http.StatusBadRequest, "name", "name_missing", "Le nom du coiffeur est obligatoire.")
		return
	}

	b := models.Barber{
		Name:     strings.TrimSpace(*req.Name),
		IsActive: true,
	}
	if req.AvatarURL != nil {
		b.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}
	if s, ok := req.specialties(); ok {
		b.Specialties = s
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&b).Error; err != nil {
		h.logger.Error("create barber", zap.Error(err))
		httperr.Internal(c, "failed_to_create_barber", "Erreur lors de la création du coiffeur.")
		return
	}

	h.record(c, "barber_created", b.ID, gin.H{"name": b.Name})
	httpresp.Created(c, b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	b, ok := h.load(c)
	if !ok {
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.WriteField(c, http.StatusBadRequest, "name", "name_missing", "Le nom du coiffeur est obligatoire.")
			return
		}
		b.Name = name
	}
	if req.AvatarURL != nil {
		b.AvatarURL = strings.TrimSpace(*req.AvatarURL)
		if b.AvatarURL == "" {
			b.AvatarURL = models.DefaultAvatarURL(b.Name)
		}
	}
	if s, ok := req.specialties(); ok {
		b.Specialties = s
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := h.db.WithContext(c.Request.Context()).Save(b).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erreur lors de la mise à jour du coiffeur.")
		return
	}

	h.record(c, "barber_updated", b.ID, nil)
	httpresp.OK(c, b)
}

// SetActive toggles whether customers can pick the barber.
func (h *BarberHandler) SetActive(c *gin.Context) {
	b, ok := h.load(c)
	if !ok {
		return
	}

	var req ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(b).
		Update("is_active", req.IsActive).Error; err != nil {

		httperr.Internal(c, "failed_to_update_barber", "Erreur lors de la mise à jour du coiffeur.")
		return
	}

	h.record(c, "barber_active_changed", b.ID, gin.H{"is_active": req.IsActive})
	httpresp.OK(c, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	b, ok := h.load(c)
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Delete(b).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		httperr.Conflict(c, "barber_has_bookings", "Ce coiffeur a des réservations, désactivez-le plutôt.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erreur lors de la suppression du coiffeur.")
		return
	}

	h.record(c, "barber_deleted", b.ID, gin.H{"name": b.Name})
	c.Status(http.StatusNoContent)
}

// UploadAvatar stores the "avatar" multipart file as the barber picture.
func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.Unavailable(c, "avatar_storage_disabled", "Le stockage des photos n'est pas configuré.")
		return
	}

	b, ok := h.load(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "avatar_missing", "Aucune image reçue.")
		return
	}
	if fh.Size > storage.MaxAvatarBytes {
		httperr.BadRequest(c, "avatar_too_large", "Image trop volumineuse.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "avatar_unreadable", "Image illisible.")
		return
	}
	defer f.Close()

	url, err := h.avatars.Upload(c.Request.Context(), b.ID, f)
	if errors.Is(err, storage.ErrUnsupportedImage) {
		httperr.BadRequest(c, "avatar_unsupported", "Format d'image non supporté (jpeg, png ou webp).")
		return
	}
	if err != nil {
		h.logger.Error("avatar upload", zap.String("barber_id", b.ID.String()), zap.Error(err))
		httperr.Internal(c, "avatar_upload_failed", "Erreur lors de l'envoi de la photo.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(b).
		Update("avatar_url", url).Error; err != nil {

		httperr.Internal(c, "failed_to_update_barber", "Erreur lors de la mise à jour du coiffeur.")
		return
	}

	h.record(c, "barber_avatar_uploaded", b.ID, gin.H{"url": url})
	httpresp.OK(c, b)
}
