package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	"github.com/radoraza-hash/hair-style-it/internal/config"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
	"github.com/radoraza-hash/hair-style-it/internal/middleware"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, auditDispatcher *audit.Dispatcher, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		audit:  auditDispatcher,
		logger: logger.Named("auth"),
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates an administrator. Only the first one is open to anyone.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_count_users", "Erreur interne.")
		return
	}
	if count > 0 && !h.config.AllowAdminSignup {
		httperr.Forbidden(c, "signup_closed", "La création de compte administrateur est fermée.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		httperr.Internal(c, "failed_to_check_email", "Erreur interne.")
		return
	}
	if existing > 0 {
		httperr.Conflict(c, "email_already_exists", "Un compte existe déjà avec cet email.")
		return
	}

	if !validators.EmailDomainResolves(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'email ne semble pas valide.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erreur interne.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         middleware.RoleAdmin,
	}

	if err := h.db.Create(&user).Error; err != nil {
		h.logger.Error("create admin", zap.Error(err))
		httperr.Internal(c, "failed_to_create_user", "Erreur lors de la création du compte.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erreur interne.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "admin_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou mot de passe incorrect.")
			return
		}
		httperr.Internal(c, "internal_error", "Erreur interne.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou mot de passe incorrect.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erreur interne.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": middleware.RoleAdmin,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
