package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	"github.com/radoraza-hash/hair-style-it/internal/dto"
	"github.com/radoraza-hash/hair-style-it/internal/httperr"
	"github.com/radoraza-hash/hair-style-it/internal/httpresp"
	"github.com/radoraza-hash/hair-style-it/internal/middleware"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/realtime"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

const (
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

// BookingFeed publishes booking changes and lets admin panels follow them.
type BookingFeed interface {
	Publish(ctx context.Context, ev realtime.Event) error
	Subscribe(ctx context.Context) *redis.PubSub
}

type BookingAdminHandler struct {
	db       *gorm.DB
	feed     BookingFeed
	audit    *audit.Dispatcher
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewBookingAdminHandler(
	db *gorm.DB,
	feed BookingFeed,
	auditDispatcher *audit.Dispatcher,
	allowedOrigins []string,
	logger *zap.Logger,
) *BookingAdminHandler {
	return &BookingAdminHandler{
		db:    db,
		feed:  feed,
		audit: auditDispatcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger.Named("bookings_admin"),
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// List returns bookings latest first, optionally filtered by day and barber.
func (h *BookingAdminHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Preload("Barber")

	if raw := c.Query("date"); raw != "" {
		day, err := timezone.ParseDay(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date invalide (format attendu AAAA-MM-JJ).")
			return
		}
		q = q.Where("booking_date = ?", day)
	}

	if raw := c.Query("barber_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Coiffeur invalide.")
			return
		}
		q = q.Where("barber_id = ?", id)
	}

	var bookings []models.Booking
	if err := q.
		Order("booking_date DESC").
		Order("booking_time DESC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "Erreur lors du chargement des réservations.")
		return
	}

	httpresp.List(c, dto.Bookings(bookings))
}

func (h *BookingAdminHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Réservation invalide.")
		return
	}

	ctx := c.Request.Context()

	var b models.Booking
	if err := h.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Réservation introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Erreur interne.")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&b).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Erreur lors de la suppression.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: gin.H{
			"date": timezone.FormatDay(b.BookingDate),
			"time": b.BookingTime,
		},
	})

	if err := h.feed.Publish(ctx, realtime.Event{
		Type: realtime.EventBookingDeleted,
		ID:   b.ID.String(),
	}); err != nil {
		h.logger.Warn("publish booking deletion", zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}

// Live relays the bookings channel to an admin panel over a WebSocket.
func (h *BookingAdminHandler) Live(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub := h.feed.Subscribe(ctx)
	defer sub.Close()

	// Reads only serve to notice the client going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	messages := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-messages:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.logger.Debug("live feed write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
