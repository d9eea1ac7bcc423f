package handlers

import (
	"net/http"

	"qr-menu-api/analytics"
	"qr-menu-api/auth"
	"qr-menu-api/config"
	"qr-menu-api/mail"
	"qr-menu-api/middleware"
	"qr-menu-api/models"
	"qr-menu-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler carries every dependency the HTTP layer needs. Constructed once in
// main; tests build one against an in-memory store and a fake mailer.
type Handler struct {
	db        *gorm.DB
	auth      *auth.Service
	mailer    mail.Sender
	recorder  *analytics.Recorder
	lifecycle *services.LifecycleService
	cfg       *config.Config
	logger    *zap.SugaredLogger
}

func New(
	db *gorm.DB,
	authSvc *auth.Service,
	mailer mail.Sender,
	recorder *analytics.Recorder,
	lifecycle *services.LifecycleService,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		db:        db,
		auth:      authSvc,
		mailer:    mailer,
		recorder:  recorder,
		lifecycle: lifecycle,
		cfg:       cfg,
		logger:    logger,
	}
}

// currentRestaurant resolves the caller's restaurant from the authenticated
// user id. Every mutating content operation goes through here instead of
// trusting a client-supplied restaurant id.
func (h *Handler) currentRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return nil, false
	}
	return &restaurant, true
}

// sendMail delivers an email best-effort: failures are logged and swallowed
func (h *Handler) sendMail(c *gin.Context, msg mail.Message) {
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		h.logger.Errorw("failed to send email", "to", msg.To, "subject", msg.Subject, "error", err)
	}
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"whatsapp":      user.Whatsapp,
		"status":        user.Status,
		"restaurant_id": user.RestaurantID,
	}
}
