package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"qr-menu-api/mail"
	"qr-menu-api/models"
	"qr-menu-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Whatsapp       string `json:"whatsapp" binding:"required"`
	RestaurantName string `json:"restaurantName" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates the owner account and its restaurant together, both
// starting in pending until an admin approves the restaurant.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsStrongPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with an upper-case letter, a lower-case letter and a digit"})
		return
	}
	if !utils.IsPhone(req.Whatsapp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid WhatsApp number"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	slug := utils.Slugify(req.RestaurantName)
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant name must contain at least one letter or digit"})
		return
	}
	// A same-slug OR same-name collision gets a random 2-digit suffix. The
	// existence check and the insert are not atomic; the unique index on slug
	// catches the losing side of a race.
	var collided models.Restaurant
	if err := h.db.Where("slug = ? OR LOWER(name) = ?", slug, strings.ToLower(req.RestaurantName)).
		First(&collided).Error; err == nil {
		slug = slug + "-" + utils.RandomSuffix()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Whatsapp:     req.Whatsapp,
		Status:       models.StatusPending,
	}
	restaurant := models.Restaurant{
		Name:          req.RestaurantName,
		Slug:          slug,
		Whatsapp:      req.Whatsapp,
		Status:        models.StatusPending,
		PendingReason: "Awaiting admin approval",
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		restaurant.OwnerID = user.ID
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("restaurant_id", restaurant.ID).Error
	})
	if err != nil {
		h.logger.Errorw("registration failed", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	user.RestaurantID = &restaurant.ID

	h.sendMail(c, mail.Message{
		To:      user.Email,
		Subject: "Welcome to QR Menu",
		Body:    fmt.Sprintf("Hi %s, your account for %q was created and is awaiting approval. We will email you once it is live.", user.Name, restaurant.Name),
	})
	h.sendMail(c, mail.Message{
		To:      h.cfg.AdminEmail,
		Subject: "New restaurant registration",
		Body:    fmt.Sprintf("Restaurant %q (slug %s) registered by %s <%s> and is awaiting approval.", restaurant.Name, restaurant.Slug, user.Name, user.Email),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Account created, awaiting approval",
		"user":       userJSON(&user),
		"restaurant": restaurant,
	})
}

// SignIn authenticates an owner and returns a session token. Non-active
// accounts are rejected with messages that let the UI tell "wrong password"
// apart from "pending approval".
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account found with this email"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	switch user.Status {
	case models.StatusActive:
	case models.StatusPending:
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account is pending validation by our team"})
		return
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account has been disabled"})
		return
	}

	token, err := h.auth.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userJSON(&user)})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPassword issues a single-use reset token valid for one hour
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account found with this email"})
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := h.db.Create(&reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset token"})
		return
	}

	h.sendMail(c, mail.Message{
		To:      user.Email,
		Subject: "Reset your password",
		Body:    fmt.Sprintf("Hi %s, reset your password here: %s/reset-password?token=%s (link valid for 1 hour).", user.Name, h.cfg.PublicBaseURL, reset.Token),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token and stores the new password hash
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsStrongPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with an upper-case letter, a lower-case letter and a digit"})
		return
	}

	var reset models.PasswordReset
	err := h.db.Where("token = ?", req.Token).First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && (reset.UsedAt != nil || time.Now().After(reset.ExpiresAt))) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up reset token"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	now := time.Now()
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used_at", &now).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
}
