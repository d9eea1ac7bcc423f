package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"qr-menu-api/middleware"
	"qr-menu-api/models"
	"qr-menu-api/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetUser returns an account. Self-service only: the path id must match the
// authenticated caller.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if uint(id) != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only access your own account"})
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	Whatsapp    string `json:"whatsapp"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateUser updates the caller's profile. A password change requires the old
// password; a mismatch leaves the stored hash untouched.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.First(&user, middleware.GetUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Whatsapp != "" {
		if !utils.IsPhone(req.Whatsapp) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid WhatsApp number"})
			return
		}
		updates["whatsapp"] = req.Whatsapp
	}

	if req.NewPassword != "" {
		if req.OldPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is required to set a new one"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}
		if !utils.IsStrongPassword(req.NewPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with an upper-case letter, a lower-case letter and a digit"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
			return
		}
	}

	resp := gin.H{"message": "Account updated", "user": userJSON(&user)}
	if _, changed := updates["password_hash"]; changed {
		// Existing tokens are not tracked server-side; the client must
		// re-authenticate with the new password.
		resp["message"] = "Password updated, please sign in again"
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAccount removes the caller's content, restaurant and account in one
// transaction. Either everything goes or nothing does.
func (h *Handler) DeleteAccount(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, middleware.GetUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if user.RestaurantID != nil {
			rid := *user.RestaurantID
			for _, m := range []interface{}{
				&models.Dish{}, &models.Category{}, &models.Menu{},
				&models.MenuView{}, &models.QrScan{},
			} {
				if err := tx.Where("restaurant_id = ?", rid).Delete(m).Error; err != nil {
					return err
				}
			}
			if err := tx.Delete(&models.Restaurant{}, rid).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		h.logger.Errorw("account deletion failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account and all restaurant data deleted"})
}
