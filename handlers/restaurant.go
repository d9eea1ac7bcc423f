package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func (h *Handler) GetMyRestaurant(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant updates branding, contact and description fields
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Name, slug and status are managed elsewhere; only appearance and
	// contact fields are owner-editable here.
	allowed := map[string]bool{
		"description":     true,
		"primary_color":   true,
		"secondary_color": true,
		"accent_color":    true,
		"font_family":     true,
		"whatsapp":        true,
		"instagram":       true,
		"facebook":        true,
		"tiktok":          true,
		"adresse":         true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if len(update) > 0 {
		if err := h.db.Model(restaurant).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// UploadImage stores a logo or cover image and records its URL on the
// restaurant. The form field "kind" selects which.
func (h *Handler) UploadImage(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	kind := c.PostForm("kind")
	if kind != "logo" && kind != "cover" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'logo' or 'cover'"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	ext := filepath.Ext(file.Filename)
	if !allowedImageExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.logger.Errorw("image upload failed", "restaurant_id", restaurant.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	url := "/uploads/" + name
	column := "logo_url"
	if kind == "cover" {
		column = "cover_image_url"
	}
	if err := h.db.Model(restaurant).Update(column, url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image reference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "url": url})
}
