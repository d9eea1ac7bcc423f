package handlers

import (
	"net/http"

	"qr-menu-api/models"

	"github.com/gin-gonic/gin"
)

// PublicMenu is the data feed behind a scanned QR code: restaurant branding
// and contact plus active categories with their available dishes. Only active
// restaurants are visible; pending and disabled ones 404.
func (h *Handler) PublicMenu(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.db.Where("slug = ? AND status = ?", c.Param("slug"), models.StatusActive).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var categories []models.Category
	h.db.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("sort_order asc, id asc").Find(&categories)

	var dishes []models.Dish
	h.db.Where("restaurant_id = ? AND is_available = ?", restaurant.ID, true).
		Order("id asc").Find(&dishes)

	byCategory := make(map[uint][]models.Dish, len(categories))
	for _, d := range dishes {
		byCategory[d.CategoryID] = append(byCategory[d.CategoryID], d)
	}

	sections := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		sections = append(sections, gin.H{
			"category": cat,
			"dishes":   byCategory[cat.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": gin.H{
			"name":            restaurant.Name,
			"slug":            restaurant.Slug,
			"description":     restaurant.Description,
			"primary_color":   restaurant.PrimaryColor,
			"secondary_color": restaurant.SecondaryColor,
			"accent_color":    restaurant.AccentColor,
			"font_family":     restaurant.FontFamily,
			"whatsapp":        restaurant.Whatsapp,
			"instagram":       restaurant.Instagram,
			"facebook":        restaurant.Facebook,
			"tiktok":          restaurant.Tiktok,
			"adresse":         restaurant.Adresse,
			"logo_url":        restaurant.LogoURL,
			"cover_image_url": restaurant.CoverImageURL,
		},
		"menu": sections,
	})
}
