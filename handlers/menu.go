package handlers

import (
	"net/http"

	"qr-menu-api/models"
	"qr-menu-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateMenuRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Status      models.MenuStatus `json:"status"`
	CategoryID  *uint             `json:"category_id"`
}

var validMenuStatuses = map[models.MenuStatus]bool{
	models.MenuDraft: true, models.MenuActive: true, models.MenuArchived: true,
}

func (h *Handler) ListMenus(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}
	var menus []models.Menu
	h.db.Where("restaurant_id = ?", restaurant.ID).Order("id asc").Find(&menus)
	c.JSON(http.StatusOK, gin.H{"count": len(menus), "menus": menus})
}

func (h *Handler) CreateMenu(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.MenuDraft
	}
	if !validMenuStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be draft, active or archived"})
		return
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := h.db.Where("id = ? AND restaurant_id = ?", *req.CategoryID, restaurant.ID).
			First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not belong to your restaurant"})
			return
		}
	}

	menu := models.Menu{
		RestaurantID: restaurant.ID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Slug:         utils.Slugify(req.Name),
		Description:  req.Description,
		Status:       req.Status,
	}
	if err := h.db.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu created", "menu": menu})
}

func (h *Handler) UpdateMenu(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var menu models.Menu
	if err := h.db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).
		First(&menu).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{"name": true, "description": true, "status": true, "category_id": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if name, ok := update["name"].(string); ok {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu name cannot be empty"})
			return
		}
		update["slug"] = utils.Slugify(name)
	}
	if status, ok := update["status"].(string); ok && !validMenuStatuses[models.MenuStatus(status)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be draft, active or archived"})
		return
	}
	if rawID, ok := update["category_id"].(float64); ok {
		var category models.Category
		if err := h.db.Where("id = ? AND restaurant_id = ?", uint(rawID), restaurant.ID).
			First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not belong to your restaurant"})
			return
		}
	}

	if len(update) > 0 {
		if err := h.db.Model(&menu).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu updated", "menu": menu})
}

func (h *Handler) DeleteMenu(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var menu models.Menu
	if err := h.db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).
		First(&menu).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	if err := h.db.Delete(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}
