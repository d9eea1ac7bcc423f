package handlers

import (
	"net/http"

	"qr-menu-api/models"
	"qr-menu-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories returns the caller's categories, display order first
func (h *Handler) ListCategories(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}
	var categories []models.Category
	h.db.Where("restaurant_id = ?", restaurant.ID).Order("sort_order asc, id asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Slug:         utils.Slugify(req.Name),
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var category models.Category
	if err := h.db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).
		First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{"name": true, "description": true, "image_url": true, "order": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if !allowed[k] {
			continue
		}
		if k == "order" {
			update["sort_order"] = v
			continue
		}
		update[k] = v
	}
	if name, ok := update["name"].(string); ok {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name cannot be empty"})
			return
		}
		update["slug"] = utils.Slugify(name)
	}

	if len(update) > 0 {
		if err := h.db.Model(&category).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory hard-deletes a category. Dishes referencing it keep their
// category id; the public menu simply no longer shows them under a heading.
func (h *Handler) DeleteCategory(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var category models.Category
	if err := h.db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).
		First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := h.db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
