package handlers

import (
	"net/http"

	"qr-menu-api/models"
	"qr-menu-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateDishRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	MenuID      *uint    `json:"menu_id"`
	ImageURL    string   `json:"image_url"`
	Allergens   []string `json:"allergens"`
	IsAvailable *bool    `json:"is_available"`
	IsPopular   bool     `json:"is_popular"`
}

func (h *Handler) ListDishes(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}
	query := h.db.Where("restaurant_id = ?", restaurant.ID)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	var dishes []models.Dish
	query.Order("id asc").Find(&dishes)
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

func (h *Handler) CreateDish(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.validAllergens(c, req.Allergens) {
		return
	}

	// The category (and menu, when given) must belong to the caller's
	// restaurant, not just exist.
	var category models.Category
	if err := h.db.Where("id = ? AND restaurant_id = ?", req.CategoryID, restaurant.ID).
		First(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not belong to your restaurant"})
		return
	}
	if req.MenuID != nil {
		var menu models.Menu
		if err := h.db.Where("id = ? AND restaurant_id = ?", *req.MenuID, restaurant.ID).
			First(&menu).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu does not belong to your restaurant"})
			return
		}
	}

	dish := models.Dish{
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		MenuID:       req.MenuID,
		Name:         req.Name,
		Slug:         utils.Slugify(req.Name),
		Description:  req.Description,
		Price:        *req.Price,
		ImageURL:     req.ImageURL,
		Allergens:    req.Allergens,
		IsAvailable:  true,
		IsPopular:    req.IsPopular,
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}
	if err := h.db.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish created", "dish": dish})
}

func (h *Handler) UpdateDish(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var dish models.Dish
	if err := h.db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).
		First(&dish).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "category_id": true,
		"menu_id": true, "image_url": true, "allergens": true,
		"is_available": true, "is_popular": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	if name, ok := update["name"].(string); ok {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dish name cannot be empty"})
			return
		}
		update["slug"] = utils.Slugify(name)
	}
	if price, ok := update["price"].(float64); ok && price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
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
	if rawID, ok := update["menu_id"].(float64); ok {
		var menu models.Menu
		if err := h.db.Where("id = ? AND restaurant_id = ?", uint(rawID), restaurant.ID).
			First(&menu).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu does not belong to your restaurant"})
			return
		}
	}
	if rawAllergens, ok := update["allergens"]; ok {
		list, _ := rawAllergens.([]interface{})
		tags := make([]string, 0, len(list))
		for _, t := range list {
			tag, _ := t.(string)
			tags = append(tags, tag)
		}
		if !h.validAllergens(c, tags) {
			return
		}
		delete(update, "allergens")
		dish.Allergens = tags
		if err := h.db.Model(&dish).Update("allergens", tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
			return
		}
	}

	if len(update) > 0 {
		if err := h.db.Model(&dish).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated", "dish": dish})
}

func (h *Handler) DeleteDish(c *gin.Context) {
	restaurant, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var dish models.Dish
	if err := h.db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).
		First(&dish).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	if err := h.db.Delete(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dish"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
}

func (h *Handler) validAllergens(c *gin.Context, allergens []string) bool {
	for _, tag := range allergens {
		if !models.ValidAllergens[tag] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown allergen tag: " + tag})
			return false
		}
	}
	return true
}
