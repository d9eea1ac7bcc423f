package models

import "time"

type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"not null"`
	// Slug is unique within a restaurant, not globally
	Slug        string    `json:"slug" gorm:"index"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"order" gorm:"column:sort_order;default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Dish struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	RestaurantID uint     `json:"restaurant_id" gorm:"not null;index"`
	CategoryID   uint     `json:"category_id" gorm:"not null;index"`
	MenuID       *uint    `json:"menu_id"`
	Name         string   `json:"name" gorm:"not null"`
	Slug         string   `json:"slug" gorm:"index"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" gorm:"not null"`
	ImageURL     string   `json:"image_url"`
	Allergens    []string `json:"allergens" gorm:"serializer:json"`
	IsAvailable  bool     `json:"is_available" gorm:"default:true"`
	IsPopular    bool     `json:"is_popular" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuStatus is the publication state of a menu grouping
type MenuStatus string

const (
	MenuDraft    MenuStatus = "draft"
	MenuActive   MenuStatus = "active"
	MenuArchived MenuStatus = "archived"
)

// Menu is a secondary grouping of dishes. The public page groups by Category;
// menus exist for owners that want a named collection (lunch, seasonal).
type Menu struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null;index"`
	CategoryID   *uint      `json:"category_id"`
	Name         string     `json:"name" gorm:"not null"`
	Slug         string     `json:"slug" gorm:"index"`
	Description  string     `json:"description"`
	Status       MenuStatus `json:"status" gorm:"not null;default:'draft'"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Allergens accepted on dishes
var ValidAllergens = map[string]bool{
	"gluten": true, "crustaceans": true, "eggs": true, "fish": true,
	"peanuts": true, "soy": true, "milk": true, "nuts": true,
	"celery": true, "mustard": true, "sesame": true, "sulphites": true,
	"lupin": true, "molluscs": true,
}
