package models

import "time"

type Restaurant struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	OwnerID uint   `json:"owner_id" gorm:"not null"`
	Owner   *User  `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name    string `json:"name" gorm:"not null"`
	Slug    string `json:"slug" gorm:"uniqueIndex;not null"`

	Description string `json:"description"`

	// Branding
	PrimaryColor   string `json:"primary_color" gorm:"default:'#1f2937'"`
	SecondaryColor string `json:"secondary_color" gorm:"default:'#f9fafb'"`
	AccentColor    string `json:"accent_color" gorm:"default:'#f59e0b'"`
	FontFamily     string `json:"font_family" gorm:"default:'Inter'"`

	// Contact
	Whatsapp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Tiktok    string `json:"tiktok"`
	Adresse   string `json:"adresse"`

	LogoURL       string `json:"logo_url"`
	CoverImageURL string `json:"cover_image_url"`

	Status        Status `json:"status" gorm:"not null;default:'pending'"`
	PendingReason string `json:"pending_reason"`

	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	Dishes     []Dish     `json:"dishes,omitempty" gorm:"foreignKey:RestaurantID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
