package models

import "time"

// MenuView is an append-only page/dish view event
type MenuView struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	DishID       *uint     `json:"dish_id"`
	Device       string    `json:"device"`
	CreatedAt    time.Time `json:"created_at"`
}

// QrScan is an append-only QR code scan event
type QrScan struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Device       string    `json:"device"`
	CreatedAt    time.Time `json:"created_at"`
}
