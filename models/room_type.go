package models

import "time"

// RoomType นิยามประเภทห้องและราคาต่อคืน
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string  `gorm:"size:100;not null" json:"name"`
	Description   string  `json:"description"`
	PricePerNight float64 `gorm:"column:price_per_night;type:decimal(10,2)" json:"price_per_night"`
	MaxGuests     uint    `json:"max_guests"`

	CreatedAt time.Time `json:"created_at"`
}
