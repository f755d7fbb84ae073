package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking statuses accepted by create/update.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"column:customer_id;not null;index" json:"customer_id"`
	RoomID     uint `gorm:"column:room_id;not null;index" json:"room_id"`

	CheckInDate  datatypes.Date `gorm:"column:check_in_date;not null" json:"check_in_date"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date;not null" json:"check_out_date"`
	TotalPrice   float64        `gorm:"column:total_price;type:decimal(10,2);not null" json:"total_price"`
	Status       string         `gorm:"column:status;size:32;not null;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
}
