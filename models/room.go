package models

import "time"

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// nullable so a room without a type never stores FK=0
	RoomTypeID  *uint  `gorm:"column:room_type_id;index" json:"room_type_id,omitempty"`
	RoomNumber  string `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"room_number"`
	Floor       string `gorm:"type:varchar(10)" json:"floor"`
	IsAvailable bool   `gorm:"column:is_available;default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type"`
}
