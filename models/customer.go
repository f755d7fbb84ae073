package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:150" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`
	IDCardNumber string `gorm:"column:id_card_number;size:32" json:"id_card_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
