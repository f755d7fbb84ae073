package models

import "time"

// User is a staff account; courses reference it as their teacher.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
