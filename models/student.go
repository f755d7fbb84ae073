package models

import "time"

type Student struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID string `gorm:"column:student_id;uniqueIndex;size:32" json:"student_id"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
