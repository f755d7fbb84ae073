package models

import "time"

type Course struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CourseCode string `gorm:"column:course_code;uniqueIndex;size:32" json:"course_code"`
	CourseName string `gorm:"column:course_name;size:255" json:"course_name"`
	TeacherID  *uint  `gorm:"column:teacher_id;index" json:"teacher_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Teacher *User `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}
