package models

import "time"

// Register links a student to a course for one term with a grade in [0,4].
type Register struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID    uint    `gorm:"column:student_id;not null;index" json:"student_id"`
	CourseID     uint    `gorm:"column:course_id;not null;index" json:"course_id"`
	Semester     string  `gorm:"size:20;not null" json:"semester"`
	AcademicYear int     `gorm:"column:academic_year;not null" json:"academic_year"`
	Grade        float64 `gorm:"not null" json:"grade"` // full precision: bands are decided on the submitted value

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
	Course  Course  `gorm:"foreignKey:CourseID" json:"-"`
}

func (Register) TableName() string { return "registers" }
