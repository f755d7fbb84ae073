package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"admin-backend/models"
	"admin-backend/utils"

	"gorm.io/gorm"
)

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// ---------------------------
// View models
// ---------------------------

type StudentView struct {
	ID        uint   `json:"id"`
	StudentID string `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TeacherView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CourseView struct {
	ID         uint         `json:"id"`
	CourseCode string       `json:"course_code"`
	CourseName string       `json:"course_name"`
	Teacher    *TeacherView `json:"teacher"`
}

type RegistrationListItem struct {
	ID           uint        `json:"id"`
	Student      StudentView `json:"student"`
	Course       CourseView  `json:"course"`
	Semester     string      `json:"semester"`
	AcademicYear int         `json:"academic_year"`
	Grade        float64     `json:"grade"`
	Letter       string      `json:"letter"`
	CreatedAt    time.Time   `json:"created_at"`
}

type RegistrationPage struct {
	Data []RegistrationListItem `json:"data"`
	Meta utils.Meta             `json:"meta"`
}

// RegistrationSummary: AverageGrade is nil when there are no registrations.
type RegistrationSummary struct {
	TotalStudents      int64    `json:"total_students"`
	TotalRegistrations int64    `json:"total_registrations"`
	AverageGrade       *float64 `json:"average_grade"`
}

type CourseOption struct {
	ID         uint   `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
}

type RegistrationFormOptions struct {
	Students []StudentView  `json:"students"`
	Courses  []CourseOption `json:"courses"`
}

type CourseStat struct {
	CourseID     uint     `json:"course_id"`
	CourseName   string   `json:"course_name"`
	AverageGrade *float64 `json:"average_grade"`
	StudentCount int64    `json:"student_count"`
}

type SemesterStat struct {
	Semester     string `json:"semester"`
	AcademicYear int    `json:"academic_year"`
	StudentCount int64  `json:"student_count"`
}

// ---------------------------
// Inputs
// ---------------------------

type CreateRegistrationInput struct {
	StudentID    *uint    `json:"student_id" validate:"required"`
	CourseID     *uint    `json:"course_id" validate:"required"`
	Semester     string   `json:"semester" validate:"required,max=20"`
	AcademicYear *int     `json:"academic_year" validate:"required"`
	Grade        *float64 `json:"grade" validate:"required,gte=0,lte=4"`
}

type UpdateGradeInput struct {
	Grade *float64 `json:"grade" validate:"required,gte=0,lte=4"`
}

// ---------------------------
// List
// ---------------------------

// RegistrationSortColumns maps the public `field` values to SQL columns.
var RegistrationSortColumns = map[string]string{
	"created_at":    "registers.created_at",
	"grade":         "registers.grade",
	"semester":      "registers.semester",
	"academic_year": "registers.academic_year",
	"student_id":    "students.student_id",
	"course_code":   "courses.course_code",
}

const DefaultRegistrationSort = "created_at"

var registrationSearchColumns = []string{
	"students.student_id",
	"students.first_name",
	"students.last_name",
	"courses.course_code",
	"courses.course_name",
	"registers.semester",
}

func (s *RegistrationService) listScope(ctx context.Context, search string) *gorm.DB {
	q := s.DB.WithContext(ctx).
		Model(&models.Register{}).
		Joins("JOIN students ON students.id = registers.student_id").
		Joins("JOIN courses ON courses.id = registers.course_id")

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		conds := make([]string, 0, len(registrationSearchColumns))
		args := make([]interface{}, 0, len(registrationSearchColumns))
		for _, col := range registrationSearchColumns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, like)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return q
}

// List returns one page of registrations with student, course and teacher.
// Search, sort field and direction are applied in SQL; the returned filters
// hold the values actually used.
func (s *RegistrationService) List(ctx context.Context, lq utils.ListQuery) (RegistrationPage, utils.Filters, error) {
	field, col := lq.OrderColumn(RegistrationSortColumns, DefaultRegistrationSort)
	dir := "DESC"
	if lq.Direction == "asc" {
		dir = "ASC"
	}
	filters := utils.Filters{Search: lq.Search, Field: field, Direction: strings.ToLower(dir)}

	var total int64
	if err := s.listScope(ctx, lq.Search).Count(&total).Error; err != nil {
		return RegistrationPage{}, filters, fmt.Errorf("failed to count registrations: %w", err)
	}

	var regs []models.Register
	err := s.listScope(ctx, lq.Search).
		Select("registers.*").
		Preload("Student").
		Preload("Course.Teacher").
		Order(col + " " + dir).
		Order("registers.id " + dir).
		Limit(lq.Limit()).
		Offset(lq.Offset()).
		Find(&regs).Error
	if err != nil {
		return RegistrationPage{}, filters, fmt.Errorf("failed to retrieve registrations: %w", err)
	}

	items := make([]RegistrationListItem, 0, len(regs))
	for _, r := range regs {
		// deleted between the join and the preload
		if r.Student.ID == 0 || r.Course.ID == 0 {
			continue
		}
		items = append(items, toRegistrationItem(r))
	}
	return RegistrationPage{Data: items, Meta: utils.BuildMeta(total, lq)}, filters, nil
}

func toRegistrationItem(r models.Register) RegistrationListItem {
	var teacher *TeacherView
	if r.Course.Teacher != nil && r.Course.Teacher.ID != 0 {
		teacher = &TeacherView{ID: r.Course.Teacher.ID, Name: r.Course.Teacher.Name}
	}
	return RegistrationListItem{
		ID: r.ID,
		Student: StudentView{
			ID:        r.Student.ID,
			StudentID: r.Student.StudentID,
			FirstName: r.Student.FirstName,
			LastName:  r.Student.LastName,
		},
		Course: CourseView{
			ID:         r.Course.ID,
			CourseCode: r.Course.CourseCode,
			CourseName: r.Course.CourseName,
			Teacher:    teacher,
		},
		Semester:     r.Semester,
		AcademicYear: r.AcademicYear,
		Grade:        r.Grade,
		Letter:       GradeLetter(r.Grade),
		CreatedAt:    r.CreatedAt,
	}
}

// ---------------------------
// Aggregates (whole table, database side)
// ---------------------------

func (s *RegistrationService) GradeDistribution(ctx context.Context) (GradeDistribution, error) {
	var rows []struct {
		Bucket string
		Total  int64
	}
	err := s.DB.WithContext(ctx).
		Model(&models.Register{}).
		Select(gradeBucketSQL("grade") + " AS bucket, COUNT(*) AS total").
		Group("bucket").
		Scan(&rows).Error
	if err != nil {
		return GradeDistribution{}, fmt.Errorf("failed to compute grade distribution: %w", err)
	}

	var d GradeDistribution
	for _, r := range rows {
		d.add(r.Bucket, r.Total)
	}
	return d, nil
}

func (s *RegistrationService) Summary(ctx context.Context) (RegistrationSummary, error) {
	var row struct {
		TotalRegistrations int64
		TotalStudents      int64
		AverageGrade       *float64
	}
	err := s.DB.WithContext(ctx).
		Model(&models.Register{}).
		Select("COUNT(*) AS total_registrations, COUNT(DISTINCT student_id) AS total_students, AVG(grade) AS average_grade").
		Scan(&row).Error
	if err != nil {
		return RegistrationSummary{}, fmt.Errorf("failed to summarize registrations: %w", err)
	}

	sum := RegistrationSummary{
		TotalStudents:      row.TotalStudents,
		TotalRegistrations: row.TotalRegistrations,
	}
	if row.TotalRegistrations > 0 && row.AverageGrade != nil {
		avg := roundGrade(*row.AverageGrade)
		sum.AverageGrade = &avg
	}
	return sum, nil
}

// CourseStats lists every course, including those nobody registered for
// (average nil, count 0).
func (s *RegistrationService) CourseStats(ctx context.Context) ([]CourseStat, error) {
	var out []CourseStat
	err := s.DB.WithContext(ctx).
		Table("courses").
		Select("courses.id AS course_id, courses.course_name, AVG(registers.grade) AS average_grade, COUNT(registers.id) AS student_count").
		Joins("LEFT JOIN registers ON registers.course_id = courses.id").
		Group("courses.id, courses.course_name").
		Order("courses.id").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute course stats: %w", err)
	}
	for i := range out {
		if out[i].AverageGrade != nil {
			v := roundGrade(*out[i].AverageGrade)
			out[i].AverageGrade = &v
		}
	}
	return out, nil
}

// SemesterStats counts distinct students per term. Semester labels sort as
// strings within a year.
func (s *RegistrationService) SemesterStats(ctx context.Context) ([]SemesterStat, error) {
	var out []SemesterStat
	err := s.DB.WithContext(ctx).
		Model(&models.Register{}).
		Select("semester, academic_year, COUNT(DISTINCT student_id) AS student_count").
		Group("semester, academic_year").
		Order("academic_year").
		Order("semester").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute semester stats: %w", err)
	}
	return out, nil
}

// ---------------------------
// Form data
// ---------------------------

func (s *RegistrationService) FormOptions(ctx context.Context) (RegistrationFormOptions, error) {
	db := s.DB.WithContext(ctx)
	opts := RegistrationFormOptions{Students: []StudentView{}, Courses: []CourseOption{}}

	if err := db.Model(&models.Student{}).
		Select("id, student_id, first_name, last_name").
		Order("student_id").
		Scan(&opts.Students).Error; err != nil {
		return opts, fmt.Errorf("failed to load students: %w", err)
	}
	if err := db.Model(&models.Course{}).
		Select("id, course_code, course_name").
		Order("course_code").
		Scan(&opts.Courses).Error; err != nil {
		return opts, fmt.Errorf("failed to load courses: %w", err)
	}
	return opts, nil
}

func (s *RegistrationService) Get(ctx context.Context, id uint) (*models.Register, error) {
	var reg models.Register
	if err := s.DB.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, classifyDBError(err)
	}
	return &reg, nil
}

// ---------------------------
// Writes
// ---------------------------

func (s *RegistrationService) Create(ctx context.Context, in CreateRegistrationInput) (*models.Register, error) {
	in.Semester = strings.TrimSpace(in.Semester)
	verr := utils.Validate(in)

	if !verr.Has("student_id") {
		ok, err := rowExists(ctx, s.DB, &models.Student{}, *in.StudentID)
		if err != nil {
			return nil, fmt.Errorf("db error checking student %d: %w", *in.StudentID, err)
		}
		if !ok {
			verr.Add("student_id", "does not exist")
		}
	}
	if !verr.Has("course_id") {
		ok, err := rowExists(ctx, s.DB, &models.Course{}, *in.CourseID)
		if err != nil {
			return nil, fmt.Errorf("db error checking course %d: %w", *in.CourseID, err)
		}
		if !ok {
			verr.Add("course_id", "does not exist")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	reg := &models.Register{
		StudentID:    *in.StudentID,
		CourseID:     *in.CourseID,
		Semester:     in.Semester,
		AcademicYear: *in.AcademicYear,
		Grade:        *in.Grade,
	}
	if err := s.DB.WithContext(ctx).Create(reg).Error; err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", classifyDBError(err))
	}
	return reg, nil
}

// UpdateGrade changes the grade only; the other columns are fixed after create.
func (s *RegistrationService) UpdateGrade(ctx context.Context, id uint, in UpdateGradeInput) (*models.Register, error) {
	reg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := utils.Validate(in).OrNil(); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(reg).Update("grade", *in.Grade).Error; err != nil {
		return nil, fmt.Errorf("failed to update registration %d: %w", id, classifyDBError(err))
	}
	return s.Get(ctx, id)
}

func (s *RegistrationService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Register{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete registration %d: %w", id, classifyDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
