package services

import (
	"testing"
	"time"

	"admin-backend/config"
	"admin-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the in-memory database alive for the whole test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, config.Migrate(db))
	return db
}

func ptr[T any](v T) *T { return &v }

func day(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return datatypes.Date(d)
}

type hotelFixture struct {
	RoomType models.RoomType
	Room     models.Room
	Customer models.Customer
}

func seedHotel(t *testing.T, db *gorm.DB) hotelFixture {
	t.Helper()

	rt := models.RoomType{Name: "Deluxe", PricePerNight: 2500, MaxGuests: 2}
	require.NoError(t, db.Create(&rt).Error)
	room := models.Room{RoomNumber: "301", RoomTypeID: &rt.ID, IsAvailable: true}
	require.NoError(t, db.Create(&room).Error)
	cust := models.Customer{Name: "สมชาย ใจดี", Email: "somchai@example.com", Phone: "0812345678", IDCardNumber: "1103700000001"}
	require.NoError(t, db.Create(&cust).Error)

	return hotelFixture{RoomType: rt, Room: room, Customer: cust}
}

type schoolFixture struct {
	Teacher  models.User
	Students []models.Student
	Courses  []models.Course
}

func seedSchool(t *testing.T, db *gorm.DB) schoolFixture {
	t.Helper()

	teacher := models.User{Name: "Dr. Alice Smith", Email: "alice@school.local", Password: "x"}
	require.NoError(t, db.Create(&teacher).Error)

	students := []models.Student{
		{StudentID: "6501001", FirstName: "Nat", LastName: "Wong"},
		{StudentID: "6501002", FirstName: "Mali", LastName: "Srisuk"},
		{StudentID: "6501003", FirstName: "Krit", LastName: "Chaiyo"},
	}
	require.NoError(t, db.Create(&students).Error)

	courses := []models.Course{
		{CourseCode: "CS101", CourseName: "Introduction to Programming", TeacherID: &teacher.ID},
		{CourseCode: "MA201", CourseName: "Linear Algebra"},
		{CourseCode: "PH100", CourseName: "Physics"},
	}
	require.NoError(t, db.Create(&courses).Error)

	return schoolFixture{Teacher: teacher, Students: students, Courses: courses}
}

func register(t *testing.T, db *gorm.DB, studentID, courseID uint, semester string, year int, grade float64) models.Register {
	t.Helper()
	reg := models.Register{StudentID: studentID, CourseID: courseID, Semester: semester, AcademicYear: year, Grade: grade}
	require.NoError(t, db.Create(&reg).Error)
	return reg
}
