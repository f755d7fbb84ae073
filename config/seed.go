package config

import (
	"fmt"
	"log"
	"time"

	"admin-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustParseDate(value string) datatypes.Date {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("bad seed date %s: %v", value, err))
	}
	return datatypes.Date(t)
}

func countRows(db *gorm.DB, model interface{}) (int64, error) {
	var n int64
	err := db.Model(model).Count(&n).Error
	return n, err
}

// SeedDatabase inserts demo rows into empty tables; tables that already hold
// data are left alone.
func SeedDatabase(db *gorm.DB, teacherPassword string) error {
	// ---------------- RoomTypes / Rooms ----------------
	rtCount, err := countRows(db, &models.RoomType{})
	if err != nil {
		return fmt.Errorf("count room types: %w", err)
	}
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", Description: "Standard Room", PricePerNight: 1200, MaxGuests: 2},
			{Name: "Superior", Description: "Superior Room", PricePerNight: 1800, MaxGuests: 3},
			{Name: "Deluxe", Description: "Deluxe Room", PricePerNight: 2500, MaxGuests: 4},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			return fmt.Errorf("room types: %w", err)
		}

		rooms := []models.Room{
			{RoomNumber: "101", Floor: "1", RoomTypeID: &roomTypes[0].ID, IsAvailable: true},
			{RoomNumber: "102", Floor: "1", RoomTypeID: &roomTypes[0].ID, IsAvailable: true},
			{RoomNumber: "201", Floor: "2", RoomTypeID: &roomTypes[1].ID, IsAvailable: true},
			{RoomNumber: "301", Floor: "3", RoomTypeID: &roomTypes[2].ID, IsAvailable: true},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("rooms: %w", err)
		}
		log.Println("RoomTypes and Rooms seeded")
	}

	// ---------------- Customers / Bookings ----------------
	custCount, err := countRows(db, &models.Customer{})
	if err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if custCount == 0 {
		customers := []models.Customer{
			{Name: "สมชาย ใจดี", Email: "somchai@example.com", Phone: "0812345678", IDCardNumber: "1103700000001"},
			{Name: "Jane Doe", Email: "jane@example.com", Phone: "0898765432", IDCardNumber: "P1234567"},
		}
		if err := db.Create(&customers).Error; err != nil {
			return fmt.Errorf("customers: %w", err)
		}

		var room models.Room
		if err := db.Order("id").First(&room).Error; err == nil {
			booking := models.Booking{
				CustomerID:   customers[0].ID,
				RoomID:       room.ID,
				CheckInDate:  mustParseDate("2026-01-10"),
				CheckOutDate: mustParseDate("2026-01-12"),
				TotalPrice:   2400,
				Status:       models.BookingStatusConfirmed,
			}
			if err := db.Create(&booking).Error; err != nil {
				return fmt.Errorf("bookings: %w", err)
			}
		}
		log.Println("Customers seeded")
	}

	// ---------------- Teachers / Students / Courses ----------------
	userCount, err := countRows(db, &models.User{})
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(teacherPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash teacher password: %w", err)
		}
		teachers := []models.User{
			{Name: "อ.วิชัย สอนดี", Email: "wichai@school.local", Password: string(hash)},
			{Name: "Dr. Alice Smith", Email: "alice@school.local", Password: string(hash)},
		}
		if err := db.Create(&teachers).Error; err != nil {
			return fmt.Errorf("teachers: %w", err)
		}

		courseCount, err := countRows(db, &models.Course{})
		if err != nil {
			return fmt.Errorf("count courses: %w", err)
		}
		if courseCount == 0 {
			courses := []models.Course{
				{CourseCode: "CS101", CourseName: "Introduction to Programming", TeacherID: &teachers[0].ID},
				{CourseCode: "MA201", CourseName: "Linear Algebra", TeacherID: &teachers[1].ID},
			}
			if err := db.Create(&courses).Error; err != nil {
				return fmt.Errorf("courses: %w", err)
			}
		}
		log.Println("Teachers and Courses seeded")
	}

	studentCount, err := countRows(db, &models.Student{})
	if err != nil {
		return fmt.Errorf("count students: %w", err)
	}
	if studentCount == 0 {
		students := []models.Student{
			{StudentID: "6501001", FirstName: "ณัฐ", LastName: "วงศ์ไทย"},
			{StudentID: "6501002", FirstName: "Mali", LastName: "Srisuk"},
			{StudentID: "6501003", FirstName: "Krit", LastName: "Chaiyo"},
		}
		if err := db.Create(&students).Error; err != nil {
			return fmt.Errorf("students: %w", err)
		}
		log.Println("Students seeded")
	}

	return nil
}
