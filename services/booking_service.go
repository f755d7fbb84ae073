// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"admin-backend/models"
	"admin-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService เป็น wrapper รอบ *gorm.DB เพื่อแยก logic ของ booking
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ---------------------------
// View models
// ---------------------------

type BookingRoomView struct {
	Number string   `json:"number"`
	Type   string   `json:"type"`
	Price  *float64 `json:"price,omitempty"`
}

type BookingCustomerView struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone"`
	IDCardNumber string `json:"id_card_number,omitempty"`
}

type BookingListItem struct {
	ID           uint                `json:"id"`
	Room         BookingRoomView     `json:"room"`
	Customer     BookingCustomerView `json:"customer"`
	CheckInDate  string              `json:"check_in_date"`
	CheckOutDate string              `json:"check_out_date"`
	TotalPrice   float64             `json:"total_price"`
	Status       string              `json:"status"`
}

type BookingDetail struct {
	BookingListItem
	CreatedAt time.Time `json:"created_at"`
}

type BookingStats struct {
	Total      int64 `json:"total"`
	CheckedIn  int64 `json:"checked_in"`
	Upcoming   int64 `json:"upcoming"`
	CheckedOut int64 `json:"checked_out"`
}

// ---------------------------
// Inputs
// ---------------------------

type CreateBookingInput struct {
	CustomerID   *uint    `json:"customer_id" validate:"required"`
	RoomID       *uint    `json:"room_id" validate:"required"`
	CheckInDate  string   `json:"check_in_date" validate:"required"`
	CheckOutDate string   `json:"check_out_date" validate:"required"`
	TotalPrice   *float64 `json:"total_price" validate:"required,gte=0"`
	Status       string   `json:"status" validate:"required,oneof=confirmed checked_in checked_out"`
}

// UpdateBookingInput: status is mandatory, the rest only when present.
type UpdateBookingInput struct {
	Status       string   `json:"status" validate:"required,oneof=confirmed checked_in checked_out"`
	CheckInDate  *string  `json:"check_in_date,omitempty"`
	CheckOutDate *string  `json:"check_out_date,omitempty"`
	TotalPrice   *float64 `json:"total_price,omitempty" validate:"omitempty,gte=0"`
}

// ---------------------------
// Reads
// ---------------------------

type bookingRow struct {
	ID            uint
	CheckInDate   datatypes.Date
	CheckOutDate  datatypes.Date
	TotalPrice    float64
	Status        string
	CreatedAt     time.Time
	RoomNumber    string
	RoomTypeName  *string
	CustomerName  string
	CustomerPhone string
}

// List returns every booking newest first. Bookings whose room or customer
// row is gone are left out by the inner joins.
func (s *BookingService) List(ctx context.Context) ([]BookingListItem, error) {
	var rows []bookingRow
	err := s.DB.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.check_in_date, bookings.check_out_date,
			bookings.total_price, bookings.status, bookings.created_at,
			rooms.room_number, room_types.name AS room_type_name,
			customers.name AS customer_name, customers.phone AS customer_phone`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Joins("LEFT JOIN room_types ON room_types.id = rooms.room_type_id").
		Order("bookings.created_at DESC").
		Order("bookings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	out := make([]BookingListItem, 0, len(rows))
	for _, r := range rows {
		typeName := ""
		if r.RoomTypeName != nil {
			typeName = *r.RoomTypeName
		}
		out = append(out, BookingListItem{
			ID:           r.ID,
			Room:         BookingRoomView{Number: r.RoomNumber, Type: typeName},
			Customer:     BookingCustomerView{Name: r.CustomerName, Phone: r.CustomerPhone},
			CheckInDate:  formatDate(r.CheckInDate),
			CheckOutDate: formatDate(r.CheckOutDate),
			TotalPrice:   r.TotalPrice,
			Status:       r.Status,
		})
	}
	return out, nil
}

// Stats counts bookings per status in one GROUP BY.
func (s *BookingService) Stats(ctx context.Context) (BookingStats, error) {
	var counts []struct {
		Status string
		Total  int64
	}
	err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return BookingStats{}, fmt.Errorf("failed to count bookings: %w", err)
	}

	var st BookingStats
	for _, c := range counts {
		st.Total += c.Total
		switch c.Status {
		case models.BookingStatusCheckedIn:
			st.CheckedIn = c.Total
		case models.BookingStatusConfirmed:
			st.Upcoming = c.Total
		case models.BookingStatusCheckedOut:
			st.CheckedOut = c.Total
		}
	}
	return st, nil
}

// Get returns one booking with room, room type and customer resolved.
// A dangling reference is an integrity error, not a zero value.
func (s *BookingService) Get(ctx context.Context, id uint) (*BookingDetail, error) {
	db := s.DB.WithContext(ctx)

	var bk models.Booking
	if err := db.First(&bk, id).Error; err != nil {
		return nil, classifyDBError(err)
	}

	var room models.Room
	if err := db.Preload("RoomType").First(&room, bk.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingRelation("room", bk.RoomID)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", bk.RoomID, err)
	}
	if room.RoomTypeID == nil || room.RoomType.ID == 0 {
		return nil, missingRelation("room type of room", room.ID)
	}

	var cust models.Customer
	if err := db.First(&cust, bk.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingRelation("customer", bk.CustomerID)
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", bk.CustomerID, err)
	}

	price := room.RoomType.PricePerNight
	return &BookingDetail{
		BookingListItem: BookingListItem{
			ID:   bk.ID,
			Room: BookingRoomView{Number: room.RoomNumber, Type: room.RoomType.Name, Price: &price},
			Customer: BookingCustomerView{
				Name:         cust.Name,
				Email:        cust.Email,
				Phone:        cust.Phone,
				IDCardNumber: cust.IDCardNumber,
			},
			CheckInDate:  formatDate(bk.CheckInDate),
			CheckOutDate: formatDate(bk.CheckOutDate),
			TotalPrice:   bk.TotalPrice,
			Status:       bk.Status,
		},
		CreatedAt: bk.CreatedAt,
	}, nil
}

// ---------------------------
// Writes
// ---------------------------

func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	verr := utils.Validate(in)

	var checkIn, checkOut time.Time
	okIn, okOut := false, false
	if !verr.Has("check_in_date") {
		if checkIn, okIn = parseDate(in.CheckInDate); !okIn {
			verr.Add("check_in_date", "must be a valid date (YYYY-MM-DD)")
		}
	}
	if !verr.Has("check_out_date") {
		if checkOut, okOut = parseDate(in.CheckOutDate); !okOut {
			verr.Add("check_out_date", "must be a valid date (YYYY-MM-DD)")
		}
	}
	if okIn && okOut && !checkOut.After(checkIn) {
		verr.Add("check_out_date", "must be a date after check_in_date")
	}

	if err := s.checkReferences(ctx, verr, in.CustomerID, in.RoomID); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	bk := &models.Booking{
		CustomerID:   *in.CustomerID,
		RoomID:       *in.RoomID,
		CheckInDate:  datatypes.Date(checkIn),
		CheckOutDate: datatypes.Date(checkOut),
		TotalPrice:   *in.TotalPrice,
		Status:       in.Status,
	}
	if err := s.DB.WithContext(ctx).Create(bk).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", classifyDBError(err))
	}
	return bk, nil
}

func (s *BookingService) checkReferences(ctx context.Context, verr *utils.ValidationError, customerID, roomID *uint) error {
	if !verr.Has("customer_id") {
		ok, err := rowExists(ctx, s.DB, &models.Customer{}, *customerID)
		if err != nil {
			return fmt.Errorf("db error checking customer %d: %w", *customerID, err)
		}
		if !ok {
			verr.Add("customer_id", "does not exist")
		}
	}
	if !verr.Has("room_id") {
		ok, err := rowExists(ctx, s.DB, &models.Room{}, *roomID)
		if err != nil {
			return fmt.Errorf("db error checking room %d: %w", *roomID, err)
		}
		if !ok {
			verr.Add("room_id", "does not exist")
		}
	}
	return nil
}

// Update applies status plus any supplied fields. The date order is checked
// on the pair that will be stored, so changing only one side cannot invert it.
func (s *BookingService) Update(ctx context.Context, id uint, in UpdateBookingInput) (*models.Booking, error) {
	db := s.DB.WithContext(ctx)

	var bk models.Booking
	if err := db.First(&bk, id).Error; err != nil {
		return nil, classifyDBError(err)
	}

	verr := utils.Validate(in)
	updates := map[string]interface{}{"status": in.Status}

	checkIn, checkOut := dayOf(bk.CheckInDate), dayOf(bk.CheckOutDate)
	datesValid := true
	if in.CheckInDate != nil {
		t, ok := parseDate(*in.CheckInDate)
		if !ok {
			verr.Add("check_in_date", "must be a valid date (YYYY-MM-DD)")
			datesValid = false
		} else {
			checkIn = t
			updates["check_in_date"] = datatypes.Date(t)
		}
	}
	if in.CheckOutDate != nil {
		t, ok := parseDate(*in.CheckOutDate)
		if !ok {
			verr.Add("check_out_date", "must be a valid date (YYYY-MM-DD)")
			datesValid = false
		} else {
			checkOut = t
			updates["check_out_date"] = datatypes.Date(t)
		}
	}
	if datesValid && (in.CheckInDate != nil || in.CheckOutDate != nil) && !checkOut.After(checkIn) {
		verr.Add("check_out_date", "must be a date after check_in_date")
	}
	if in.TotalPrice != nil {
		updates["total_price"] = *in.TotalPrice
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := db.Model(&bk).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, classifyDBError(err))
	}
	if err := db.First(&bk, id).Error; err != nil {
		return nil, classifyDBError(err)
	}
	return &bk, nil
}

// Delete removes the booking whatever its status.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, classifyDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	log.Printf("booking %d deleted", id)
	return nil
}
