package services

import (
	"context"

	"admin-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns rooms with their type; availableOnly keeps rooms open for booking.
func (s *RoomService) List(ctx context.Context, availableOnly bool) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.WithContext(ctx).Preload("RoomType").Order("room_number")
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}
