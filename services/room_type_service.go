package services

import (
	"context"

	"admin-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) All(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.WithContext(ctx).Order("id").Find(&types).Error
	return types, err
}
