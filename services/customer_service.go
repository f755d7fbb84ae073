package services

import (
	"context"

	"admin-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

// NewCustomerService Constructor สำหรับ Dependency Injection
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.WithContext(ctx).Order("name").Find(&customers).Error
	return customers, err
}
