package services

import (
	"context"

	"gorm.io/gorm"
)

// rowExists reports whether model's table has a row with the given id.
func rowExists(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
