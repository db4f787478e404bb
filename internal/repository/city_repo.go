package repository

import (
	"context"

	"gorm.io/gorm"

	"metropost/backend/internal/model"
)

// CityRepository 城市数据访问接口（本服务只读）
type CityRepository interface {
	GetByID(ctx context.Context, id string) (*model.City, error)
}

type cityRepo struct {
	db *gorm.DB
}

// NewCityRepo 创建 CityRepository 实例
func NewCityRepo(db *gorm.DB) CityRepository {
	return &cityRepo{db: db}
}

func (r *cityRepo) GetByID(ctx context.Context, id string) (*model.City, error) {
	var city model.City
	err := r.db.WithContext(ctx).
		Where("city_id = ?", id).
		First(&city).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}
