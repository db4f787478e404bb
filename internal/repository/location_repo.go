package repository

import (
	"context"

	"gorm.io/gorm"

	"metropost/backend/internal/dto"
	"metropost/backend/internal/model"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	List(ctx context.Context, req *dto.LocationListRequest) ([]model.Location, error)
	ListByCity(ctx context.Context, cityID string) ([]model.Location, error)
	Update(ctx context.Context, loc *model.Location) error
	Delete(ctx context.Context, id string) error
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Preload("City").
		Where("location_id = ?", id).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// applyLocationFilter 将查询参数映射为过滤条件
// keyword 对名称做大小写不敏感的子串匹配，city 对归属城市做精确匹配
func applyLocationFilter(db *gorm.DB, req *dto.LocationListRequest) *gorm.DB {
	if kw := req.GetKeyword(); kw != "" {
		db = db.Where("name ILIKE ?", "%"+kw+"%")
	}
	if req.City != "" {
		db = db.Where("city_id = ?", req.City)
	}
	return db
}

func (r *locationRepo) List(ctx context.Context, req *dto.LocationListRequest) ([]model.Location, error) {
	var locations []model.Location
	db := applyLocationFilter(r.db.WithContext(ctx), req).
		Preload("City").
		Order("name ASC")

	if limit := req.GetLimit(); limit > 0 {
		db = db.Limit(limit)
	}

	err := db.Find(&locations).Error
	return locations, err
}

func (r *locationRepo) ListByCity(ctx context.Context, cityID string) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Preload("City").
		Where("city_id = ?", cityID).
		Order("created_at DESC").
		Find(&locations).Error
	return locations, err
}

func (r *locationRepo) Update(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("location_id = ?", id).
		Delete(&model.Location{}).Error
}
