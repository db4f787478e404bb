package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"metropost/backend/internal/dto"
	"metropost/backend/internal/model"
	"metropost/backend/internal/repository"
)

// ── 地点模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("地点不存在")
	ErrCityNotFound     = errors.New("城市不存在")
)

// LocationService 地点业务接口
type LocationService interface {
	List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LocationResponse, error)
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id string) error
	ListByCity(ctx context.Context, cityID string) ([]dto.LocationResponse, error)
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx, req)
	if err != nil {
		s.logger.Error("列出地点失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *s.toLocationResponse(&locations[i]))
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(loc), nil
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	status := req.Status
	if status == "" {
		status = "Active"
	}

	loc := &model.Location{
		Name:   req.Name,
		Status: status,
		CityID: req.City,
	}

	// 城市引用是否存在由外键约束兜底，插入失败原样上抛
	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("创建地点失败", zap.String("city_id", req.City), zap.Error(err))
		return nil, err
	}

	// 回读以携带城市投影
	created, err := s.repo.Location.GetByID(ctx, loc.LocationID)
	if err != nil {
		s.logger.Error("回读新建地点失败", zap.String("id", loc.LocationID), zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(created), nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Status != nil {
		loc.Status = *req.Status
	}
	if cityID := req.CityID(); cityID != nil {
		loc.CityID = *cityID
		loc.City = nil // 旧投影作废，按新外键回读
	}

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		s.logger.Error("更新地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("回读更新地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(updated), nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Location.Delete(ctx, id); err != nil {
		s.logger.Error("删除地点失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── ListByCity ──────────────────────

func (s *locationService) ListByCity(ctx context.Context, cityID string) ([]dto.LocationResponse, error) {
	// 先确认城市存在：404 只留给"城市不存在"，空列表正常返回
	if _, err := s.repo.City.GetByID(ctx, cityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		s.logger.Error("查询城市失败", zap.String("city_id", cityID), zap.Error(err))
		return nil, err
	}

	locations, err := s.repo.Location.ListByCity(ctx, cityID)
	if err != nil {
		s.logger.Error("按城市列出地点失败", zap.String("city_id", cityID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *s.toLocationResponse(&locations[i]))
	}

	return result, nil
}

// ── 内部辅助方法 ──

func (s *locationService) toLocationResponse(loc *model.Location) *dto.LocationResponse {
	var city *dto.CityRef
	if loc.City != nil {
		city = &dto.CityRef{
			ID:     loc.City.CityID,
			Name:   loc.City.Name,
			Status: loc.City.Status,
		}
	}

	return &dto.LocationResponse{
		ID:        loc.LocationID,
		Name:      loc.Name,
		Status:    loc.Status,
		City:      city,
		CreatedAt: loc.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: loc.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
