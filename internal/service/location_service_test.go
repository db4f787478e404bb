package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"metropost/backend/internal/dto"
	"metropost/backend/internal/model"
	"metropost/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestLocationService() (LocationService, *mockLocationRepo, *mockCityRepo) {
	cityRepo := newMockCityRepo()
	locRepo := newMockLocationRepo(cityRepo)
	repo := &repository.Repository{
		City:     cityRepo,
		Location: locRepo,
		Template: newMockTemplateRepo(),
	}
	svc := NewLocationService(repo, zap.NewNop())
	return svc, locRepo, cityRepo
}

func seedCity(cityRepo *mockCityRepo, id, name string) {
	cityRepo.cities[id] = &model.City{CityID: id, Name: name, Status: "Active"}
}

// ── Create 测试 ──

func TestLocationService_Create_Success(t *testing.T) {
	svc, _, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")

	req := &dto.CreateLocationRequest{Name: "趵突泉", City: "city-001"}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "趵突泉" {
		t.Errorf("期望Name=趵突泉，实际=%s", result.Name)
	}
	if result.Status != "Active" {
		t.Errorf("期望默认Status=Active，实际=%s", result.Status)
	}
	if result.City == nil {
		t.Fatal("期望携带城市投影")
	}
	if result.City.ID != "city-001" || result.City.Name != "泉城" {
		t.Errorf("城市投影不匹配: %+v", result.City)
	}
	if result.ID == "" {
		t.Error("_id 不应为空")
	}
}

func TestLocationService_Create_StatusKept(t *testing.T) {
	svc, _, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")

	req := &dto.CreateLocationRequest{Name: "大明湖", Status: "Inactive", City: "city-001"}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Status != "Inactive" {
		t.Errorf("期望Status=Inactive，实际=%s", result.Status)
	}
}

func TestLocationService_Create_CityMissing(t *testing.T) {
	svc, _, _ := setupTestLocationService()

	req := &dto.CreateLocationRequest{Name: "无主地点", City: "nonexistent"}

	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Fatal("城市引用不存在时 Create 应失败")
	}
}

// ── GetByID 测试 ──

func TestLocationService_GetByID_Success(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	locRepo.locations["loc-001"] = &model.Location{
		LocationID: "loc-001", Name: "测试地点", Status: "Active", CityID: "city-001",
	}

	result, err := svc.GetByID(context.Background(), "loc-001")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.ID != "loc-001" {
		t.Errorf("期望_id=loc-001，实际=%s", result.ID)
	}
	if result.City == nil || result.City.Name != "泉城" {
		t.Errorf("期望城市投影=泉城，实际=%+v", result.City)
	}
}

func TestLocationService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := setupTestLocationService()

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("期望 ErrLocationNotFound，实际: %v", err)
	}
}

// 城市被旁路删除后读取地点：转换器不应崩溃，City 为 null
func TestLocationService_GetByID_CityDeletedOutOfBand(t *testing.T) {
	svc, locRepo, _ := setupTestLocationService()
	locRepo.locations["loc-001"] = &model.Location{
		LocationID: "loc-001", Name: "孤儿地点", Status: "Active", CityID: "city-gone",
	}

	result, err := svc.GetByID(context.Background(), "loc-001")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.City != nil {
		t.Errorf("城市缺失时 City 应为 nil，实际=%+v", result.City)
	}
}

// ── List 测试 ──

func TestLocationService_List_KeywordAndLimit(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")

	names := []string{"Spring Garden", "spring hill", "Old Spring", "SPRING SIDE", "Cold Springs"}
	for i, name := range names {
		id := "loc-" + name
		locRepo.locations[id] = &model.Location{
			LocationID: id, Name: name, Status: "Active", CityID: "city-001",
			BaseModel: model.BaseModel{CreatedAt: time.Now().Add(time.Duration(i) * time.Minute)},
		}
	}

	req := &dto.LocationListRequest{Keyword: " spring ", Limit: "2"}
	result, err := svc.List(context.Background(), req)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望返回2条，实际=%d", len(result))
	}
	// 按名称升序
	if result[0].Name > result[1].Name {
		t.Errorf("期望按名称升序: %s, %s", result[0].Name, result[1].Name)
	}
}

func TestLocationService_List_UnparseableLimit(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	for _, id := range []string{"loc-1", "loc-2", "loc-3"} {
		locRepo.locations[id] = &model.Location{
			LocationID: id, Name: id, Status: "Active", CityID: "city-001",
		}
	}

	req := &dto.LocationListRequest{Limit: "abc"}
	result, err := svc.List(context.Background(), req)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("limit 不可解析时应不限制数量，期望3条，实际=%d", len(result))
	}
}

func TestLocationService_List_Empty(t *testing.T) {
	svc, _, _ := setupTestLocationService()

	result, err := svc.List(context.Background(), &dto.LocationListRequest{})
	if err != nil {
		t.Fatalf("空结果不应报错: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("期望空数组，实际=%v", result)
	}
}

// ── Update 测试 ──

func TestLocationService_Update_Success(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	locRepo.locations["loc-001"] = &model.Location{
		LocationID: "loc-001", Name: "旧名称", Status: "Active", CityID: "city-001",
	}

	newName := "新名称"
	req := &dto.UpdateLocationRequest{Name: &newName}

	result, err := svc.Update(context.Background(), "loc-001", req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Name != "新名称" {
		t.Errorf("期望Name=新名称，实际=%s", result.Name)
	}
	if result.ID != "loc-001" {
		t.Errorf("更新不应改变 _id，实际=%s", result.ID)
	}
}

func TestLocationService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupTestLocationService()

	newName := "新名称"
	_, err := svc.Update(context.Background(), "nonexistent", &dto.UpdateLocationRequest{Name: &newName})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("期望 ErrLocationNotFound，实际: %v", err)
	}
}

// 发送 City 字符串应重映射外键而不是嵌套对象
func TestLocationService_Update_CityRemap(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	seedCity(cityRepo, "city-002", "春城")
	locRepo.locations["loc-001"] = &model.Location{
		LocationID: "loc-001", Name: "迁移地点", Status: "Active", CityID: "city-001",
	}

	req := &dto.UpdateLocationRequest{City: json.RawMessage(`"city-002"`)}

	result, err := svc.Update(context.Background(), "loc-001", req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.City == nil || result.City.ID != "city-002" {
		t.Errorf("期望外键重映射到 city-002，实际=%+v", result.City)
	}
	if locRepo.locations["loc-001"].CityID != "city-002" {
		t.Errorf("期望落库 city_id=city-002，实际=%s", locRepo.locations["loc-001"].CityID)
	}
}

// 历史客户端发来的嵌套 City 对象应被剥离
func TestLocationService_Update_NestedCityStripped(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	locRepo.locations["loc-001"] = &model.Location{
		LocationID: "loc-001", Name: "地点", Status: "Active", CityID: "city-001",
	}

	req := &dto.UpdateLocationRequest{City: json.RawMessage(`{"_id":"city-999","Name":"幽灵城"}`)}

	result, err := svc.Update(context.Background(), "loc-001", req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.City == nil || result.City.ID != "city-001" {
		t.Errorf("嵌套对象应被忽略，外键保持 city-001，实际=%+v", result.City)
	}
}

// ── Delete 测试 ──

func TestLocationService_Delete_Success(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	locRepo.locations["loc-001"] = &model.Location{
		LocationID: "loc-001", Name: "待删地点", Status: "Active", CityID: "city-001",
	}

	if err := svc.Delete(context.Background(), "loc-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := locRepo.locations["loc-001"]; ok {
		t.Error("删除后记录不应存在")
	}
}

func TestLocationService_Delete_NotFound(t *testing.T) {
	svc, _, _ := setupTestLocationService()

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("期望 ErrLocationNotFound，实际: %v", err)
	}
}

// ── ListByCity 测试 ──

func TestLocationService_ListByCity_CityNotFound(t *testing.T) {
	svc, _, _ := setupTestLocationService()

	_, err := svc.ListByCity(context.Background(), "nonexistent")
	if !errors.Is(err, ErrCityNotFound) {
		t.Errorf("期望 ErrCityNotFound，实际: %v", err)
	}
}

func TestLocationService_ListByCity_EmptyIsNotError(t *testing.T) {
	svc, _, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "空城")

	result, err := svc.ListByCity(context.Background(), "city-001")
	if err != nil {
		t.Fatalf("城市存在但无地点时不应报错: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("期望空列表，实际=%d", len(result))
	}
}

func TestLocationService_ListByCity_OrderByCreatedAtDesc(t *testing.T) {
	svc, locRepo, cityRepo := setupTestLocationService()
	seedCity(cityRepo, "city-001", "泉城")
	base := time.Now()
	for i, id := range []string{"loc-old", "loc-mid", "loc-new"} {
		locRepo.locations[id] = &model.Location{
			LocationID: id, Name: id, Status: "Active", CityID: "city-001",
			BaseModel: model.BaseModel{CreatedAt: base.Add(time.Duration(i) * time.Hour)},
		}
	}

	result, err := svc.ListByCity(context.Background(), "city-001")
	if err != nil {
		t.Fatalf("ListByCity 应成功: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("期望3条，实际=%d", len(result))
	}
	if result[0].ID != "loc-new" || result[2].ID != "loc-old" {
		t.Errorf("期望按创建时间降序，实际顺序: %s, %s, %s", result[0].ID, result[1].ID, result[2].ID)
	}
}
