package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"metropost/backend/internal/dto"
	"metropost/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoLocations  = errors.New("暂无地点数据可导出")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 当前仅实现地点清单导出为 Excel (.xlsx)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportLocations 导出地点清单为 Excel
	ExportLocations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportLocations 导出地点清单
// 列：地点名称 / 状态 / 所属城市 / 创建时间，按名称升序
func (s *exportService) ExportLocations(ctx context.Context) (*bytes.Buffer, string, error) {
	locations, err := s.repo.Location.List(ctx, &dto.LocationListRequest{})
	if err != nil {
		s.logger.Error("查询地点清单失败", zap.Error(err))
		return nil, "", err
	}
	if len(locations) == 0 {
		return nil, "", ErrExportNoLocations
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "地点清单"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"地点名称", "状态", "所属城市", "创建时间"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	for i := range locations {
		loc := &locations[i]
		cityName := ""
		if loc.City != nil {
			cityName = loc.City.Name
		}
		row := []interface{}{
			loc.Name,
			loc.Status,
			cityName,
			loc.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("row", i+2), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("序列化 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("地点清单_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
