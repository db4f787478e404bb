package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"metropost/backend/internal/dto"
	"metropost/backend/internal/service"
	"metropost/backend/pkg/response"
)

// LocationHandler 地点模块 HTTP 处理器
type LocationHandler struct {
	locSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locSvc: locSvc}
}

// ListLocations 获取地点列表
// GET /api/v1/locations?keyword=&city=&limit=
func (h *LocationHandler) ListLocations(c *gin.Context) {
	var req dto.LocationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	locations, err := h.locSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.OK(c, locations)
}

// GetLocation 获取地点详情
// GET /api/v1/locations/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "地点ID不能为空")
		return
	}

	loc, err := h.locSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OK(c, loc)
}

// CreateLocation 创建地点
// POST /api/v1/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败：Name 与 City 为必填项")
		return
	}

	loc, err := h.locSvc.Create(c.Request.Context(), &req)
	if err != nil {
		// 含城市引用不存在在内的存储失败统一按 400 上报，底层消息原样透传
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, loc)
}

// UpdateLocation 更新地点（部分更新）
// PATCH /api/v1/locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "地点ID不能为空")
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	loc, err := h.locSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			response.NotFound(c, "地点不存在")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, loc)
}

// DeleteLocation 删除地点
// DELETE /api/v1/locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "地点ID不能为空")
		return
	}

	if err := h.locSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.Message(c, "地点删除成功")
}

// ListByCity 按城市获取地点列表
// GET /api/v1/cities/:cityId/locations
func (h *LocationHandler) ListByCity(c *gin.Context) {
	cityID := c.Param("cityId")
	if cityID == "" {
		response.BadRequest(c, "城市ID不能为空")
		return
	}

	locations, err := h.locSvc.ListByCity(c.Request.Context(), cityID)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OKCount(c, len(locations), locations)
}

// handleLocationError 统一处理地点模块业务错误
func (h *LocationHandler) handleLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, "地点不存在")
	case errors.Is(err, service.ErrCityNotFound):
		response.NotFound(c, "城市不存在")
	default:
		response.InternalError(c, err.Error())
	}
}
