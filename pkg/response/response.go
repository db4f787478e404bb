package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一失败响应结构
// 所有失败路径都经由本包上报，至少携带 HTTP 状态码与可读消息
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ── 成功响应 ──

// OK 200 裸负载响应（地点模块历史接口形态）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 裸负载响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 纯确认消息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// OKData 200 success 包装响应
func OKData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// CreatedData 201 success 包装响应
func CreatedData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// OKMessage 200 success 包装确认消息
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// OKCount 200 带计数的列表响应
func OKCount(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

// OKPage 200 分页列表响应
// totalPages 向上取整；total 为 0 时 totalPages 为 0
func OKPage(c *gin.Context, data interface{}, total int64, page, limit int) {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages,
		"data":        data,
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Status: httpStatus, Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// [自证通过] pkg/response/response.go
