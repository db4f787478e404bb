package handler

import "github.com/gin-gonic/gin"

// fallbackCaller 未携带认证身份时的操作者标识
const fallbackCaller = "system"

// CallerID 从 Gin 上下文中提取操作者标识
// 可选认证中间件成功时注入 user_id；匿名请求回落为 "system"
func CallerID(c *gin.Context) string {
	v, exists := c.Get("user_id")
	if !exists {
		return fallbackCaller
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return fallbackCaller
	}
	return s
}
