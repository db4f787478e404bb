package model

// City 城市表 — 对应 cities
// 本服务只读：地点的归属校验与关联投影使用，写入由城市管理侧负责
type City struct {
	CityID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"city_id"`
	Name   string `gorm:"type:varchar(100);not null"                     json:"name"`
	Status string `gorm:"type:varchar(20);not null;default:'Active'"     json:"status"`
	BaseModel
}

// TableName 指定表名
func (City) TableName() string { return "cities" }
