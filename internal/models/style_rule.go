package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// StyleRule 体型穿搭规则
// 每个 (gender, name) 一条，name 为体型标签（如 Apple / Pear）
// Guidance 为 JSON 键值对（tops / bottoms / avoids 等穿搭建议字段）
type StyleRule struct {
	ID       uint           `json:"id" gorm:"primaryKey"`
	Gender   string         `json:"gender" gorm:"size:10;index:idx_style_rules_gender_name,unique"`
	Name     string         `json:"name" gorm:"size:50;index:idx_style_rules_gender_name,unique"`
	Guidance datatypes.JSON `json:"guidance" gorm:"type:jsonb"`
}

// TableName 指定表名
func (StyleRule) TableName() string {
	return "style_rules"
}

// GuidanceMap 解析 Guidance 字段为 map
func (r *StyleRule) GuidanceMap() (map[string]string, error) {
	m := map[string]string{}
	if len(r.Guidance) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(r.Guidance, &m); err != nil {
		return nil, err
	}
	return m, nil
}
