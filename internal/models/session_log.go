package models

// SessionLog 浏览会话记录
// ClickedProductIDs 为序列化的商品ID列表字符串，容错解析
type SessionLog struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	CustomerID        string `json:"customer_id" gorm:"index;type:varchar(20)"`
	SearchQueries     string `json:"search_queries"`
	ClickedProductIDs string `json:"clicked_product_ids" gorm:"type:text"`
}

// TableName 指定表名
func (SessionLog) TableName() string {
	return "session_logs"
}
