package models

import (
	"time"
)

// Customer 客户记录
// AbandonedCart / WishlistItems 保存为序列化的商品ID列表字符串
// （历史数据格式，读取时需容错解析，解析失败按空列表处理）
type Customer struct {
	CustomerID    string     `json:"customer_id" gorm:"column:customer_id;primaryKey;type:varchar(20)"`
	Gender        string     `json:"gender"`
	AbandonedCart string     `json:"abandoned_cart" gorm:"type:text"`
	WishlistItems string     `json:"wishlist_items" gorm:"type:text"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
