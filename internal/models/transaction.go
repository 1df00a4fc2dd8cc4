package models

// Transaction 交易记录
// PurchasedProductIDs 为序列化的商品ID列表字符串，容错解析
type Transaction struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	CustomerID          string `json:"customer_id" gorm:"index;type:varchar(20)"`
	PurchasedProductIDs string `json:"purchased_product_ids" gorm:"type:text"`
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "transactions"
}
