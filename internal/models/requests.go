package models

// LoginRequest 登录请求（仅需客户ID）
type LoginRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// SearchRequest 商品搜索请求
type SearchRequest struct {
	Query  string `json:"query" binding:"required"`
	K      int    `json:"k"`
	Gender string `json:"gender"`
}

// StyleAdviceRequest 穿搭建议请求
// 测量值不做绑定校验：小于等于0由分类器按 "unknown" 处理，不算请求错误
type StyleAdviceRequest struct {
	Gender    string  `json:"gender" binding:"required"`
	Shoulders float64 `json:"shoulders"`
	Bust      float64 `json:"bust"`
	Chest     float64 `json:"chest"`
	Waist     float64 `json:"waist"`
	Hips      float64 `json:"hips"`
}

// CartItemRequest 购物车/心愿单条目请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
