package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Product 商品目录记录
// 目录数据由离线流程导入，服务端只读
type Product struct {
	ProductID         string         `json:"product_id" gorm:"column:product_id;primaryKey;type:varchar(20)"`
	ProductName       string         `json:"product_name" gorm:"not null"`
	Price             int            `json:"price" gorm:"not null"`
	Brand             string         `json:"brand"`
	Color             string         `json:"color"`
	GenderOrientation string         `json:"gender_orientation"`
	Rating            float64        `json:"rating"`
	NumberOfReviews   int            `json:"number_of_reviews"`
	TrendingScore     float64        `json:"trending_score"`
	Discount          string         `json:"discount"`
	Category          string         `json:"category"`
	Material          string         `json:"material"`
	Sizes             pq.StringArray `json:"sizes" gorm:"type:text[]"`
	Description       string         `json:"description"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ProductDetail 向量索引的并行明细记录
// 序号（ordinal）与索引中的向量位置一一对应，构建索引时固定
type ProductDetail struct {
	ProductID         string  `json:"Product_ID"`
	ProductName       string  `json:"Product_Name"`
	Price             int     `json:"Price"`
	Brand             string  `json:"Brand"`
	Color             string  `json:"Color"`
	GenderOrientation string  `json:"Gender_Orientation"`
	Rating            float64 `json:"Rating"`
	NumberOfReviews   int     `json:"Number_of_Reviews"`
	Category          string  `json:"Category"`
	Description       string  `json:"Description"`
	Material          string  `json:"Material"`
	Size              string  `json:"Size"`
}

// DisplayProduct 所有推荐/排序路径统一输出的展示结构
type DisplayProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	RawPrice    int     `json:"raw_price"`
	Brand       string  `json:"brand"`
	Color       string  `json:"color"`
	Gender      string  `json:"gender"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Material    string  `json:"material"`
	Size        string  `json:"size"`
}

// FormatPrice 格式化价格为展示字符串，千位分隔
// 例如 1250000 -> "IDR 1,250,000"
func FormatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return "IDR " + out
}
