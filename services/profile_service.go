package services

import (
	"fmt"
	"strings"

	"fashion-platform/internal/models"

	"gorm.io/gorm"
)

// NoActivityProfile 客户无任何历史活动时的固定画像
const NoActivityProfile = "No activity data found"

// recentActivityRows 会话/交易各取最近N行（按表内行序，不按时间排序）
const recentActivityRows = 7

// CustomerProfileService 客户画像服务
// 把客户最近的搜索、点击、购买、心愿单聚合成一段描述文本，作为检索查询
type CustomerProfileService struct {
	db *gorm.DB
}

// NewCustomerProfileService 创建画像服务实例
func NewCustomerProfileService(db *gorm.DB) *CustomerProfileService {
	return &CustomerProfileService{db: db}
}

// BuildProfile 构建客户画像文本
// 任何聚合失败都转成错误描述字符串返回，不向上抛错；
// 调用方通过 IsUnusableProfile 判断画像是否可用
func (s *CustomerProfileService) BuildProfile(customerID string) string {
	var parts []string

	// 最近会话：搜索词 + 点击商品
	var sessions []models.SessionLog
	err := s.db.Where("customer_id = ?", customerID).
		Order("id").Limit(recentActivityRows).Find(&sessions).Error
	if err != nil {
		return fmt.Sprintf("Error building profile: %v", err)
	}

	if len(sessions) > 0 {
		searches := distinctQueries(sessions)
		if len(searches) > 0 {
			parts = append(parts, fmt.Sprintf("Searched for: %s.", strings.Join(searches, ", ")))
		}

		var clickedIDs []string
		for _, sess := range sessions {
			clickedIDs = append(clickedIDs, ParseIDList(sess.ClickedProductIDs)...)
		}
		if len(clickedIDs) > 0 {
			names, err := s.resolveProductNames(clickedIDs)
			if err != nil {
				return fmt.Sprintf("Error building profile: %v", err)
			}
			parts = append(parts, fmt.Sprintf("Interested in: %s.", names))
		}
	}

	// 最近交易：购买商品
	var transactions []models.Transaction
	err = s.db.Where("customer_id = ?", customerID).
		Order("id").Limit(recentActivityRows).Find(&transactions).Error
	if err != nil {
		return fmt.Sprintf("Error building profile: %v", err)
	}

	var purchasedIDs []string
	for _, tx := range transactions {
		purchasedIDs = append(purchasedIDs, ParseIDList(tx.PurchasedProductIDs)...)
	}
	if len(purchasedIDs) > 0 {
		names, err := s.resolveProductNames(purchasedIDs)
		if err != nil {
			return fmt.Sprintf("Error building profile: %v", err)
		}
		parts = append(parts, fmt.Sprintf("Purchased: %s.", names))
	}

	// 心愿单：不限行数
	var customers []models.Customer
	err = s.db.Where("customer_id = ?", customerID).Find(&customers).Error
	if err != nil {
		return fmt.Sprintf("Error building profile: %v", err)
	}

	var wishlistIDs []string
	for _, cust := range customers {
		wishlistIDs = append(wishlistIDs, ParseIDList(cust.WishlistItems)...)
	}
	if len(wishlistIDs) > 0 {
		names, err := s.resolveProductNames(wishlistIDs)
		if err != nil {
			return fmt.Sprintf("Error building profile: %v", err)
		}
		parts = append(parts, fmt.Sprintf("Wants: %s.", names))
	}

	if len(parts) == 0 {
		return NoActivityProfile
	}
	return strings.Join(parts, " ")
}

// resolveProductNames 将商品ID解析为名称，无法解析的ID静默丢弃
func (s *CustomerProfileService) resolveProductNames(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}
	var names []string
	err := s.db.Model(&models.Product{}).
		Where("product_id IN ?", ids).
		Pluck("product_name", &names).Error
	if err != nil {
		return "", err
	}
	return strings.Join(names, ", "), nil
}

// distinctQueries 按首次出现顺序去重的非空搜索词
func distinctQueries(sessions []models.SessionLog) []string {
	seen := make(map[string]bool, len(sessions))
	var out []string
	for _, sess := range sessions {
		q := strings.TrimSpace(sess.SearchQueries)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}

// IsUnusableProfile 画像为空或带错误标记时返回 true
// 此时不应发起 embedding 调用，推荐结果直接为空
func IsUnusableProfile(profile string) bool {
	return strings.Contains(profile, "No activity data") || strings.Contains(profile, "Error")
}
