package services

import (
	"sync"

	"fashion-platform/internal/models"
)

// SessionStateManager 会话状态管理器
// 每个已登录客户的购物车和心愿单，仅被该客户自己的请求修改。
// 登录时从客户记录恢复，登出时清空；不跨进程持久化
type SessionStateManager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

type sessionState struct {
	cart     []models.DisplayProduct
	wishlist []models.DisplayProduct
}

var (
	globalSessionManager *SessionStateManager
	sessionManagerOnce   sync.Once
)

// GetSessionStateManager 获取全局会话状态管理器（单例）
func GetSessionStateManager() *SessionStateManager {
	sessionManagerOnce.Do(func() {
		globalSessionManager = &SessionStateManager{
			sessions: make(map[string]*sessionState),
		}
	})
	return globalSessionManager
}

// NewSessionStateManager 创建独立实例（测试用）
func NewSessionStateManager() *SessionStateManager {
	return &SessionStateManager{sessions: make(map[string]*sessionState)}
}

func (m *SessionStateManager) state(customerID string) *sessionState {
	if s, ok := m.sessions[customerID]; ok {
		return s
	}
	s := &sessionState{}
	m.sessions[customerID] = s
	return s
}

// SetCart 整体替换购物车（登录恢复时使用）
func (m *SessionStateManager) SetCart(customerID string, items []models.DisplayProduct) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(customerID).cart = append([]models.DisplayProduct{}, items...)
}

// SetWishlist 整体替换心愿单（登录恢复时使用）
func (m *SessionStateManager) SetWishlist(customerID string, items []models.DisplayProduct) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(customerID).wishlist = append([]models.DisplayProduct{}, items...)
}

// Cart 当前购物车内容
func (m *SessionStateManager) Cart(customerID string) []models.DisplayProduct {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[customerID]; ok {
		return append([]models.DisplayProduct{}, s.cart...)
	}
	return []models.DisplayProduct{}
}

// Wishlist 当前心愿单内容
func (m *SessionStateManager) Wishlist(customerID string) []models.DisplayProduct {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[customerID]; ok {
		return append([]models.DisplayProduct{}, s.wishlist...)
	}
	return []models.DisplayProduct{}
}

// AddToCart 加入购物车，同名商品已存在时返回 false
func (m *SessionStateManager) AddToCart(customerID string, p models.DisplayProduct) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state(customerID)
	for _, item := range s.cart {
		if item.Name == p.Name {
			return false
		}
	}
	s.cart = append(s.cart, p)
	return true
}

// AddToWishlist 加入心愿单，同名商品已存在时返回 false
func (m *SessionStateManager) AddToWishlist(customerID string, p models.DisplayProduct) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state(customerID)
	for _, item := range s.wishlist {
		if item.Name == p.Name {
			return false
		}
	}
	s.wishlist = append(s.wishlist, p)
	return true
}

// RemoveFromCart 按商品ID移除，返回是否移除了条目
func (m *SessionStateManager) RemoveFromCart(customerID, productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state(customerID)
	kept, removed := removeByID(s.cart, productID)
	s.cart = kept
	return removed
}

// RemoveFromWishlist 按商品ID移除，返回是否移除了条目
func (m *SessionStateManager) RemoveFromWishlist(customerID, productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state(customerID)
	kept, removed := removeByID(s.wishlist, productID)
	s.wishlist = kept
	return removed
}

// CartTotal 购物车原始价格合计
func (m *SessionStateManager) CartTotal(customerID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	if s, ok := m.sessions[customerID]; ok {
		for _, item := range s.cart {
			total += item.RawPrice
		}
	}
	return total
}

// Clear 清空客户会话状态（登出）
func (m *SessionStateManager) Clear(customerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, customerID)
}

func removeByID(items []models.DisplayProduct, productID string) ([]models.DisplayProduct, bool) {
	kept := items[:0]
	removed := false
	for _, item := range items {
		if item.ID == productID && !removed {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}
