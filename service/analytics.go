package service

import (
	"time"

	"cafeteria_manager/constants"
	"cafeteria_manager/model"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type DailySales struct {
	TotalSales float64 `json:"totalSales"`
	OrderCount int64   `json:"orderCount"`
}

func (s *AnalyticsService) GetDailySales(date time.Time) (DailySales, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	var result DailySales
	err := s.DB.Model(&model.Order{}).
		Where("created_at BETWEEN ? AND ? AND status = ?", start, end, constants.ORDER_STATUS_COMPLETED).
		Select("COALESCE(SUM(total), 0) AS total_sales, COUNT(*) AS order_count").
		Scan(&result).Error
	return result, err
}

type SalesPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// GetSalesByDay feeds the admin dashboard chart.
func (s *AnalyticsService) GetSalesByDay() ([]SalesPoint, error) {
	var points []SalesPoint
	err := s.DB.Raw(`
        SELECT to_char(created_at, 'YYYY-MM-DD') AS date, SUM(total) AS sales
        FROM orders
        GROUP BY to_char(created_at, 'YYYY-MM-DD')
        ORDER BY date
    `).Scan(&points).Error
	return points, err
}

type PopularItem struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

func (s *AnalyticsService) GetPopularItems(start, end time.Time) ([]PopularItem, error) {
	var items []PopularItem
	err := s.DB.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at BETWEEN ? AND ?", start, end).
		Select("order_items.name AS name, SUM(order_items.quantity) AS total_quantity, SUM(order_items.price * order_items.quantity) AS total_revenue").
		Group("order_items.name").
		Order("total_quantity DESC").
		Limit(10).
		Scan(&items).Error
	return items, err
}

type CustomerMetrics struct {
	TotalCustomers  int64   `json:"totalCustomers"`
	ActiveCustomers int64   `json:"activeCustomers"`
	RetentionRate   float64 `json:"retentionRate"`
}

func (s *AnalyticsService) GetCustomerMetrics() (CustomerMetrics, error) {
	var metrics CustomerMetrics
	if err := s.DB.Model(&model.User{}).
		Where("role = ?", constants.ROLE_CUSTOMER).
		Count(&metrics.TotalCustomers).Error; err != nil {
		return metrics, err
	}
	if err := s.DB.Model(&model.Order{}).
		Distinct("customer_id").
		Count(&metrics.ActiveCustomers).Error; err != nil {
		return metrics, err
	}
	if metrics.TotalCustomers > 0 {
		metrics.RetentionRate = float64(metrics.ActiveCustomers) / float64(metrics.TotalCustomers) * 100
	}
	return metrics, nil
}

// GetInventoryAlerts lists menu items at or below their restock threshold.
func (s *AnalyticsService) GetInventoryAlerts() ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := s.DB.Where("quantity <= threshold").Find(&items).Error
	return items, err
}
