package service

import (
	"testing"
	"time"

	"cafeteria_manager/constants"
	"cafeteria_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCompletedOrder(t *testing.T, db *gorm.DB, customerId uint, total float64, items ...model.OrderItem) {
	t.Helper()
	order := model.Order{
		PublicCode: GenerateOrderCode(),
		CustomerID: customerId,
		Total:      total,
		Status:     constants.ORDER_STATUS_COMPLETED,
		Items:      items,
	}
	require.NoError(t, db.Create(&order).Error)
}

func TestGetDailySales(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	svc := NewAnalyticsService(db)

	seedCompletedOrder(t, db, customer.ID, 5.00)
	seedCompletedOrder(t, db, customer.ID, 7.50)

	// Pending orders do not count as sales.
	pending := model.Order{
		PublicCode: GenerateOrderCode(),
		CustomerID: customer.ID,
		Total:      99.00,
		Status:     constants.ORDER_STATUS_PENDING,
	}
	require.NoError(t, db.Create(&pending).Error)

	sales, err := svc.GetDailySales(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 12.50, sales.TotalSales)
	assert.Equal(t, int64(2), sales.OrderCount)
}

func TestGetPopularItemsRanksByQuantity(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	svc := NewAnalyticsService(db)

	seedCompletedOrder(t, db, customer.ID, 10.00,
		model.OrderItem{Name: "Coffee", Price: 2.50, Quantity: 3},
		model.OrderItem{Name: "Sandwich", Price: 5.00, Quantity: 1},
	)
	seedCompletedOrder(t, db, customer.ID, 5.00,
		model.OrderItem{Name: "Coffee", Price: 2.50, Quantity: 2},
	)

	items, err := svc.GetPopularItems(time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Coffee", items[0].Name)
	assert.Equal(t, 5, items[0].TotalQuantity)
	assert.Equal(t, 12.50, items[0].TotalRevenue)
	assert.Equal(t, "Sandwich", items[1].Name)
}

func TestGetCustomerMetrics(t *testing.T) {
	db := testDB(t)
	alice := seedCustomer(t, db)
	svc := NewAnalyticsService(db)

	bob := model.User{Username: "bob", Email: "bob@example.com", Password: "hashed", Role: constants.ROLE_CUSTOMER, Status: constants.USER_STATUS_ACTIVE}
	require.NoError(t, db.Create(&bob).Error)
	staff := model.User{Username: "staff", Email: "staff@example.com", Password: "hashed", Role: constants.ROLE_STAFF, Status: constants.USER_STATUS_ACTIVE}
	require.NoError(t, db.Create(&staff).Error)

	seedCompletedOrder(t, db, alice.ID, 5.00)

	metrics, err := svc.GetCustomerMetrics()
	require.NoError(t, err)
	assert.Equal(t, int64(2), metrics.TotalCustomers)
	assert.Equal(t, int64(1), metrics.ActiveCustomers)
	assert.Equal(t, 50.0, metrics.RetentionRate)
}

func TestGetInventoryAlerts(t *testing.T) {
	db := testDB(t)
	svc := NewAnalyticsService(db)

	low := model.MenuItem{Name: "Coffee", Slug: "coffee", Category: "beverages", Quantity: 2, Threshold: 5}
	fine := model.MenuItem{Name: "Sandwich", Slug: "sandwich", Category: "food", Quantity: 20, Threshold: 5}
	require.NoError(t, db.Create(&low).Error)
	require.NoError(t, db.Create(&fine).Error)

	alerts, err := svc.GetInventoryAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Coffee", alerts[0].Name)
}
