package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/middleware"
	"cafeteria_manager/model"
	"cafeteria_manager/service"
	"cafeteria_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGateway struct {
	intents int
}

func (g *stubGateway) CreatePaymentIntent(amount float64, currency string) (*service.PaymentIntent, error) {
	g.intents++
	return &service.PaymentIntent{
		Id:           fmt.Sprintf("pi_test_%d", g.intents),
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", g.intents),
	}, nil
}

func (g *stubGateway) CancelPaymentIntent(id string) error { return nil }

type nullSMTP struct{}

func (nullSMTP) DialAndSend(m ...*gomail.Message) error { return nil }

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db

	helper.JwtSecret = []byte("test-secret")

	mailer := &service.Mailer{From: "noreply@cafeteria.test", Sender: nullSMTP{}}
	hub := service.NewHub()
	Init(hub, service.NewOrderService(db, hub, &stubGateway{}, mailer), mailer, service.NewAnalyticsService(db))

	app := fiber.New()
	app.Post("/api/v1/orders", middleware.Protected(), validate.CreateOrder(), CreateOrder)
	app.Get("/api/v1/orders", middleware.Protected(), GetMyOrders)
	app.Get("/api/v1/orders/all", middleware.Protected(), middleware.StaffOnly(), GetAllOrders)
	app.Put("/api/v1/orders/:orderId/status", middleware.Protected(), middleware.StaffOnly(), validate.GetById("orderId"), validate.UpdateOrderStatus(), UpdateOrderStatus)
	app.Get("/api/v1/admin/dashboard-stats", middleware.Protected(), middleware.AdminOnly(), GetDashboardStats)
	return app
}

func createTestUser(t *testing.T, role string) (model.User, string) {
	t.Helper()

	user := model.User{
		Username: role + "-user",
		Email:    role + "@example.com",
		Password: "hashed",
		Role:     role,
		Status:   constants.USER_STATUS_ACTIVE,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	require.NoError(t, err)
	return user, token
}

func jsonRequest(method, target, token string, payload any) *http.Request {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateOrderEndpoint(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, constants.ROLE_CUSTOMER)

	payload := model.CreateOrderInput{
		Items: []model.OrderItemInput{
			{MenuItemId: 1, Name: "Coffee", Price: 2.50, Quantity: 2},
		},
		Total: 5.00,
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/orders", token, payload), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["clientSecret"])

	order := data["order"].(map[string]any)
	assert.Equal(t, constants.ORDER_STATUS_PENDING, order["status"])
	assert.Equal(t, 5.00, order["total"])
	assert.NotEmpty(t, order["publicCode"])
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/orders", "", model.CreateOrderInput{}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, constants.ROLE_CUSTOMER)

	payload := model.CreateOrderInput{Items: nil, Total: 0}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/orders", token, payload), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	app := setupTestApp(t)
	customer, customerToken := createTestUser(t, constants.ROLE_CUSTOMER)
	_, staffToken := createTestUser(t, constants.ROLE_STAFF)

	order, _, err := Orders.CreateOrder(customer.ID, model.CreateOrderInput{
		Items: []model.OrderItemInput{{Name: "Coffee", Price: 2.50, Quantity: 2}},
		Total: 5.00,
	})
	require.NoError(t, err)

	target := fmt.Sprintf("/api/v1/orders/%d/status", order.ID)
	payload := model.UpdateOrderStatusInput{Status: constants.ORDER_STATUS_CANCELLED}

	// Customers cannot touch the status endpoint.
	resp, err := app.Test(jsonRequest(http.MethodPut, target, customerToken, payload), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, target, staffToken, payload), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, constants.ORDER_STATUS_CANCELLED, data["status"])
}

func TestUpdateOrderStatusUnknownId(t *testing.T) {
	app := setupTestApp(t)
	_, staffToken := createTestUser(t, constants.ROLE_STAFF)

	payload := model.UpdateOrderStatusInput{Status: constants.ORDER_STATUS_READY}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/v1/orders/9999/status", staffToken, payload), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	app := setupTestApp(t)
	_, staffToken := createTestUser(t, constants.ROLE_STAFF)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/v1/orders/1/status", staffToken, fiber.Map{"status": "eaten"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAllOrdersPagination(t *testing.T) {
	app := setupTestApp(t)
	customer, _ := createTestUser(t, constants.ROLE_CUSTOMER)
	_, staffToken := createTestUser(t, constants.ROLE_STAFF)

	input := model.CreateOrderInput{
		Items: []model.OrderItemInput{{Name: "Coffee", Price: 2.50, Quantity: 1}},
		Total: 2.50,
	}
	for i := 0; i < 3; i++ {
		_, _, err := Orders.CreateOrder(customer.ID, input)
		require.NoError(t, err)
	}

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/orders/all?limit=2&page=1", staffToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(3), data["totalCount"])
	require.Len(t, data["rows"].([]any), 2)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/orders/all?limit=2&page=2", staffToken, nil), -1)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	data = body["data"].(map[string]any)
	require.Len(t, data["rows"].([]any), 1)

	// Without limit/page the full set comes back.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/orders/all", staffToken, nil), -1)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	data = body["data"].(map[string]any)
	require.Len(t, data["rows"].([]any), 3)
}

func TestDashboardStatsRevenueGrowth(t *testing.T) {
	app := setupTestApp(t)
	customer, _ := createTestUser(t, constants.ROLE_CUSTOMER)
	_, adminToken := createTestUser(t, constants.ROLE_ADMIN)

	today := model.Order{
		PublicCode: service.GenerateOrderCode(),
		CustomerID: customer.ID,
		Total:      10.00,
		Status:     constants.ORDER_STATUS_COMPLETED,
	}
	require.NoError(t, database.DB.Create(&today).Error)

	yesterday := model.Order{
		PublicCode: service.GenerateOrderCode(),
		CustomerID: customer.ID,
		Total:      5.00,
		Status:     constants.ORDER_STATUS_COMPLETED,
	}
	yesterday.CreatedAt = time.Now().AddDate(0, 0, -1)
	require.NoError(t, database.DB.Create(&yesterday).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/admin/dashboard-stats", adminToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)

	daily := data["dailySales"].(map[string]any)
	assert.Equal(t, 10.00, daily["totalSales"])
	assert.Equal(t, 100.0, data["revenueGrowth"])
}

func TestGetMyOrdersReturnsOwnOrdersOnly(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, constants.ROLE_CUSTOMER)

	bob := model.User{Username: "bob", Email: "bob@example.com", Password: "hashed", Role: constants.ROLE_CUSTOMER, Status: constants.USER_STATUS_ACTIVE}
	require.NoError(t, database.DB.Create(&bob).Error)

	input := model.CreateOrderInput{
		Items: []model.OrderItemInput{{Name: "Coffee", Price: 2.50, Quantity: 1}},
		Total: 2.50,
	}
	_, _, err := Orders.CreateOrder(alice.ID, input)
	require.NoError(t, err)
	_, _, err = Orders.CreateOrder(bob.ID, input)
	require.NoError(t, err)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/orders", aliceToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	order := data[0].(map[string]any)
	assert.Equal(t, float64(alice.ID), order["customerId"])
}
