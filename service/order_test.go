package service

import (
	"errors"
	"fmt"
	"testing"

	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGateway struct {
	createErr    error
	cancelled    []string
	nextIntent   int
	lastAmount   float64
	lastCurrency string
}

func (g *fakeGateway) CreatePaymentIntent(amount float64, currency string) (*PaymentIntent, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.nextIntent++
	g.lastAmount = amount
	g.lastCurrency = currency
	return &PaymentIntent{
		Id:           fmt.Sprintf("pi_test_%d", g.nextIntent),
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", g.nextIntent),
	}, nil
}

func (g *fakeGateway) CancelPaymentIntent(id string) error {
	g.cancelled = append(g.cancelled, id)
	return nil
}

type recordingNotifier struct {
	userEvents  map[uint][]Event
	staffEvents []Event
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{userEvents: make(map[uint][]Event)}
}

func (n *recordingNotifier) NotifyUser(userId uint, event Event) {
	n.userEvents[userId] = append(n.userEvents[userId], event)
}

func (n *recordingNotifier) NotifyStaff(event Event) {
	n.staffEvents = append(n.staffEvents, event)
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, templateName string, data any) error {
	m.sent = append(m.sent, templateName+" -> "+to)
	return nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	user := model.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
		Role:     constants.ROLE_CUSTOMER,
		Status:   constants.USER_STATUS_ACTIVE,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func coffeeOrderInput() model.CreateOrderInput {
	return model.CreateOrderInput{
		Items: []model.OrderItemInput{
			{MenuItemId: 1, Name: "Coffee", Price: 2.50, Quantity: 2},
		},
		Total: 5.00,
	}
}

func TestCreateOrderPersistsPendingOrder(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	gateway := &fakeGateway{}
	notifier := newRecordingNotifier()
	mailer := &recordingMailer{}
	svc := NewOrderService(db, notifier, gateway, mailer)

	order, clientSecret, err := svc.CreateOrder(customer.ID, coffeeOrderInput())
	require.NoError(t, err)

	assert.Equal(t, constants.ORDER_STATUS_PENDING, order.Status)
	assert.Equal(t, "pi_test_1", order.PaymentIntentId)
	assert.Equal(t, "pi_test_1_secret", clientSecret)
	assert.Equal(t, 5.00, gateway.lastAmount)
	assert.Equal(t, "usd", gateway.lastCurrency)
	assert.NotEmpty(t, order.PublicCode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Coffee", order.Items[0].Name)

	var persisted model.Order
	require.NoError(t, db.Preload("Items").First(&persisted, order.ID).Error)
	assert.Equal(t, constants.ORDER_STATUS_PENDING, persisted.Status)
	assert.Len(t, persisted.Items, 1)
}

func TestCreateOrderNotifiesStaffAndMailsCustomer(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	notifier := newRecordingNotifier()
	mailer := &recordingMailer{}
	svc := NewOrderService(db, notifier, &fakeGateway{}, mailer)

	_, _, err := svc.CreateOrder(customer.ID, coffeeOrderInput())
	require.NoError(t, err)

	require.Len(t, notifier.staffEvents, 1)
	assert.Equal(t, constants.EVENT_NEW_ORDER, notifier.staffEvents[0].Type)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "orderConfirmation -> alice@example.com", mailer.sent[0])
}

func TestCreateOrderGatewayFailureAbortsCheckout(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	gateway := &fakeGateway{createErr: errors.New("card network down")}
	svc := NewOrderService(db, newRecordingNotifier(), gateway, &recordingMailer{})

	order, _, err := svc.CreateOrder(customer.ID, coffeeOrderInput())
	require.Error(t, err)
	assert.Nil(t, order)

	var count int64
	db.Model(&model.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderCancelsIntentWhenPersistFails(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	gateway := &fakeGateway{}
	svc := NewOrderService(db, newRecordingNotifier(), gateway, &recordingMailer{})

	first, _, err := svc.CreateOrder(customer.ID, coffeeOrderInput())
	require.NoError(t, err)

	// Force a unique violation by reusing the first order's public code.
	dup := model.Order{
		PublicCode: first.PublicCode,
		CustomerID: customer.ID,
		Total:      5.00,
		Status:     constants.ORDER_STATUS_PENDING,
	}
	require.Error(t, db.Create(&dup).Error)

	// The service path: simulate the same failure by closing the database
	// underneath it.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	order, _, err := svc.CreateOrder(customer.ID, coffeeOrderInput())
	require.Error(t, err)
	assert.Nil(t, order)
	require.Len(t, gateway.cancelled, 1)
	assert.Equal(t, "pi_test_2", gateway.cancelled[0])
}

func TestUpdateOrderStatusOverwritesAnyStatus(t *testing.T) {
	db := testDB(t)
	customer := seedCustomer(t, db)
	notifier := newRecordingNotifier()
	mailer := &recordingMailer{}
	svc := NewOrderService(db, notifier, &fakeGateway{}, mailer)

	order, _, err := svc.CreateOrder(customer.ID, coffeeOrderInput())
	require.NoError(t, err)

	// Forward, backward, forward again. No transition table.
	for _, status := range []string{
		constants.ORDER_STATUS_COMPLETED,
		constants.ORDER_STATUS_PREPARING,
		constants.ORDER_STATUS_CANCELLED,
	} {
		updated, err := svc.UpdateOrderStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	var persisted model.Order
	require.NoError(t, db.First(&persisted, order.ID).Error)
	assert.Equal(t, constants.ORDER_STATUS_CANCELLED, persisted.Status)

	events := notifier.userEvents[customer.ID]
	require.Len(t, events, 3)
	for _, event := range events {
		assert.Equal(t, constants.EVENT_ORDER_STATUS_UPDATE, event.Type)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := testDB(t)
	svc := NewOrderService(db, newRecordingNotifier(), &fakeGateway{}, &recordingMailer{})

	_, err := svc.UpdateOrderStatus(9999, constants.ORDER_STATUS_READY)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
