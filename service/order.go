package service

import (
	"errors"
	"log"
	"strings"

	"cafeteria_manager/constants"
	"cafeteria_manager/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// Notifier is the push side of the Hub.
type Notifier interface {
	NotifyUser(userId uint, event Event)
	NotifyStaff(event Event)
}

// MailSender is the templated mail dispatch of the Mailer.
type MailSender interface {
	Send(to, templateName string, data any) error
}

// OrderService owns the order lifecycle: checkout, status changes and the
// side effects (staff push, customer push, email) hanging off both.
type OrderService struct {
	DB      *gorm.DB
	Hub     Notifier
	Gateway PaymentGateway
	Mailer  MailSender
}

func NewOrderService(db *gorm.DB, hub Notifier, gateway PaymentGateway, mailer MailSender) *OrderService {
	return &OrderService{DB: db, Hub: hub, Gateway: gateway, Mailer: mailer}
}

func GenerateOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateOrder requests a payment intent for the total, persists the order
// with status pending, and returns the order plus the gateway's client
// secret. A gateway failure aborts creation. A persistence failure after
// the intent exists triggers a compensating cancel so no orphaned intents
// are left at the provider.
func (s *OrderService) CreateOrder(customerId uint, input model.CreateOrderInput) (*model.Order, string, error) {
	intent, err := s.Gateway.CreatePaymentIntent(input.Total, "usd")
	if err != nil {
		return nil, "", err
	}

	order := model.Order{
		PublicCode:      GenerateOrderCode(),
		CustomerID:      customerId,
		Total:           input.Total,
		Status:          constants.ORDER_STATUS_PENDING,
		PaymentIntentId: intent.Id,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, model.OrderItem{
			MenuItemId: item.MenuItemId,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	if err := s.DB.Create(&order).Error; err != nil {
		if cancelErr := s.Gateway.CancelPaymentIntent(intent.Id); cancelErr != nil {
			log.Printf("failed to cancel payment intent %s: %v", intent.Id, cancelErr)
		}
		return nil, "", err
	}

	var customer model.User
	if err := s.DB.First(&customer, order.CustomerID).Error; err == nil {
		order.Customer = &customer
	}

	s.Hub.NotifyStaff(Event{Type: constants.EVENT_NEW_ORDER, Data: order})

	if order.Customer != nil {
		if err := s.Mailer.Send(order.Customer.Email, "orderConfirmation", &order); err != nil {
			log.Printf("order confirmation email failed for %s: %v", order.PublicCode, err)
		}
	}

	return &order, intent.ClientSecret, nil
}

// UpdateOrderStatus overwrites the status regardless of the current value.
// Staff rely on this to correct mistakes, so no transition table is
// enforced. The owning customer gets a push (no-op when not connected)
// and a best-effort email.
func (s *OrderService) UpdateOrderStatus(orderId uint, status string) (*model.Order, error) {
	var order model.Order
	if err := s.DB.Preload("Items").Preload("Customer").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status

	s.Hub.NotifyUser(order.CustomerID, Event{Type: constants.EVENT_ORDER_STATUS_UPDATE, Data: order})

	if order.Customer != nil {
		if err := s.Mailer.Send(order.Customer.Email, "orderStatusUpdate", &order); err != nil {
			log.Printf("status update email failed for %s: %v", order.PublicCode, err)
		}
	}

	return &order, nil
}
