package service

import (
	"testing"

	"cafeteria_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSMTP struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSMTP) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSendUnknownTemplate(t *testing.T) {
	mailer := &Mailer{From: "noreply@cafeteria.test", Sender: &fakeSMTP{}}

	err := mailer.Send("alice@example.com", "passwordReset", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown email template")
}

func TestSendOrderConfirmation(t *testing.T) {
	smtp := &fakeSMTP{}
	mailer := &Mailer{From: "noreply@cafeteria.test", Sender: smtp}

	order := model.Order{
		PublicCode: "ORD-AB12CD34",
		Total:      5.00,
		Items: []model.OrderItem{
			{Name: "Coffee", Price: 2.50, Quantity: 2},
		},
	}

	require.NoError(t, mailer.Send("alice@example.com", "orderConfirmation", &order))
	require.Len(t, smtp.sent, 1)

	msg := smtp.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Order Confirmation #ORD-AB12CD34"}, msg.GetHeader("Subject"))
}

func TestSendOTPCode(t *testing.T) {
	smtp := &fakeSMTP{}
	mailer := &Mailer{From: "noreply@cafeteria.test", Sender: smtp}

	err := mailer.Send("alice@example.com", "otpCode", struct{ Code string }{Code: "482913"})
	require.NoError(t, err)
	require.Len(t, smtp.sent, 1)
	assert.Equal(t, []string{"Your OTP Code"}, smtp.sent[0].GetHeader("Subject"))
}

func TestSendReturnsDeliveryError(t *testing.T) {
	smtp := &fakeSMTP{err: assert.AnError}
	mailer := &Mailer{From: "noreply@cafeteria.test", Sender: smtp}

	err := mailer.Send("alice@example.com", "otpCode", struct{ Code string }{Code: "482913"})
	assert.Error(t, err)
}
