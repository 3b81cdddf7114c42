package service

import (
	"math"

	"cafeteria_manager/config"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

type PaymentIntent struct {
	Id           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentGateway creates and cancels provider-side payment intents.
type PaymentGateway interface {
	CreatePaymentIntent(amount float64, currency string) (*PaymentIntent, error)
	CancelPaymentIntent(id string) error
}

type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	stripe.Key = config.Config("STRIPE_SECRET_KEY")
	return &StripeGateway{}
}

// CreatePaymentIntent converts the amount to cents and asks Stripe for an
// intent. The id and client secret come back unchanged.
func (g *StripeGateway) CreatePaymentIntent(amount float64, currency string) (*PaymentIntent, error) {
	if currency == "" {
		currency = "usd"
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &PaymentIntent{Id: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func (g *StripeGateway) CancelPaymentIntent(id string) error {
	_, err := paymentintent.Cancel(id, nil)
	return err
}
