package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/williamhcy/stripe-payment-restful/internal/stripe"
)

// StripeCaller is the slice of the Stripe client the handlers depend on.
// Tests substitute a fake.
type StripeCaller interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) stripe.Result
	CreateCustomer(ctx context.Context, email, name string) stripe.Result
	UpdatePaymentIntent(ctx context.Context, id, paymentMethod string) stripe.Result
	ConfirmPaymentIntent(ctx context.Context, id, paymentMethod string) stripe.Result
	RetrievePaymentIntent(ctx context.Context, id string) stripe.Result
	ListPaymentIntents(ctx context.Context) stripe.Result
	ListCustomers(ctx context.Context) stripe.Result
	CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency, successURL, cancelURL string) stripe.Result
	GetCheckoutSession(ctx context.Context, id string) stripe.Result
	CheckBalance(ctx context.Context) stripe.Result
}

// relayError turns a failed bridge result into the outbound JSON error. A
// transport failure never produced a real upstream status, so it maps to 502.
func relayError(c echo.Context, res stripe.Result) error {
	status := res.StatusCode
	if status == stripe.StatusTransportFailure {
		status = http.StatusBadGateway
	}
	return c.JSON(status, map[string]string{"error": res.ErrorMessage})
}
