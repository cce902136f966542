package stripe

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Stripe lists are capped at the ten most recent records; the demo UI never
// pages further.
const listLimit = "10"

// MinorUnits converts a major-unit amount (e.g. dollars) to the integer
// minor-unit amount (cents) the Stripe API expects. Fractional cents round
// half away from zero, so 19.999 becomes 2000.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (c *Client) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) Result {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(MinorUnits(amount), 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("automatic_payment_methods[allow_redirects]", "always")
	form.Set("metadata[integration_check]", "accept_a_payment")
	return c.Call(ctx, http.MethodPost, "payment_intents", form)
}

func (c *Client) CreateCustomer(ctx context.Context, email, name string) Result {
	form := url.Values{}
	form.Set("email", email)
	if name != "" {
		form.Set("name", name)
	}
	return c.Call(ctx, http.MethodPost, "customers", form)
}

// UpdatePaymentIntent attaches a payment method to an existing intent. This
// does not confirm the intent; ConfirmPaymentIntent does.
func (c *Client) UpdatePaymentIntent(ctx context.Context, id, paymentMethod string) Result {
	form := url.Values{}
	form.Set("payment_method", paymentMethod)
	return c.Call(ctx, http.MethodPost, "payment_intents/"+url.PathEscape(id), form)
}

func (c *Client) ConfirmPaymentIntent(ctx context.Context, id, paymentMethod string) Result {
	form := url.Values{}
	if paymentMethod != "" {
		form.Set("payment_method", paymentMethod)
	}
	return c.Call(ctx, http.MethodPost, "payment_intents/"+url.PathEscape(id)+"/confirm", form)
}

func (c *Client) RetrievePaymentIntent(ctx context.Context, id string) Result {
	return c.Call(ctx, http.MethodGet, "payment_intents/"+url.PathEscape(id), nil)
}

func (c *Client) ListPaymentIntents(ctx context.Context) Result {
	return c.Call(ctx, http.MethodGet, "payment_intents?limit="+listLimit, nil)
}

func (c *Client) ListCustomers(ctx context.Context) Result {
	return c.Call(ctx, http.MethodGet, "customers?limit="+listLimit, nil)
}

// CreateCheckoutSession opens a hosted Stripe Checkout session for a single
// ad-hoc line item. successURL and cancelURL are where Stripe sends the
// browser afterwards.
func (c *Client) CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency, successURL, cancelURL string) Result {
	form := url.Values{}
	form.Set("payment_method_types[0]", "card")
	form.Set("payment_method_types[1]", "alipay")
	form.Set("payment_method_types[2]", "wechat_pay")
	form.Set("payment_method_options[wechat_pay][client]", "web")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(currency))
	form.Set("line_items[0][price_data][product_data][name]", "Payment")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(MinorUnits(amount), 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("metadata[integration_check]", "accept_a_payment")
	return c.Call(ctx, http.MethodPost, "checkout/sessions", form)
}

func (c *Client) GetCheckoutSession(ctx context.Context, id string) Result {
	return c.Call(ctx, http.MethodGet, "checkout/sessions/"+url.PathEscape(id), nil)
}

// CheckBalance hits the balance endpoint as a cheap authenticated
// connectivity probe.
func (c *Client) CheckBalance(ctx context.Context) Result {
	return c.Call(ctx, http.MethodGet, "balance", nil)
}
