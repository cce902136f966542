package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/williamhcy/stripe-payment-restful/internal/stripe"
)

// fakeStripe implements StripeCaller for testing. Calls counts every bridge
// invocation so validation tests can assert nothing went out.
type fakeStripe struct {
	Calls int

	CreatePaymentIntentFunc   func(ctx context.Context, amount decimal.Decimal, currency string) stripe.Result
	CreateCustomerFunc        func(ctx context.Context, email, name string) stripe.Result
	UpdatePaymentIntentFunc   func(ctx context.Context, id, paymentMethod string) stripe.Result
	ConfirmPaymentIntentFunc  func(ctx context.Context, id, paymentMethod string) stripe.Result
	RetrievePaymentIntentFunc func(ctx context.Context, id string) stripe.Result
	ListPaymentIntentsFunc    func(ctx context.Context) stripe.Result
	ListCustomersFunc         func(ctx context.Context) stripe.Result
	CreateCheckoutSessionFunc func(ctx context.Context, amount decimal.Decimal, currency, successURL, cancelURL string) stripe.Result
	GetCheckoutSessionFunc    func(ctx context.Context, id string) stripe.Result
	CheckBalanceFunc          func(ctx context.Context) stripe.Result
}

func okResult(data map[string]any) stripe.Result {
	return stripe.Result{Data: data, StatusCode: http.StatusOK}
}

func transportFailure() stripe.Result {
	return stripe.Result{StatusCode: stripe.StatusTransportFailure, ErrorMessage: "request failed: connection refused"}
}

func (f *fakeStripe) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) stripe.Result {
	f.Calls++
	if f.CreatePaymentIntentFunc != nil {
		return f.CreatePaymentIntentFunc(ctx, amount, currency)
	}
	return okResult(nil)
}

func (f *fakeStripe) CreateCustomer(ctx context.Context, email, name string) stripe.Result {
	f.Calls++
	if f.CreateCustomerFunc != nil {
		return f.CreateCustomerFunc(ctx, email, name)
	}
	return okResult(nil)
}

func (f *fakeStripe) UpdatePaymentIntent(ctx context.Context, id, paymentMethod string) stripe.Result {
	f.Calls++
	if f.UpdatePaymentIntentFunc != nil {
		return f.UpdatePaymentIntentFunc(ctx, id, paymentMethod)
	}
	return okResult(nil)
}

func (f *fakeStripe) ConfirmPaymentIntent(ctx context.Context, id, paymentMethod string) stripe.Result {
	f.Calls++
	if f.ConfirmPaymentIntentFunc != nil {
		return f.ConfirmPaymentIntentFunc(ctx, id, paymentMethod)
	}
	return okResult(nil)
}

func (f *fakeStripe) RetrievePaymentIntent(ctx context.Context, id string) stripe.Result {
	f.Calls++
	if f.RetrievePaymentIntentFunc != nil {
		return f.RetrievePaymentIntentFunc(ctx, id)
	}
	return okResult(nil)
}

func (f *fakeStripe) ListPaymentIntents(ctx context.Context) stripe.Result {
	f.Calls++
	if f.ListPaymentIntentsFunc != nil {
		return f.ListPaymentIntentsFunc(ctx)
	}
	return okResult(nil)
}

func (f *fakeStripe) ListCustomers(ctx context.Context) stripe.Result {
	f.Calls++
	if f.ListCustomersFunc != nil {
		return f.ListCustomersFunc(ctx)
	}
	return okResult(nil)
}

func (f *fakeStripe) CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency, successURL, cancelURL string) stripe.Result {
	f.Calls++
	if f.CreateCheckoutSessionFunc != nil {
		return f.CreateCheckoutSessionFunc(ctx, amount, currency, successURL, cancelURL)
	}
	return okResult(nil)
}

func (f *fakeStripe) GetCheckoutSession(ctx context.Context, id string) stripe.Result {
	f.Calls++
	if f.GetCheckoutSessionFunc != nil {
		return f.GetCheckoutSessionFunc(ctx, id)
	}
	return okResult(nil)
}

func (f *fakeStripe) CheckBalance(ctx context.Context) stripe.Result {
	f.Calls++
	if f.CheckBalanceFunc != nil {
		return f.CheckBalanceFunc(ctx)
	}
	return okResult(nil)
}

// newJSONContext builds an echo context carrying a JSON body.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return out
}
