package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CheckoutHandler struct {
	stripe StripeCaller
}

func NewCheckoutHandler(s StripeCaller) *CheckoutHandler {
	return &CheckoutHandler{stripe: s}
}

type createSessionRequest struct {
	Amount        decimal.Decimal `json:"amount" form:"amount"`
	Currency      string          `json:"currency" form:"currency"`
	CustomerName  string          `json:"customer_name" form:"customer_name"`
	CustomerEmail string          `json:"customer_email" form:"customer_email"`
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if !req.Amount.IsPositive() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amount"})
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	// Stripe substitutes the session id into the success URL itself.
	root := c.Scheme() + "://" + c.Request().Host
	successURL := root + "/payment-success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := root + "/payment-cancel"

	res := h.stripe.CreateCheckoutSession(c.Request().Context(), req.Amount, req.Currency, successURL, cancelURL)
	if !res.OK() {
		return relayError(c, res)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"checkout_url": res.Data["url"],
		"session_id":   res.Data["id"],
	})
}

func (h *CheckoutHandler) Success(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id required"})
	}

	res := h.stripe.GetCheckoutSession(c.Request().Context(), sessionID)
	if !res.OK() {
		return relayError(c, res)
	}

	return c.Render(http.StatusOK, "success.html", map[string]any{
		"PaymentID": paymentIntentID(res.Data["payment_intent"]),
	})
}

func (h *CheckoutHandler) Cancel(c echo.Context) error {
	return c.Render(http.StatusOK, "cancel.html", nil)
}

// paymentIntentID handles both the collapsed (id string) and expanded
// (object) forms of a session's payment_intent field.
func paymentIntentID(v any) string {
	switch pi := v.(type) {
	case string:
		return pi
	case map[string]any:
		if id, ok := pi["id"].(string); ok {
			return id
		}
	}
	return ""
}
