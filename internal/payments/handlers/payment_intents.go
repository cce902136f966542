package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/williamhcy/stripe-payment-restful/internal/stripe"
)

type PaymentIntentHandler struct {
	stripe StripeCaller
}

func NewPaymentIntentHandler(s StripeCaller) *PaymentIntentHandler {
	return &PaymentIntentHandler{stripe: s}
}

type createIntentRequest struct {
	Amount   decimal.Decimal `json:"amount" form:"amount"`
	Currency string          `json:"currency" form:"currency"`
}

type updateIntentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" form:"payment_intent_id"`
	PaymentMethod   string `json:"payment_method" form:"payment_method"`
}

func (h *PaymentIntentHandler) Create(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if !req.Amount.IsPositive() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amount"})
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	res := h.stripe.CreatePaymentIntent(c.Request().Context(), req.Amount, req.Currency)
	if !res.OK() {
		return relayError(c, res)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"client_secret":     res.Data["client_secret"],
		"payment_intent_id": res.Data["id"],
	})
}

func (h *PaymentIntentHandler) Update(c echo.Context) error {
	var req updateIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if req.PaymentIntentID == "" || req.PaymentMethod == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Payment intent ID and payment method required"})
	}

	res := h.stripe.UpdatePaymentIntent(c.Request().Context(), req.PaymentIntentID, req.PaymentMethod)
	if !res.OK() {
		return relayError(c, res)
	}
	return c.JSON(http.StatusOK, intentDetails(res))
}

func (h *PaymentIntentHandler) Confirm(c echo.Context) error {
	var req updateIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if req.PaymentIntentID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Payment intent ID required"})
	}

	res := h.stripe.ConfirmPaymentIntent(c.Request().Context(), req.PaymentIntentID, req.PaymentMethod)
	if !res.OK() {
		return relayError(c, res)
	}
	return c.JSON(http.StatusOK, intentDetails(res))
}

func (h *PaymentIntentHandler) Retrieve(c echo.Context) error {
	res := h.stripe.RetrievePaymentIntent(c.Request().Context(), c.Param("id"))
	if !res.OK() {
		return relayError(c, res)
	}
	return c.JSON(http.StatusOK, res.Data)
}

func (h *PaymentIntentHandler) List(c echo.Context) error {
	res := h.stripe.ListPaymentIntents(c.Request().Context())
	if !res.OK() {
		return relayError(c, res)
	}
	return c.JSON(http.StatusOK, res.Data)
}

// intentDetails reshapes a full payment intent into the fields the browser
// tracks across the confirmation flow.
func intentDetails(res stripe.Result) map[string]any {
	return map[string]any{
		"status":            res.Data["status"],
		"amount":            res.Data["amount"],
		"currency":          res.Data["currency"],
		"payment_method":    res.Data["payment_method"],
		"payment_intent_id": res.Data["id"],
	}
}
