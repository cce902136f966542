package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/williamhcy/stripe-payment-restful/internal/stripe"
)

type StatusHandler struct {
	stripe StripeCaller
}

func NewStatusHandler(s StripeCaller) *StatusHandler {
	return &StatusHandler{stripe: s}
}

type statusResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// APIStatus probes Stripe connectivity with an authenticated balance read.
func (h *StatusHandler) APIStatus(c echo.Context) error {
	res := h.stripe.CheckBalance(c.Request().Context())
	if !res.OK() {
		status := res.StatusCode
		if status == stripe.StatusTransportFailure {
			status = http.StatusBadGateway
		}
		return c.JSON(status, statusResponse{
			Status:     "error",
			Message:    res.ErrorMessage,
			StatusCode: status,
		})
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:     "success",
		Message:    "Stripe API connection successful",
		StatusCode: res.StatusCode,
	})
}

// Health is the process liveness probe; it never touches Stripe.
func (h *StatusHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
