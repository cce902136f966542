package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PagesHandler renders the two entry pages. The publishable key is safe to
// expose to the browser; Stripe.js needs it for tokenization.
type PagesHandler struct {
	publishableKey string
}

func NewPagesHandler(publishableKey string) *PagesHandler {
	return &PagesHandler{publishableKey: publishableKey}
}

func (h *PagesHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", map[string]any{
		"PublishableKey": h.publishableKey,
	})
}

func (h *PagesHandler) Checkout(c echo.Context) error {
	return c.Render(http.StatusOK, "checkout.html", map[string]any{
		"PublishableKey": h.publishableKey,
	})
}
