package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	stripe StripeCaller
}

func NewCustomerHandler(s StripeCaller) *CustomerHandler {
	return &CustomerHandler{stripe: s}
}

type createCustomerRequest struct {
	Email string `json:"email" form:"email"`
	Name  string `json:"name" form:"name"`
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is required"})
	}

	res := h.stripe.CreateCustomer(c.Request().Context(), req.Email, req.Name)
	if !res.OK() {
		return relayError(c, res)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"customer_id": res.Data["id"],
		"email":       res.Data["email"],
		"name":        res.Data["name"],
	})
}

func (h *CustomerHandler) List(c echo.Context) error {
	res := h.stripe.ListCustomers(c.Request().Context())
	if !res.OK() {
		return relayError(c, res)
	}
	return c.JSON(http.StatusOK, res.Data)
}
