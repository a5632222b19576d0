package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/logger"
	"football-data-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PayPalHandler handles the donation endpoints
type PayPalHandler struct {
	paymentService service.PaymentServiceInterface
}

// NewPayPalHandler creates a new PayPal handler
func NewPayPalHandler(paymentService service.PaymentServiceInterface) *PayPalHandler {
	return &PayPalHandler{paymentService: paymentService}
}

// Setup handles GET /paypal/setup
// @Summary PayPal client token
// @Description Public client id used to initialise the browser SDK
// @Tags paypal
// @Produce json
// @Success 200 {object} service.PayPalSetupResponse
// @Failure 500 {object} ErrorResponse
// @Router /paypal/setup [get]
func (h *PayPalHandler) Setup(c *gin.Context) {
	resp, err := h.paymentService.Setup()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to setup PayPal", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /paypal/order
// @Summary Create donation order
// @Tags paypal
// @Accept json
// @Produce json
// @Param order body service.CreateOrderRequest true "Donation amount, currency and intent"
// @Success 200 {object} service.CreateOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 500 {object} ErrorResponse "Payment creation failed"
// @Router /paypal/order [post]
func (h *PayPalHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.paymentService.CreateOrder(c.Request.Context(), &req, requestRoot(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid amount"})
		case apperrors.IsValidation(err):
			abortWithError(c, http.StatusBadRequest, "Invalid request", err)
		default:
			abortWithError(c, http.StatusInternalServerError, "Payment creation failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CaptureOrder handles POST /paypal/order/:id/capture
// @Summary Capture donation order
// @Description Capture an approved order; an optional payer id must match the approving payer
// @Tags paypal
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param payer body service.CaptureOrderRequest false "Payer"
// @Success 200 {object} service.CaptureOrderResponse
// @Failure 500 {object} ErrorResponse "Payment execution failed"
// @Router /paypal/order/{id}/capture [post]
func (h *PayPalHandler) CaptureOrder(c *gin.Context) {
	var req service.CaptureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("ignoring unreadable capture body")
	}

	resp, err := h.paymentService.CaptureOrder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Payment execution failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// requestRoot returns the scheme and host the client used, with a trailing slash
func requestRoot(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + c.Request.Host + "/"
}
