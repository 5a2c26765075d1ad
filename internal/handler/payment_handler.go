package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/response"
)

// PaymentHandler wires HTTP endpoints to the payment and receipt services.
type PaymentHandler struct {
	payments *service.PaymentService
	receipts *service.ReceiptService
}

// NewPaymentHandler constructs a payment handler.
func NewPaymentHandler(payments *service.PaymentService, receipts *service.ReceiptService) *PaymentHandler {
	return &PaymentHandler{payments: payments, receipts: receipts}
}

// CreateIntent godoc
// @Summary Create payment intent
// @Description Authorizes a charge and returns the client secret
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body models.PaymentIntentRequest true "Intent payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payment intent payload"))
		return
	}

	res, err := h.payments.CreateIntent(c.Request.Context(), claims.Email, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// Settle godoc
// @Summary Record a completed payment
// @Description Persists the payment and clears the settled selections
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body models.SettlementRequest true "Settlement payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /payments [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settlement payload"))
		return
	}

	payment, err := h.payments.Settle(c.Request.Context(), claims.Email, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}

// List godoc
// @Summary List payment history
// @Tags Payments
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	payments, err := h.payments.List(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments, nil)
}

// ListRecent godoc
// @Summary List payment history newest first
// @Tags Payments
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /payments/short [get]
func (h *PaymentHandler) ListRecent(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	payments, err := h.payments.ListRecent(c.Request.Context(), claims.Email, 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments, nil)
}

// ReceiptURL godoc
// @Summary Get a receipt download link
// @Description Returns a signed, expiring download token for the caller's receipt
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /payments/{id}/receipt [get]
func (h *PaymentHandler) ReceiptURL(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	token, expiresAt, err := h.receipts.SignedURL(c.Request.Context(), c.Param("id"), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"url":       "/receipts/download?token=" + token,
		"expiresAt": expiresAt,
	}, nil)
}

// DownloadReceipt godoc
// @Summary Download a receipt
// @Description Streams the receipt PDF for a valid signed token
// @Tags Payments
// @Produce application/pdf
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /receipts/download [get]
func (h *PaymentHandler) DownloadReceipt(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}

	file, filename, err := h.receipts.Open(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}

// Export godoc
// @Summary Export payment statement
// @Description Renders the caller's payment history as CSV or PDF
// @Tags Payments
// @Produce text/csv
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /payments/export [get]
func (h *PaymentHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	data, contentType, filename, err := h.receipts.Export(c.Request.Context(), claims.Email, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
