package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"trimly/middleware"
	"trimly/models"
	"trimly/services/payment"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler exposes manual payment reconciliation over HTTP.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// SubmitManualPayment handles POST /api/payments/manual. The request is
// multipart form data so a proof image can ride along.
func (h *PaymentHandler) SubmitManualPayment(c *gin.Context) {
	bookingID := c.PostForm("bookingId")
	method := c.PostForm("method")
	transactionID := c.PostForm("transactionId")
	if bookingID == "" || method == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "bookingId and method are required")
		return
	}

	var amount float64
	if raw := c.PostForm("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "amount must be a number")
			return
		}
		amount = parsed
	}

	// Spool an attached proof image to a temp file for the blob store.
	var proofPath string
	if file, err := c.FormFile("proof"); err == nil && file != nil {
		proofPath = filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, proofPath); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to receive proof file", "")
			return
		}
		defer os.Remove(proofPath)
	}

	created, err := h.Service.SubmitManual(c.Request.Context(), payment.ManualPaymentRequest{
		BookingID:     bookingID,
		CustomerID:    middleware.RequesterID(c),
		Method:        models.PaymentMethod(method),
		TransactionID: transactionID,
		Amount:        amount,
		ProofFilePath: proofPath,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": created})
}

// ConfirmPayment handles POST /api/payments/confirm/:bookingId.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	res, err := h.Service.Confirm(c.Param("bookingId"), middleware.RequesterID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": res.Booking,
		"payment": res.Payment,
	})
}

// GetUserPayments handles GET /api/payments/user/:userId.
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	payments, err := h.Service.ListForCustomer(c.Param("userId"), middleware.RequesterID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
