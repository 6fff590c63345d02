package handlers

import (
	"net/http"

	"trimly/middleware"
	"trimly/models"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		ShopID      string  `json:"shopId" binding:"required"`
		ServiceName string  `json:"serviceName" binding:"required"`
		BookingDate string  `json:"bookingDate" binding:"required"`
		BookingTime string  `json:"bookingTime" binding:"required"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := h.Service.Create(booking.CreateBookingRequest{
		CustomerID:  middleware.RequesterID(c),
		ShopID:      input.ShopID,
		ServiceName: input.ServiceName,
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Price:       input.Price,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":           res.Booking,
		"estimatedWaitTime": res.EstimatedWaitTime,
		"message":           "Booking request submitted. You will be notified once the shop approves it.",
	})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status             string `json:"status" binding:"required"`
		CancellationReason string `json:"cancellationReason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.TransitionStatus(
		c.Param("id"),
		middleware.RequesterID(c),
		models.BookingStatus(input.Status),
		input.CancellationReason,
	)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// RescheduleBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var input struct {
		BookingDate string `json:"bookingDate"`
		BookingTime string `json:"bookingTime"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Reschedule(c.Param("id"), middleware.RequesterID(c), booking.RescheduleRequest{
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Status:      input.Status,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// GetUserBookings handles GET /api/bookings/user/:userId.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	bookings, err := h.Service.ListForCustomer(c.Param("userId"), middleware.RequesterID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetShopBookings handles GET /api/bookings/shop/:shopId.
func (h *BookingHandler) GetShopBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	bookings, err := h.Service.ListForShop(c.Param("shopId"), middleware.RequesterID(c), status)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
