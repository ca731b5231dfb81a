package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtbook/services/booking"
	"courtbook/utils"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

type createBookingInput struct {
	UserName    string    `json:"userName" binding:"required"`
	CourtID     string    `json:"courtId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	RacketCount int       `json:"racketCount"`
	ShoeCount   int       `json:"shoeCount"`
	CoachID     string    `json:"coachId"`
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), booking.CreateBookingRequest{
		UserName:    input.UserName,
		CourtID:     input.CourtID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		RacketCount: input.RacketCount,
		ShoeCount:   input.ShoeCount,
		CoachID:     input.CoachID,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

type previewPriceInput struct {
	CourtID     string    `json:"courtId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	RacketCount int       `json:"racketCount"`
	ShoeCount   int       `json:"shoeCount"`
}

// PreviewPriceHandler handles POST /api/bookings/preview-price.
func (h *BookingHandler) PreviewPriceHandler(c *gin.Context) {
	var input previewPriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	breakdown, err := h.Service.PreviewPrice(c.Request.Context(), booking.PreviewRequest{
		CourtID:     input.CourtID,
		StartTime:   input.StartTime,
		RacketCount: input.RacketCount,
		ShoeCount:   input.ShoeCount,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// ListBookingsHandler handles GET /api/bookings?date=YYYY-MM-DD.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			utils.JSONError(c, http.StatusBadRequest, booking.ErrInvalidDate.Error(), "")
			return
		}
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// respondBookingError maps service errors onto the HTTP taxonomy:
// validation 400, not-found 404, resource conflict 409, everything
// else 500 with a generic body.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	switch {
	case errors.Is(err, booking.ErrInvalidInterval):
		utils.JSONError(c, http.StatusBadRequest, "End time must be after start time", "")
	case errors.Is(err, booking.ErrCourtNotFound):
		utils.JSONError(c, http.StatusNotFound, "Court not found", "")
	case errors.Is(err, booking.ErrCoachUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "Coach not available", "")
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, conflict.Message, "")
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
