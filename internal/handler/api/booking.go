package api

import (
	"errors"
	"net/http"

	"smartwash/internal/domain/booking"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/internal/handler/middleware"
	"smartwash/internal/pkg/metrics"
	"smartwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Book a washing slot, debiting the slot price from the wallet
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.bookingUseCase.Create(c.Request.Context(), userID, req.LocationID, req.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLocationUnavailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location is not available",
			})
		case errors.Is(err, usecase.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient balance",
			})
		case errors.Is(err, booking.ErrSlotInPast),
			errors.Is(err, booking.ErrSlotTooFarAhead):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	metrics.RecordBooking(rm.Status)
	c.JSON(http.StatusCreated, resdto.FromBookingRM(rm))
}

// @Summary Get booking
// @Description Get a booking with its OTP and validity window (owner or staff)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rm, err := h.bookingUseCase.Get(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not your booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary Get own bookings
// @Description List bookings of the current user, newest slot first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rms, err := h.bookingUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListRMs(rms))
}

// @Summary Cancel booking
// @Description Cancel an active booking before the cutoff, refunding the wallet
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	err = h.bookingUseCase.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not your booking",
			})
		case errors.Is(err, usecase.ErrBookingNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not active",
			})
		case errors.Is(err, usecase.ErrCancellationTooLate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancellation cutoff has passed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	metrics.RecordBooking(booking.StatusCancelled.String())
	c.Status(http.StatusNoContent)
}

// @Summary Verify booking OTP
// @Description Verify the 6-digit code presented at the machine (staff)
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.VerifyOTPRequest true "OTP"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/verify [post]
func (h *BookingHandler) VerifyOTP(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.bookingUseCase.VerifyOTP(c.Request.Context(), id, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			metrics.RecordOTPVerification("not_found")
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrInvalidOTP):
			metrics.RecordOTPVerification("rejected")
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid or expired OTP",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	metrics.RecordOTPVerification("accepted")
	c.Status(http.StatusNoContent)
}

// @Summary Booking OTP QR code
// @Description Render the booking OTP as a PNG QR code (owner only)
// @Tags bookings
// @Produce png
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/qr [get]
func (h *BookingHandler) OTPQRCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	png, err := h.bookingUseCase.OTPQRCode(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not your booking",
			})
		case errors.Is(err, usecase.ErrInvalidOTP):
			c.JSON(http.StatusConflict, gin.H{
				"error": "OTP is not currently valid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// @Summary List bookings
// @Description List all bookings, optionally filtered by status (staff)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	rms, err := h.bookingUseCase.List(c.Request.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRMs(rms))
}

// @Summary Transition booking status
// @Description Mark a booking completed or expired (staff)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status, err := booking.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking status",
		})
		return
	}

	err = h.bookingUseCase.Transition(c.Request.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrInvalidBookingStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking status",
			})
		case errors.Is(err, usecase.ErrBookingNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	metrics.RecordBooking(status.String())
	c.Status(http.StatusNoContent)
}
