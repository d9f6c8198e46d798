package api

import (
	"errors"
	"net/http"

	"smartwash/internal/domain/recharge"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/internal/handler/middleware"
	"smartwash/internal/pkg/metrics"
	"smartwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletHandler struct {
	rechargeUseCase usecase.RechargeUseCase
}

func NewWalletHandler(rechargeUseCase usecase.RechargeUseCase) *WalletHandler {
	return &WalletHandler{
		rechargeUseCase: rechargeUseCase,
	}
}

// @Summary Get wallet balance
// @Description Get the current wallet balance of the user
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} map[string]string
// @Router /wallet/balance [get]
func (h *WalletHandler) Balance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	balance, err := h.rechargeUseCase.Balance(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{Balance: balance})
}

// @Summary Submit recharge request
// @Description Submit a top-up claim with payment details and an optional screenshot
// @Tags wallet
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param amount formData int true "Amount"
// @Param method formData string true "Payment method (bkash, nagad, rocket, card)"
// @Param transaction_id formData string false "Provider transaction ID"
// @Param screenshot formData file false "Payment screenshot"
// @Success 201 {object} resdto.RechargeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /wallet/recharges [post]
func (h *WalletHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitRechargeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := usecase.SubmitRechargeInput{
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	}

	if fileHeader, err := c.FormFile("screenshot"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Could not read screenshot",
			})
			return
		}
		defer file.Close()
		input.Screenshot = file
	}

	rm, err := h.rechargeUseCase.Submit(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, recharge.ErrInvalidMethod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment method",
			})
		case errors.Is(err, recharge.ErrAmountTooSmall):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Amount below minimum recharge",
			})
		case errors.Is(err, usecase.ErrScreenshotRejected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Screenshot could not be stored",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRechargeRM(rm))
}

// @Summary Get own recharge requests
// @Description List recharge requests of the current user, newest first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RechargeResponse
// @Failure 401 {object} map[string]string
// @Router /wallet/recharges [get]
func (h *WalletHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rms, err := h.rechargeUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRechargeRMs(rms))
}

// @Summary List recharge requests
// @Description List all recharge requests, optionally filtered by status (staff)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Recharge status filter"
// @Success 200 {array} resdto.RechargeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/recharges [get]
func (h *WalletHandler) List(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	rms, err := h.rechargeUseCase.List(c.Request.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRechargeStatus):
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

	c.JSON(http.StatusOK, resdto.FromRechargeRMs(rms))
}

// @Summary Approve recharge request
// @Description Approve a pending recharge, crediting the wallet (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recharge request ID"
// @Param request body reqdto.DecideRechargeRequest false "Review note"
// @Success 200 {object} resdto.RechargeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/recharges/{id}/approve [post]
func (h *WalletHandler) Approve(c *gin.Context) {
	h.decide(c, recharge.StatusApproved)
}

// @Summary Reject recharge request
// @Description Reject a pending recharge with no wallet effect (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recharge request ID"
// @Param request body reqdto.DecideRechargeRequest false "Review note"
// @Success 200 {object} resdto.RechargeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/recharges/{id}/reject [post]
func (h *WalletHandler) Reject(c *gin.Context) {
	h.decide(c, recharge.StatusRejected)
}

func (h *WalletHandler) decide(c *gin.Context, to recharge.Status) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid recharge request ID format",
		})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.DecideRechargeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	var rm *resdto.RechargeResponse
	switch to {
	case recharge.StatusApproved:
		result, err := h.rechargeUseCase.Approve(c.Request.Context(), id, adminID, req.Note)
		if err != nil {
			h.decideError(c, err)
			return
		}
		rm = resdto.FromRechargeRM(result)
	case recharge.StatusRejected:
		result, err := h.rechargeUseCase.Reject(c.Request.Context(), id, adminID, req.Note)
		if err != nil {
			h.decideError(c, err)
			return
		}
		rm = resdto.FromRechargeRM(result)
	}

	metrics.RecordRecharge(to.String())
	c.JSON(http.StatusOK, rm)
}

func (h *WalletHandler) decideError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRechargeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Recharge request not found",
		})
	case errors.Is(err, usecase.ErrRechargeAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Recharge request already decided",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
