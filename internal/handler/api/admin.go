package api

import (
	"errors"
	"net/http"

	"smartwash/internal/domain/user"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// @Summary Admin dashboard
// @Description Aggregate counters for the admin panel
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.DashboardRM
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	rm, err := h.adminUseCase.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List users
// @Description List every user profile with balance and role (staff)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	rms, err := h.adminUseCase.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileRMs(rms))
}

// @Summary Assign role
// @Description Grant an additional role to a user (admin)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.AssignRoleRequest true "Role"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/roles [post]
func (h *AdminHandler) AssignRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	var req reqdto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid role",
		})
		return
	}

	err = h.adminUseCase.AssignRole(c.Request.Context(), id, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List settings
// @Description List system settings (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} readmodel.SettingRM
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/settings [get]
func (h *AdminHandler) ListSettings(c *gin.Context) {
	rms, err := h.adminUseCase.ListSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rms)
}

// @Summary Update setting
// @Description Create or update a system setting (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body reqdto.UpdateSettingRequest true "Value"
// @Success 200 {array} readmodel.SettingRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/settings/{key} [put]
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Setting key is required",
		})
		return
	}

	var req reqdto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rms, err := h.adminUseCase.UpdateSetting(c.Request.Context(), key, req.Value, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rms)
}
