package api

import (
	"errors"
	"net/http"

	"smartwash/internal/domain/location"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
}

func NewLocationHandler(locationUseCase usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
	}
}

// @Summary List locations
// @Description List active washing locations available for booking
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LocationResponse
// @Failure 401 {object} map[string]string
// @Router /locations [get]
func (h *LocationHandler) ListActive(c *gin.Context) {
	rms, err := h.locationUseCase.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationRMs(rms))
}

// @Summary List all locations
// @Description List every location including inactive ones (staff)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LocationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/locations [get]
func (h *LocationHandler) ListAll(c *gin.Context) {
	rms, err := h.locationUseCase.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationRMs(rms))
}

// @Summary Create location
// @Description Create a washing location (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.locationUseCase.Create(c.Request.Context(), usecase.LocationInput{
		Name:        req.Name,
		NameBn:      req.NameBn,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, location.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Location name is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLocationRM(rm))
}

// @Summary Update location
// @Description Update name and description of a location (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.LocationRequest true "Location"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.locationUseCase.Update(c.Request.Context(), id, usecase.LocationInput{
		Name:        req.Name,
		NameBn:      req.NameBn,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, location.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Location name is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationRM(rm))
}

// @Summary Toggle location
// @Description Activate or deactivate a location (admin)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.SetLocationActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/locations/{id}/active [patch]
func (h *LocationHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	var req reqdto.SetLocationActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.locationUseCase.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
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
