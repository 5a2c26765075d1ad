package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/response"
)

// SelectionHandler wires HTTP endpoints to the selection service.
type SelectionHandler struct {
	service *service.SelectionService
}

// NewSelectionHandler constructs a selection handler.
func NewSelectionHandler(svc *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{service: svc}
}

// List godoc
// @Summary List staged selections
// @Tags Selections
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /selectClass [get]
func (h *SelectionHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	selections, err := h.service.List(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, selections, nil)
}

// Select godoc
// @Summary Stage a class selection
// @Description Stages an intent to enroll; one active selection per category
// @Tags Selections
// @Accept json
// @Produce json
// @Param payload body models.SelectClassRequest true "Selection payload"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /selectClass [post]
func (h *SelectionHandler) Select(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SelectClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid selection payload"))
		return
	}

	selection, created, err := h.service.Select(c.Request.Context(), claims.Email, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.JSON(c, http.StatusOK, gin.H{"message": "already select this category"}, nil)
		return
	}

	response.Created(c, selection)
}

// Remove godoc
// @Summary Remove a staged selection
// @Tags Selections
// @Produce json
// @Param id path string true "Selection ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /selectClass/delete/{id} [delete]
func (h *SelectionHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "selection removed"}, nil)
}
