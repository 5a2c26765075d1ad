package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/response"
)

// ClassHandler wires HTTP endpoints to the class catalog service.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List catalog
// @Description Returns every class regardless of status
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /allClass [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes, nil)
}

// ListByInstructor godoc
// @Summary List an instructor's classes
// @Tags Classes
// @Produce json
// @Param email path string true "Instructor email"
// @Success 200 {object} response.Envelope
// @Router /allClass/{email} [get]
func (h *ClassHandler) ListByInstructor(c *gin.Context) {
	classes, err := h.service.ListByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes, nil)
}

// ListOwn godoc
// @Summary List the caller's own classes
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /manageClass [get]
func (h *ClassHandler) ListOwn(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	classes, err := h.service.ListByInstructor(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes, nil)
}

// Submit godoc
// @Summary Submit a class for review
// @Description Records a class offering; it enters the catalog pending approval
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body models.SubmitClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /addClass [post]
func (h *ClassHandler) Submit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SubmitClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}

	class, err := h.service.Submit(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// Approve godoc
// @Summary Approve a class
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /addClass/approve/{id} [patch]
func (h *ClassHandler) Approve(c *gin.Context) {
	if err := h.service.Approve(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "class approved"}, nil)
}

// Deny godoc
// @Summary Deny a class
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /addClass/deny/{id} [patch]
func (h *ClassHandler) Deny(c *gin.Context) {
	if err := h.service.Deny(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "class denied"}, nil)
}

// SetFeedback godoc
// @Summary Leave feedback on a class
// @Description Overwrites the admin feedback shown to the instructor
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /feedback/{id} [put]
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	if err := h.service.SetFeedback(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "feedback saved"}, nil)
}
