package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/response"
)

// UserHandler wires HTTP endpoints to the user service.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler constructs a user handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Register godoc
// @Summary Register user
// @Description Create the user record on first sign-in; repeat calls are a no-op
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body models.CreateUserRequest true "User payload"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload"))
		return
	}

	user, created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.JSON(c, http.StatusOK, gin.H{"message": "user already exists"}, nil)
		return
	}

	response.Created(c, user)
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}

// CheckAdmin godoc
// @Summary Check admin role
// @Description Reports whether the caller's own account holds the admin role
// @Tags Users
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	h.checkRole(c, models.RoleAdmin)
}

// CheckInstructor godoc
// @Summary Check instructor role
// @Description Reports whether the caller's own account holds the instructor role
// @Tags Users
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/instructor/{email} [get]
func (h *UserHandler) CheckInstructor(c *gin.Context) {
	h.checkRole(c, models.RoleInstructor)
}

// checkRole answers a self-only role probe. Asking about any email
// other than your own short-circuits to a negative answer rather than
// an error; the frontend polls these endpoints to pick a dashboard.
func (h *UserHandler) checkRole(c *gin.Context, role models.UserRole) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	email := c.Param("email")
	if email != claims.Email {
		response.JSON(c, http.StatusOK, models.RoleCheckResponse{Admin: false}, nil)
		return
	}

	ok, err := h.service.HasRole(c.Request.Context(), email, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, models.RoleCheckResponse{Admin: ok}, nil)
}

// PromoteAdmin godoc
// @Summary Promote user to admin
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/admin/{id} [patch]
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	h.promote(c, models.RoleAdmin)
}

// PromoteInstructor godoc
// @Summary Promote user to instructor
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/instructor/{id} [patch]
func (h *UserHandler) PromoteInstructor(c *gin.Context) {
	h.promote(c, models.RoleInstructor)
}

func (h *UserHandler) promote(c *gin.Context, role models.UserRole) {
	user, err := h.service.Promote(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}
