package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// IssueToken godoc
// @Summary Issue session token
// @Description Sign a session token for the identity the social-login client presents
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.TokenRequest true "Identity payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid token payload"))
		return
	}

	res, err := h.service.IssueToken(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}
