package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/response"
	"github.com/medialoc/crm-go/services"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login godoc
// @Summary Log in with a shared secret key
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginDTO true "Secret key"
// @Success 200 {object} response.LoginResponse "Session token, user and owned entity ids"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid secret key"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	result, err := h.users.Login(input.SecretKey)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Login failed. Please check your secret key."})
		return
	}

	c.JSON(http.StatusOK, result)
}
