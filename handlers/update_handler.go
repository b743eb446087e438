package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/response"
	"github.com/medialoc/crm-go/services"
	"github.com/medialoc/crm-go/utils"
)

type UpdateHandler struct {
	updates *services.UpdateService
}

func NewUpdateHandler(updates *services.UpdateService) *UpdateHandler {
	return &UpdateHandler{updates: updates}
}

// GET /api/updates?ids=1,2
func (h *UpdateHandler) ListUpdates(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	ids, err := utils.ParseIDListQuery(c, "ids")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ids"})
		return
	}

	updates, err := h.updates.ListUpdatesForUser(claims.UserID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updates)
}

// GET /api/updates/:id
func (h *UpdateHandler) GetUpdateByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid update id"})
		return
	}

	update, err := h.updates.GetUpdate(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Update not found"})
		return
	}
	c.JSON(http.StatusOK, update)
}

// POST /api/updates
func (h *UpdateHandler) CreateUpdate(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	update, err := h.updates.CreateUpdate(c, claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound),
			errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidUpdateType),
			errors.Is(err, services.ErrTaskNotInProject),
			errors.Is(err, utils.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, update)
}
