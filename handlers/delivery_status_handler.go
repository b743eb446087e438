package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/response"
	"github.com/medialoc/crm-go/services"
	"github.com/medialoc/crm-go/utils"
	"github.com/medialoc/crm-go/websocket"
)

type DeliveryStatusHandler struct {
	statuses *services.DeliveryStatusService
	hub      *websocket.Hub
}

func NewDeliveryStatusHandler(statuses *services.DeliveryStatusService, hub *websocket.Hub) *DeliveryStatusHandler {
	return &DeliveryStatusHandler{statuses: statuses, hub: hub}
}

// ListMyDeliveryStatuses godoc
// @Summary      List my delivery statuses
// @Description  Returns delivery statuses owned by the authenticated user, optionally filtered by ids
// @Tags         delivery-status
// @Produce      json
// @Param        ids  query  string  false  "Comma separated delivery status IDs"
// @Success      200  {array}   models.DeliveryStatus
// @Failure      401  {object}  response.ErrorResponse
// @Router       /api/delivery-status/my [get]
// @Security     BearerAuth
func (h *DeliveryStatusHandler) ListMyDeliveryStatuses(c *gin.Context) {
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

	statuses, err := h.statuses.ListMyDeliveryStatuses(claims.UserID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// CreateDeliveryStatus godoc
// @Summary      Create delivery status
// @Description  Creates a QVO or DT delivery status for one of the user's projects
// @Tags         delivery-status
// @Accept       json
// @Produce      json
// @Param        status  body  dto.DeliveryStatusDTO  true  "Delivery status payload"
// @Success      201  {object}  models.DeliveryStatus
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/delivery-status [post]
// @Security     BearerAuth
func (h *DeliveryStatusHandler) CreateDeliveryStatus(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.DeliveryStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	status, err := h.statuses.CreateDeliveryStatus(c, claims.UserID, input)
	if err != nil {
		h.writeDeliveryStatusError(c, err)
		return
	}

	h.hub.Broadcast(websocket.Event{
		Action:       "created",
		ResourceType: "delivery_status",
		ResourceID:   status.ID,
		OccurredAt:   time.Now(),
	})
	c.JSON(http.StatusCreated, status)
}

// UpdateDeliveryStatus godoc
// @Summary      Update delivery status
// @Description  Replaces the editable fields of an owned delivery status. The project type and CRM project cannot change.
// @Tags         delivery-status
// @Accept       json
// @Produce      json
// @Param        id      path  int                    true  "Delivery status ID"
// @Param        status  body  dto.DeliveryStatusDTO  true  "Delivery status payload"
// @Success      200  {object}  models.DeliveryStatus
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/delivery-status/{id} [put]
// @Security     BearerAuth
func (h *DeliveryStatusHandler) UpdateDeliveryStatus(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid delivery status id"})
		return
	}

	var input dto.DeliveryStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	status, err := h.statuses.UpdateDeliveryStatus(c, claims.UserID, id, input)
	if err != nil {
		h.writeDeliveryStatusError(c, err)
		return
	}

	h.hub.Broadcast(websocket.Event{
		Action:       "updated",
		ResourceType: "delivery_status",
		ResourceID:   status.ID,
		OccurredAt:   time.Now(),
	})
	c.JSON(http.StatusOK, status)
}

// GET /api/delivery-head/delivery-status
func (h *DeliveryStatusHandler) ListAllDeliveryStatuses(c *gin.Context) {
	statuses, err := h.statuses.ListDeliveryStatuses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// GET /api/delivery-head/delivery-status/:id
func (h *DeliveryStatusHandler) GetDeliveryStatusByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid delivery status id"})
		return
	}

	status, err := h.statuses.GetDeliveryStatus(id)
	if err != nil {
		if errors.Is(err, services.ErrDeliveryStatusNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *DeliveryStatusHandler) writeDeliveryStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDeliveryStatusNotFound),
		errors.Is(err, services.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidProjectType),
		errors.Is(err, services.ErrEmptyServiceType),
		errors.Is(err, services.ErrVariantFieldMismatch),
		errors.Is(err, services.ErrImmutableField),
		errors.Is(err, utils.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
