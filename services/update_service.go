package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/utils"
)

var (
	ErrUpdateNotFound    = errors.New("update not found")
	ErrInvalidUpdateType = errors.New("invalid update type")
	ErrTaskNotInProject  = errors.New("task does not belong to the project")
)

type UpdateService struct {
	repos *repositories.Repos
}

func NewUpdateService(repos *repositories.Repos) *UpdateService {
	return &UpdateService{repos: repos}
}

func (s *UpdateService) CreateUpdate(c *gin.Context, ownerID uint, input dto.CreateUpdateDTO) (models.Update, error) {
	updateType := input.UpdateType
	if updateType == "" {
		updateType = string(models.UpdateTypeCall)
	}
	if !models.ValidUpdateType(updateType) {
		return models.Update{}, ErrInvalidUpdateType
	}

	if _, err := s.repos.Project.GetProjectByID(input.ProjectID); err != nil {
		return models.Update{}, ErrProjectNotFound
	}

	if input.TaskID != nil {
		task, err := s.repos.Task.GetTaskByID(*input.TaskID)
		if err != nil {
			return models.Update{}, ErrTaskNotFound
		}
		if task.ProjectID != input.ProjectID {
			return models.Update{}, ErrTaskNotInProject
		}
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil && *input.Date != "" {
		parsed, err := utils.ParseCalendarDate(*input.Date)
		if err != nil {
			return models.Update{}, err
		}
		date = parsed
	}

	update := models.Update{
		Notes:      input.Notes,
		Date:       date,
		UpdateType: updateType,
		ProjectID:  input.ProjectID,
		TaskID:     input.TaskID,
		OwnerID:    ownerID,
	}

	err := s.repos.Update.CreateUpdate(&update)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "update", fmt.Sprintf("id=%d", update.ID), nil, update, "", s.repos.Audit)
	}
	return update, err
}

func (s *UpdateService) GetUpdate(id uint) (models.Update, error) {
	update, err := s.repos.Update.GetUpdateByID(id)
	if err != nil {
		return models.Update{}, ErrUpdateNotFound
	}
	return update, nil
}

// ListUpdatesForUser returns the caller's updates, optionally narrowed to
// ids.
func (s *UpdateService) ListUpdatesForUser(ownerID uint, ids []uint) ([]models.Update, error) {
	updates, err := s.repos.Update.ListUpdatesByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return updates, nil
	}
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	filtered := updates[:0]
	for _, update := range updates {
		if wanted[update.ID] {
			filtered = append(filtered, update)
		}
	}
	return filtered, nil
}
