package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/utils"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

type TaskService struct {
	repos *repositories.Repos
}

func NewTaskService(repos *repositories.Repos) *TaskService {
	return &TaskService{repos: repos}
}

func (s *TaskService) CreateTask(c *gin.Context, creatorID uint, input dto.CreateTaskDTO) (models.Task, error) {
	status := input.Status
	if status == "" {
		status = string(models.TaskStatusToDo)
	}
	if !models.ValidTaskStatus(status) {
		return models.Task{}, ErrInvalidTaskStatus
	}

	if _, err := s.repos.Project.GetProjectByID(input.ProjectID); err != nil {
		return models.Task{}, ErrProjectNotFound
	}
	if _, err := s.repos.User.GetUserByID(input.AssignedToID); err != nil {
		return models.Task{}, ErrUserNotFound
	}

	dueDate, err := utils.ParseCalendarDatePtr(input.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		TaskName:     input.TaskName,
		Description:  input.Description,
		Status:       status,
		DueDate:      dueDate,
		ProjectID:    input.ProjectID,
		AssignedToID: input.AssignedToID,
		CreatedByID:  creatorID,
	}

	err = s.repos.Task.CreateTask(&task)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "task", fmt.Sprintf("id=%d", task.ID), nil, task, "", s.repos.Audit)
	}
	return task, err
}

func (s *TaskService) GetTask(id uint) (models.Task, error) {
	task, err := s.repos.Task.GetTaskByID(id)
	if err != nil {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) ListTasksByIDs(ids []uint) ([]models.Task, error) {
	if len(ids) == 0 {
		return []models.Task{}, nil
	}
	return s.repos.Task.ListTasksByIDs(ids)
}

func (s *TaskService) ListTasksByProject(projectID uint) ([]models.Task, error) {
	if _, err := s.repos.Project.GetProjectByID(projectID); err != nil {
		return nil, ErrProjectNotFound
	}
	return s.repos.Task.ListTasksByProject(projectID)
}

func (s *TaskService) UpdateTask(c *gin.Context, id uint, input dto.UpdateTaskDTO) (models.Task, error) {
	task, err := s.repos.Task.GetTaskByID(id)
	if err != nil {
		return models.Task{}, ErrTaskNotFound
	}

	oldTask := task

	if input.TaskName != nil {
		task.TaskName = *input.TaskName
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !models.ValidTaskStatus(*input.Status) {
			return models.Task{}, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		dueDate, err := utils.ParseCalendarDatePtr(input.DueDate)
		if err != nil {
			return models.Task{}, err
		}
		task.DueDate = dueDate
	}
	if input.AssignedToID != nil {
		if _, err := s.repos.User.GetUserByID(*input.AssignedToID); err != nil {
			return models.Task{}, ErrUserNotFound
		}
		task.AssignedToID = *input.AssignedToID
	}

	err = s.repos.Task.UpdateTask(&task)
	if err == nil {
		utils.LogAuditWithConsole(c, "update", "task", fmt.Sprintf("id=%d", task.ID), oldTask, task, "", s.repos.Audit)
	}
	return task, err
}
