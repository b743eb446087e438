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
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrEndBeforeStart       = errors.New("end date cannot be before start date")
)

type ProjectService struct {
	repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{repos: repos}
}

func (s *ProjectService) CreateProject(c *gin.Context, ownerID uint, input dto.CreateProjectDTO) (models.Project, error) {
	status := input.Status
	if status == "" {
		status = string(models.ProjectStatusNotStarted)
	}
	if !models.ValidProjectStatus(status) {
		return models.Project{}, ErrInvalidProjectStatus
	}

	if _, err := s.repos.Account.GetAccountByID(input.AccountID); err != nil {
		return models.Project{}, ErrAccountNotFound
	}

	startDate, err := utils.ParseCalendarDatePtr(input.StartDate)
	if err != nil {
		return models.Project{}, err
	}
	endDate, err := utils.ParseCalendarDatePtr(input.EndDate)
	if err != nil {
		return models.Project{}, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return models.Project{}, ErrEndBeforeStart
	}

	project := models.Project{
		ProjectName: input.ProjectName,
		Status:      status,
		StartDate:   startDate,
		EndDate:     endDate,
		Value:       input.Value,
		Description: input.Description,
		AccountID:   input.AccountID,
		OwnerID:     ownerID,
	}

	err = s.repos.Project.CreateProject(&project)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "project", fmt.Sprintf("id=%d", project.ID), nil, project, "", s.repos.Audit)
	}
	return project, err
}

func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.repos.Project.GetProjectByID(id)
	if err != nil {
		return models.Project{}, ErrProjectNotFound
	}
	return project, nil
}

// ListProjectsForUser returns the caller's projects, optionally narrowed
// to ids. Used to populate selection controls, so only id and name matter
// to the client, but full records are returned for the detail pages.
func (s *ProjectService) ListProjectsForUser(ownerID uint, ids []uint) ([]models.Project, error) {
	projects, err := s.repos.Project.ListProjectsByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return projects, nil
	}
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	filtered := projects[:0]
	for _, project := range projects {
		if wanted[project.ID] {
			filtered = append(filtered, project)
		}
	}
	return filtered, nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.repos.Project.ListProjects()
}

func (s *ProjectService) UpdateProject(c *gin.Context, id uint, input dto.UpdateProjectDTO) (models.Project, error) {
	project, err := s.repos.Project.GetProjectByID(id)
	if err != nil {
		return models.Project{}, ErrProjectNotFound
	}

	oldProject := project

	if input.ProjectName != nil {
		project.ProjectName = *input.ProjectName
	}
	if input.Status != nil {
		if !models.ValidProjectStatus(*input.Status) {
			return models.Project{}, ErrInvalidProjectStatus
		}
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		startDate, err := utils.ParseCalendarDatePtr(input.StartDate)
		if err != nil {
			return models.Project{}, err
		}
		project.StartDate = startDate
	}
	if input.EndDate != nil {
		endDate, err := utils.ParseCalendarDatePtr(input.EndDate)
		if err != nil {
			return models.Project{}, err
		}
		project.EndDate = endDate
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return models.Project{}, ErrEndBeforeStart
	}
	if input.Value != nil {
		project.Value = input.Value
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	err = s.repos.Project.UpdateProject(&project)
	if err == nil {
		utils.LogAuditWithConsole(c, "update", "project", fmt.Sprintf("id=%d", project.ID), oldProject, project, "", s.repos.Audit)
	}
	return project, err
}

func (s *ProjectService) DeleteProject(c *gin.Context, id uint) error {
	project, err := s.repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}

	err = s.repos.Project.DeleteProject(id)
	if err == nil {
		utils.LogAuditWithConsole(c, "delete", "project", fmt.Sprintf("id=%d", project.ID), project, nil, "", s.repos.Audit)
	}
	return err
}
