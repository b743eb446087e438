package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/utils"
)

var (
	ErrDeliveryStatusNotFound = errors.New("delivery status not found")
	ErrInvalidProjectType     = errors.New("project_type must be QVO or DT")
	ErrEmptyServiceType       = errors.New("service_type is required")
	ErrVariantFieldMismatch   = errors.New("payload contains fields of the other project type")
	ErrImmutableField         = errors.New("project_type and crm_project_id cannot be changed")
)

type DeliveryStatusService struct {
	repos *repositories.Repos
}

func NewDeliveryStatusService(repos *repositories.Repos) *DeliveryStatusService {
	return &DeliveryStatusService{repos: repos}
}

// validate checks the write payload: discriminator, required service type,
// project ownership, and the one-variant invariant. Clients prune
// out-of-variant fields before submitting; a payload that still carries
// them is rejected rather than silently trimmed.
func (s *DeliveryStatusService) validate(ownerID uint, input *dto.DeliveryStatusDTO) error {
	if !models.ValidProjectType(input.ProjectType) {
		return ErrInvalidProjectType
	}
	if strings.TrimSpace(input.ServiceType) == "" {
		return ErrEmptyServiceType
	}

	project, err := s.repos.Project.GetProjectByID(uint(input.CRMProjectID))
	if err != nil {
		return ErrProjectNotFound
	}
	if project.OwnerID != ownerID {
		return ErrProjectNotFound
	}

	switch models.ProjectType(input.ProjectType) {
	case models.ProjectTypeQVO:
		if input.HasDTFields() {
			return ErrVariantFieldMismatch
		}
	case models.ProjectTypeDT:
		if input.HasQVOFields() {
			return ErrVariantFieldMismatch
		}
	}
	return nil
}

func (s *DeliveryStatusService) apply(status *models.DeliveryStatus, input *dto.DeliveryStatusDTO) error {
	deadline, err := utils.ParseCalendarDatePtr(input.Deadline)
	if err != nil {
		return err
	}

	status.ServiceType = input.ServiceType
	status.NumberOfFiles = input.NumberOfFiles
	status.Deadline = deadline
	status.OutputFormat = input.OutputFormat
	status.OpenProjectFilesProvided = input.OpenProjectFilesProvided

	status.TotalDurationMinutes = input.TotalDurationMinutes
	status.LanguagePair = input.LanguagePair
	status.TargetLanguageDialect = input.TargetLanguageDialect
	status.VoiceMatchNeeded = input.VoiceMatchNeeded
	status.LipMatchNeeded = input.LipMatchNeeded
	status.SoundBalancingNeeded = input.SoundBalancingNeeded
	status.PremixFilesShared = input.PremixFilesShared
	status.MEFilesShared = input.MEFilesShared
	status.HighResVideoShared = input.HighResVideoShared
	status.CaptionType = input.CaptionType
	status.OnScreenEditingRequired = input.OnScreenEditingRequired
	status.Deliverable = input.Deliverable
	status.VoiceOverGender = input.VoiceOverGender

	status.SourceWordCount = input.SourceWordCount
	status.SourceLanguages = input.SourceLanguages
	status.TargetLanguages = input.TargetLanguages
	status.FormattingRequired = input.FormattingRequired

	status.ClearOtherVariant()
	return nil
}

func (s *DeliveryStatusService) CreateDeliveryStatus(c *gin.Context, ownerID uint, input dto.DeliveryStatusDTO) (models.DeliveryStatus, error) {
	if err := s.validate(ownerID, &input); err != nil {
		return models.DeliveryStatus{}, err
	}

	status := models.DeliveryStatus{
		OwnerID:      ownerID,
		CRMProjectID: uint(input.CRMProjectID),
		ProjectType:  input.ProjectType,
	}
	if err := s.apply(&status, &input); err != nil {
		return models.DeliveryStatus{}, err
	}

	err := s.repos.DeliveryStatus.CreateDeliveryStatus(&status)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "delivery_status", fmt.Sprintf("id=%d", status.ID), nil, status, "", s.repos.Audit)
	}
	return status, err
}

// UpdateDeliveryStatus replaces the full variant-appropriate field set of
// an owned record. The discriminator and project reference are fixed at
// creation; an update that tries to move them is rejected.
func (s *DeliveryStatusService) UpdateDeliveryStatus(c *gin.Context, ownerID uint, id uint, input dto.DeliveryStatusDTO) (models.DeliveryStatus, error) {
	status, err := s.repos.DeliveryStatus.GetDeliveryStatusByID(id)
	if err != nil || status.OwnerID != ownerID {
		return models.DeliveryStatus{}, ErrDeliveryStatusNotFound
	}

	if input.ProjectType != status.ProjectType || uint(input.CRMProjectID) != status.CRMProjectID {
		return models.DeliveryStatus{}, ErrImmutableField
	}
	if err := s.validate(ownerID, &input); err != nil {
		return models.DeliveryStatus{}, err
	}

	oldStatus := status
	if err := s.apply(&status, &input); err != nil {
		return models.DeliveryStatus{}, err
	}

	err = s.repos.DeliveryStatus.UpdateDeliveryStatus(&status)
	if err == nil {
		utils.LogAuditWithConsole(c, "update", "delivery_status", fmt.Sprintf("id=%d", status.ID), oldStatus, status, "", s.repos.Audit)
	}
	return status, err
}

// ListMyDeliveryStatuses returns the caller's records, optionally narrowed
// to ids.
func (s *DeliveryStatusService) ListMyDeliveryStatuses(ownerID uint, ids []uint) ([]models.DeliveryStatus, error) {
	return s.repos.DeliveryStatus.ListDeliveryStatusesByOwner(ownerID, ids)
}

// GetDeliveryStatus fetches one record regardless of owner; delivery heads
// and admins review records across the whole sales team.
func (s *DeliveryStatusService) GetDeliveryStatus(id uint) (models.DeliveryStatus, error) {
	status, err := s.repos.DeliveryStatus.GetDeliveryStatusByID(id)
	if err != nil {
		return models.DeliveryStatus{}, ErrDeliveryStatusNotFound
	}
	return status, nil
}

func (s *DeliveryStatusService) ListDeliveryStatuses() ([]models.DeliveryStatus, error) {
	return s.repos.DeliveryStatus.ListDeliveryStatuses()
}
