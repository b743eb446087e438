package services

import (
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
)

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) GetAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.repos.Audit.GetAuditLogs(params)
}
