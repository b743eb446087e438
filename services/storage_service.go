package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/utils"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

// StorageService keeps update attachments in MinIO and their metadata in
// the database.
type StorageService struct {
	repos *repositories.Repos
}

func NewStorageService(repos *repositories.Repos) *StorageService {
	return &StorageService{repos: repos}
}

func (s *StorageService) UploadAttachment(c *gin.Context, updateID uint, filename, contentType string, content io.Reader, size int64) (models.Attachment, error) {
	if _, err := s.repos.Update.GetUpdateByID(updateID); err != nil {
		return models.Attachment{}, ErrUpdateNotFound
	}

	objectName := fmt.Sprintf("updates/%d/%s", updateID, filename)
	if err := utils.UploadObject(c.Request.Context(), objectName, contentType, content, size); err != nil {
		return models.Attachment{}, err
	}

	attachment := models.Attachment{
		UpdateID:    updateID,
		Filename:    filename,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        size,
	}

	err := s.repos.Attachment.CreateAttachment(&attachment)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "attachment", fmt.Sprintf("id=%d", attachment.ID), nil, attachment, "", s.repos.Audit)
	}
	return attachment, err
}

func (s *StorageService) DownloadAttachment(ctx context.Context, id uint) (models.Attachment, []byte, error) {
	attachment, err := s.repos.Attachment.GetAttachmentByID(id)
	if err != nil {
		return models.Attachment{}, nil, ErrAttachmentNotFound
	}

	data, err := utils.DownloadObject(ctx, attachment.ObjectName)
	if err != nil {
		return models.Attachment{}, nil, err
	}
	return attachment, data, nil
}

func (s *StorageService) DeleteAttachment(c *gin.Context, id uint) error {
	attachment, err := s.repos.Attachment.GetAttachmentByID(id)
	if err != nil {
		return ErrAttachmentNotFound
	}

	if err := utils.DeleteObject(c.Request.Context(), attachment.ObjectName); err != nil {
		return err
	}

	err = s.repos.Attachment.DeleteAttachment(id)
	if err == nil {
		utils.LogAuditWithConsole(c, "delete", "attachment", fmt.Sprintf("id=%d", attachment.ID), attachment, nil, "", s.repos.Audit)
	}
	return err
}
