package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type AttachmentRepo interface {
	CreateAttachment(a *models.Attachment) error
	GetAttachmentByID(id uint) (models.Attachment, error)
	ListAttachmentsByUpdate(updateID uint) ([]models.Attachment, error)
	DeleteAttachment(id uint) error
}

type DBAttachmentRepo struct{}

func (r *DBAttachmentRepo) CreateAttachment(a *models.Attachment) error {
	return db.DB.Create(a).Error
}

func (r *DBAttachmentRepo) GetAttachmentByID(id uint) (models.Attachment, error) {
	var attachment models.Attachment
	err := db.DB.First(&attachment, id).Error
	return attachment, err
}

func (r *DBAttachmentRepo) ListAttachmentsByUpdate(updateID uint) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := db.DB.Where("update_id = ?", updateID).Find(&attachments).Error
	return attachments, err
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return db.DB.Delete(&models.Attachment{}, id).Error
}
