package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type UpdateRepo interface {
	CreateUpdate(u *models.Update) error
	GetUpdateByID(id uint) (models.Update, error)
	ListUpdatesByIDs(ids []uint) ([]models.Update, error)
	ListUpdatesByOwner(ownerID uint) ([]models.Update, error)
	DeleteUpdate(id uint) error
}

type DBUpdateRepo struct{}

func (r *DBUpdateRepo) CreateUpdate(u *models.Update) error {
	return db.DB.Create(u).Error
}

func (r *DBUpdateRepo) GetUpdateByID(id uint) (models.Update, error) {
	var update models.Update
	err := db.DB.Preload("Attachments").First(&update, id).Error
	return update, err
}

func (r *DBUpdateRepo) ListUpdatesByIDs(ids []uint) ([]models.Update, error) {
	var updates []models.Update
	err := db.DB.Where("id IN ?", ids).Order("date desc").Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) ListUpdatesByOwner(ownerID uint) ([]models.Update, error) {
	var updates []models.Update
	err := db.DB.Where("owner_id = ?", ownerID).Order("date desc").Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) DeleteUpdate(id uint) error {
	return db.DB.Delete(&models.Update{}, id).Error
}
