package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type DeliveryStatusRepo interface {
	CreateDeliveryStatus(d *models.DeliveryStatus) error
	GetDeliveryStatusByID(id uint) (models.DeliveryStatus, error)
	ListDeliveryStatusesByOwner(ownerID uint, ids []uint) ([]models.DeliveryStatus, error)
	ListDeliveryStatuses() ([]models.DeliveryStatus, error)
	UpdateDeliveryStatus(d *models.DeliveryStatus) error
	DeleteDeliveryStatus(id uint) error
}

type DBDeliveryStatusRepo struct{}

func (r *DBDeliveryStatusRepo) CreateDeliveryStatus(d *models.DeliveryStatus) error {
	return db.DB.Create(d).Error
}

func (r *DBDeliveryStatusRepo) GetDeliveryStatusByID(id uint) (models.DeliveryStatus, error) {
	var status models.DeliveryStatus
	err := db.DB.First(&status, id).Error
	return status, err
}

// ListDeliveryStatusesByOwner returns the owner's records, optionally
// narrowed to the given ids.
func (r *DBDeliveryStatusRepo) ListDeliveryStatusesByOwner(ownerID uint, ids []uint) ([]models.DeliveryStatus, error) {
	var statuses []models.DeliveryStatus
	query := db.DB.Where("owner_id = ?", ownerID)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	err := query.Order("created_at desc").Find(&statuses).Error
	return statuses, err
}

func (r *DBDeliveryStatusRepo) ListDeliveryStatuses() ([]models.DeliveryStatus, error) {
	var statuses []models.DeliveryStatus
	err := db.DB.Order("created_at desc").Find(&statuses).Error
	return statuses, err
}

func (r *DBDeliveryStatusRepo) UpdateDeliveryStatus(d *models.DeliveryStatus) error {
	return db.DB.Save(d).Error
}

func (r *DBDeliveryStatusRepo) DeleteDeliveryStatus(id uint) error {
	return db.DB.Delete(&models.DeliveryStatus{}, id).Error
}
