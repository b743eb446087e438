package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type AccountRepo interface {
	CreateAccount(a *models.Account) error
	GetAccountByID(id uint) (models.Account, error)
	ListAccountsByIDs(ids []uint) ([]models.Account, error)
	ListAccountsByOwner(ownerID uint) ([]models.Account, error)
	ListAccounts() ([]models.Account, error)
	UpdateAccount(a *models.Account) error
	DeleteAccount(id uint) error
}

type DBAccountRepo struct{}

func (r *DBAccountRepo) CreateAccount(a *models.Account) error {
	return db.DB.Create(a).Error
}

func (r *DBAccountRepo) GetAccountByID(id uint) (models.Account, error) {
	var account models.Account
	err := db.DB.First(&account, id).Error
	return account, err
}

func (r *DBAccountRepo) ListAccountsByIDs(ids []uint) ([]models.Account, error) {
	var accounts []models.Account
	err := db.DB.Where("id IN ?", ids).Find(&accounts).Error
	return accounts, err
}

func (r *DBAccountRepo) ListAccountsByOwner(ownerID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := db.DB.Where("owner_id = ?", ownerID).Find(&accounts).Error
	return accounts, err
}

func (r *DBAccountRepo) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	err := db.DB.Find(&accounts).Error
	return accounts, err
}

func (r *DBAccountRepo) UpdateAccount(a *models.Account) error {
	return db.DB.Save(a).Error
}

func (r *DBAccountRepo) DeleteAccount(id uint) error {
	return db.DB.Delete(&models.Account{}, id).Error
}
