package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type UserRepo interface {
	GetUserByID(id uint) (models.User, error)
	GetUserBySecretLookup(lookup string) (models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error
	DeleteUser(id uint) error
	ListUsers() ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetUserBySecretLookup(lookup string) (models.User, error) {
	var user models.User
	err := db.DB.Where("secret_key_lookup = ?", lookup).First(&user).Error
	return user, err
}

func (r *DBUserRepo) CreateUser(u *models.User) error {
	return db.DB.Create(u).Error
}

func (r *DBUserRepo) UpdateUser(u *models.User) error {
	return db.DB.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return db.DB.Delete(&models.User{}, id).Error
}

func (r *DBUserRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.DB.Find(&users).Error
	return users, err
}
