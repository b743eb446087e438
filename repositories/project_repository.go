package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type ProjectRepo interface {
	CreateProject(p *models.Project) error
	GetProjectByID(id uint) (models.Project, error)
	ListProjectsByIDs(ids []uint) ([]models.Project, error)
	ListProjectsByOwner(ownerID uint) ([]models.Project, error)
	ListProjects() ([]models.Project, error)
	UpdateProject(p *models.Project) error
	DeleteProject(id uint) error
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return db.DB.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	err := db.DB.First(&project, id).Error
	return project, err
}

func (r *DBProjectRepo) ListProjectsByIDs(ids []uint) ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Where("id IN ?", ids).Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByOwner(ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Where("owner_id = ?", ownerID).Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) UpdateProject(p *models.Project) error {
	return db.DB.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return db.DB.Delete(&models.Project{}, id).Error
}
