package repositories

import (
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/models"
)

type TaskRepo interface {
	CreateTask(t *models.Task) error
	GetTaskByID(id uint) (models.Task, error)
	ListTasksByIDs(ids []uint) ([]models.Task, error)
	ListTasksByProject(projectID uint) ([]models.Task, error)
	ListTasksAssignedTo(userID uint) ([]models.Task, error)
	ListTasksCreatedBy(userID uint) ([]models.Task, error)
	UpdateTask(t *models.Task) error
	DeleteTask(id uint) error
}

type DBTaskRepo struct{}

func (r *DBTaskRepo) CreateTask(t *models.Task) error {
	return db.DB.Create(t).Error
}

func (r *DBTaskRepo) GetTaskByID(id uint) (models.Task, error) {
	var task models.Task
	err := db.DB.First(&task, id).Error
	return task, err
}

func (r *DBTaskRepo) ListTasksByIDs(ids []uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.Where("id IN ?", ids).Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) ListTasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.Where("project_id = ?", projectID).Order("due_date asc").Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) ListTasksAssignedTo(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.Where("assigned_to_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) ListTasksCreatedBy(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.Where("created_by_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *DBTaskRepo) UpdateTask(t *models.Task) error {
	return db.DB.Save(t).Error
}

func (r *DBTaskRepo) DeleteTask(id uint) error {
	return db.DB.Delete(&models.Task{}, id).Error
}
