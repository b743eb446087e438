package services

import "github.com/medialoc/crm-go/repositories"

type Services struct {
	User           *UserService
	Account        *AccountService
	Project        *ProjectService
	Task           *TaskService
	Update         *UpdateService
	DeliveryStatus *DeliveryStatusService
	Audit          *AuditService
	Storage        *StorageService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		User:           NewUserService(repos),
		Account:        NewAccountService(repos),
		Project:        NewProjectService(repos),
		Task:           NewTaskService(repos),
		Update:         NewUpdateService(repos),
		DeliveryStatus: NewDeliveryStatusService(repos),
		Audit:          NewAuditService(repos),
		Storage:        NewStorageService(repos),
	}
}
