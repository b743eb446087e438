package handlers

import (
	"github.com/medialoc/crm-go/services"
	"github.com/medialoc/crm-go/websocket"
)

type Handlers struct {
	Auth           *AuthHandler
	User           *UserHandler
	Account        *AccountHandler
	Project        *ProjectHandler
	Task           *TaskHandler
	Update         *UpdateHandler
	DeliveryStatus *DeliveryStatusHandler
	Audit          *AuditHandler
	Attachment     *AttachmentHandler
	WS             *WSHandler
	Hub            *websocket.Hub
}

func New(svc *services.Services) *Handlers {
	hub := websocket.NewHub()
	return &Handlers{
		Auth:           NewAuthHandler(svc.User),
		User:           NewUserHandler(svc.User),
		Account:        NewAccountHandler(svc.Account),
		Project:        NewProjectHandler(svc.Project),
		Task:           NewTaskHandler(svc.Task),
		Update:         NewUpdateHandler(svc.Update),
		DeliveryStatus: NewDeliveryStatusHandler(svc.DeliveryStatus, hub),
		Audit:          NewAuditHandler(svc.Audit),
		Attachment:     NewAttachmentHandler(svc.Storage),
		WS:             NewWSHandler(hub),
		Hub:            hub,
	}
}
