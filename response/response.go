package response

import "github.com/medialoc/crm-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse mirrors what the web client caches per session: the user,
// a session token, and the id sets of everything the user owns.
type LoginResponse struct {
	Token            string                  `json:"token"`
	User             models.User             `json:"user"`
	Accounts         []models.Account        `json:"accounts"`
	Projects         []models.Project        `json:"projects"`
	TasksAssignedTo  []models.Task           `json:"tasks_assigned_to"`
	TasksCreatedBy   []models.Task           `json:"tasks_created_by"`
	Updates          []models.Update         `json:"updates"`
	DeliveryStatuses []models.DeliveryStatus `json:"delivery_statuses"`
}

// CreatedUserResponse carries the one-time secret key issued at creation.
// It is never returned again.
type CreatedUserResponse struct {
	User      models.User `json:"user"`
	SecretKey string      `json:"secret_key"`
}

type ProjectRef struct {
	ID          uint   `json:"id"`
	ProjectName string `json:"project_name"`
}
