package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/middleware"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/response"
	"github.com/medialoc/crm-go/utils"
)

var (
	ErrInvalidSecretKey = errors.New("invalid secret key")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNameTaken    = errors.New("user name already taken")
	ErrInvalidRole      = errors.New("invalid role")
)

const sessionDuration = 12 * time.Hour

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

// Login exchanges a shared secret key for a session token plus the id sets
// of everything the user owns, which the web client caches for the session.
func (s *UserService) Login(secretKey string) (*response.LoginResponse, error) {
	user, err := s.repos.User.GetUserBySecretLookup(utils.SecretKeyLookup(secretKey))
	if err != nil {
		return nil, ErrInvalidSecretKey
	}
	if !utils.VerifySecretKey(user.SecretKeyHash, secretKey) {
		return nil, ErrInvalidSecretKey
	}

	token, err := middleware.GenerateToken(user.ID, user.UserName, user.Role, sessionDuration)
	if err != nil {
		return nil, err
	}

	accounts, err := s.repos.Account.ListAccountsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	projects, err := s.repos.Project.ListProjectsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	assigned, err := s.repos.Task.ListTasksAssignedTo(user.ID)
	if err != nil {
		return nil, err
	}
	created, err := s.repos.Task.ListTasksCreatedBy(user.ID)
	if err != nil {
		return nil, err
	}
	updates, err := s.repos.Update.ListUpdatesByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.repos.DeliveryStatus.ListDeliveryStatusesByOwner(user.ID, nil)
	if err != nil {
		return nil, err
	}

	return &response.LoginResponse{
		Token:            token,
		User:             user,
		Accounts:         accounts,
		Projects:         projects,
		TasksAssignedTo:  assigned,
		TasksCreatedBy:   created,
		Updates:          updates,
		DeliveryStatuses: statuses,
	}, nil
}

// CreateUser registers a user with a freshly generated secret key. The
// plaintext key is returned exactly once, for the admin to hand over.
func (s *UserService) CreateUser(c *gin.Context, input dto.CreateUserDTO) (models.User, string, error) {
	switch models.UserRole(input.Role) {
	case models.UserRoleAdmin, models.UserRoleDeliveryHead, models.UserRoleSalesExecutive:
	default:
		return models.User{}, "", ErrInvalidRole
	}

	secretKey := uuid.NewString()
	hash, err := utils.HashSecretKey(secretKey)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		UserName:        input.UserName,
		SecretKeyLookup: utils.SecretKeyLookup(secretKey),
		SecretKeyHash:   hash,
		Role:            input.Role,
		Email:           input.Email,
	}

	if err := s.repos.User.CreateUser(&user); err != nil {
		return models.User{}, "", ErrUserNameTaken
	}

	utils.LogAuditWithConsole(c, "create", "user", fmt.Sprintf("id=%d", user.ID), nil, user, "", s.repos.Audit)
	return user, secretKey, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repos.User.ListUsers()
}

func (s *UserService) UpdateUser(c *gin.Context, id uint, input dto.UpdateUserDTO) (models.User, error) {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	oldUser := user

	if input.UserName != nil {
		user.UserName = *input.UserName
	}
	if input.Role != nil {
		switch models.UserRole(*input.Role) {
		case models.UserRoleAdmin, models.UserRoleDeliveryHead, models.UserRoleSalesExecutive:
			user.Role = *input.Role
		default:
			return models.User{}, ErrInvalidRole
		}
	}
	if input.Email != nil {
		user.Email = input.Email
	}

	err = s.repos.User.UpdateUser(&user)
	if err == nil {
		utils.LogAuditWithConsole(c, "update", "user", fmt.Sprintf("id=%d", user.ID), oldUser, user, "", s.repos.Audit)
	}
	return user, err
}

func (s *UserService) DeleteUser(c *gin.Context, id uint) error {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	err = s.repos.User.DeleteUser(id)
	if err == nil {
		utils.LogAuditWithConsole(c, "delete", "user", fmt.Sprintf("id=%d", user.ID), user, nil, "", s.repos.Audit)
	}
	return err
}
