package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/middleware"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/repositories/mock_repositories"
	"github.com/medialoc/crm-go/utils"
)

type userServiceMocks struct {
	User           *mock_repositories.MockUserRepo
	Account        *mock_repositories.MockAccountRepo
	Project        *mock_repositories.MockProjectRepo
	Task           *mock_repositories.MockTaskRepo
	Update         *mock_repositories.MockUpdateRepo
	DeliveryStatus *mock_repositories.MockDeliveryStatusRepo
}

func setupUserMocks(t *testing.T) (*UserService, userServiceMocks, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mocks := userServiceMocks{
		User:           mock_repositories.NewMockUserRepo(ctrl),
		Account:        mock_repositories.NewMockAccountRepo(ctrl),
		Project:        mock_repositories.NewMockProjectRepo(ctrl),
		Task:           mock_repositories.NewMockTaskRepo(ctrl),
		Update:         mock_repositories.NewMockUpdateRepo(ctrl),
		DeliveryStatus: mock_repositories.NewMockDeliveryStatusRepo(ctrl),
	}

	repos := &repositories.Repos{
		User:           mocks.User,
		Account:        mocks.Account,
		Project:        mocks.Project,
		Task:           mocks.Task,
		Update:         mocks.Update,
		DeliveryStatus: mocks.DeliveryStatus,
		Audit:          mock_repositories.NewMockAuditRepo(ctrl),
	}

	svc := NewUserService(repos)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}
	middleware.GenerateToken = func(userID uint, userName, role string, expireDuration time.Duration) (string, error) {
		return "test-token", nil
	}

	return svc, mocks, c
}

func TestLoginReturnsOwnedEntities(t *testing.T) {
	svc, mocks, _ := setupUserMocks(t)

	secretKey := "super-secret"
	hash, err := utils.HashSecretKey(secretKey)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{
		ID:              1,
		UserName:        "alice",
		SecretKeyLookup: utils.SecretKeyLookup(secretKey),
		SecretKeyHash:   hash,
		Role:            "sales_executive",
	}

	mocks.User.EXPECT().GetUserBySecretLookup(utils.SecretKeyLookup(secretKey)).Return(user, nil)
	mocks.Account.EXPECT().ListAccountsByOwner(uint(1)).Return([]models.Account{{ID: 4}}, nil)
	mocks.Project.EXPECT().ListProjectsByOwner(uint(1)).Return([]models.Project{{ID: 9}}, nil)
	mocks.Task.EXPECT().ListTasksAssignedTo(uint(1)).Return(nil, nil)
	mocks.Task.EXPECT().ListTasksCreatedBy(uint(1)).Return(nil, nil)
	mocks.Update.EXPECT().ListUpdatesByOwner(uint(1)).Return(nil, nil)
	mocks.DeliveryStatus.EXPECT().ListDeliveryStatusesByOwner(uint(1), nil).Return(nil, nil)

	resp, err := svc.Login(secretKey)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "test-token" {
		t.Fatalf("token not issued: %q", resp.Token)
	}
	if len(resp.Accounts) != 1 || resp.Accounts[0].ID != 4 {
		t.Fatalf("owned accounts missing: %+v", resp.Accounts)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].ID != 9 {
		t.Fatalf("owned projects missing: %+v", resp.Projects)
	}
}

func TestLoginRejectsWrongKey(t *testing.T) {
	svc, mocks, _ := setupUserMocks(t)

	hash, _ := utils.HashSecretKey("the-real-key")
	user := models.User{ID: 1, SecretKeyHash: hash}

	// Lookup digest collision cannot happen in practice, but even a row
	// match must still pass bcrypt verification.
	mocks.User.EXPECT().GetUserBySecretLookup(gomock.Any()).Return(user, nil)

	_, err := svc.Login("a-wrong-key")
	if !errors.Is(err, ErrInvalidSecretKey) {
		t.Fatalf("want ErrInvalidSecretKey, got %v", err)
	}
}

func TestLoginUnknownKey(t *testing.T) {
	svc, mocks, _ := setupUserMocks(t)

	mocks.User.EXPECT().GetUserBySecretLookup(gomock.Any()).Return(models.User{}, errors.New("record not found"))

	_, err := svc.Login("nobody")
	if !errors.Is(err, ErrInvalidSecretKey) {
		t.Fatalf("want ErrInvalidSecretKey, got %v", err)
	}
}

func TestCreateUserIssuesSecretKeyOnce(t *testing.T) {
	svc, mocks, c := setupUserMocks(t)

	mocks.User.EXPECT().CreateUser(gomock.Any()).Return(nil)

	user, secretKey, err := svc.CreateUser(c, dto.CreateUserDTO{
		UserName: "bob",
		Role:     "delivery_head",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if secretKey == "" {
		t.Fatalf("no secret key returned")
	}
	if user.SecretKeyLookup != utils.SecretKeyLookup(secretKey) {
		t.Fatalf("lookup digest does not match issued key")
	}
	if !utils.VerifySecretKey(user.SecretKeyHash, secretKey) {
		t.Fatalf("stored hash does not verify issued key")
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _, c := setupUserMocks(t)

	_, _, err := svc.CreateUser(c, dto.CreateUserDTO{UserName: "eve", Role: "superuser"})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("want ErrInvalidRole, got %v", err)
	}
}
