package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/repositories/mock_repositories"
	"github.com/medialoc/crm-go/utils"
	"github.com/stretchr/testify/assert"
)

func setupAccountMocks(t *testing.T) (*AccountService,
	*mock_repositories.MockAccountRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAccount := mock_repositories.NewMockAccountRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Account: mockAccount,
		Audit:   mockAudit,
	}

	svc := NewAccountService(repos)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return svc, mockAccount, c
}

// ---------- CreateAccount ----------
func TestCreateAccount_DefaultsType(t *testing.T) {
	svc, mockAccount, c := setupAccountMocks(t)

	mockAccount.EXPECT().CreateAccount(gomock.Any()).Return(nil)

	account, err := svc.CreateAccount(c, 1, dto.CreateAccountDTO{AccountName: "Acme Studios"})

	assert.NoError(t, err)
	assert.Equal(t, string(models.AccountTypeClient), account.AccountType)
	assert.Equal(t, uint(1), account.OwnerID)
}

func TestCreateAccount_RejectsUnknownType(t *testing.T) {
	svc, _, c := setupAccountMocks(t)

	_, err := svc.CreateAccount(c, 1, dto.CreateAccountDTO{AccountName: "Acme", AccountType: "Competitor"})

	assert.ErrorIs(t, err, ErrInvalidAccountType)
}

// ---------- ListAccountsForUser ----------
func TestListAccountsForUser_NarrowsToIDs(t *testing.T) {
	svc, mockAccount, _ := setupAccountMocks(t)

	owned := []models.Account{{ID: 1}, {ID: 2}, {ID: 3}}
	mockAccount.EXPECT().ListAccountsByOwner(uint(9)).Return(owned, nil)

	got, err := svc.ListAccountsForUser(9, []uint{2, 99})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestListAccountsForUser_NoFilterReturnsAll(t *testing.T) {
	svc, mockAccount, _ := setupAccountMocks(t)

	owned := []models.Account{{ID: 1}, {ID: 2}}
	mockAccount.EXPECT().ListAccountsByOwner(uint(9)).Return(owned, nil)

	got, err := svc.ListAccountsForUser(9, nil)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

// ---------- UpdateAccount ----------
func TestUpdateAccount_PartialFields(t *testing.T) {
	svc, mockAccount, c := setupAccountMocks(t)

	existing := models.Account{ID: 5, AccountName: "Old", AccountType: "Client", Description: "keep"}
	mockAccount.EXPECT().GetAccountByID(uint(5)).Return(existing, nil)
	mockAccount.EXPECT().UpdateAccount(gomock.Any()).Return(nil)

	name := "New Name"
	got, err := svc.UpdateAccount(c, 5, dto.UpdateAccountDTO{AccountName: &name})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", got.AccountName)
	assert.Equal(t, "keep", got.Description)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	svc, mockAccount, c := setupAccountMocks(t)

	mockAccount.EXPECT().GetAccountByID(uint(5)).Return(models.Account{}, errors.New("record not found"))

	_, err := svc.UpdateAccount(c, 5, dto.UpdateAccountDTO{})

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// ---------- DeleteAccount ----------
func TestDeleteAccount(t *testing.T) {
	svc, mockAccount, c := setupAccountMocks(t)

	mockAccount.EXPECT().GetAccountByID(uint(5)).Return(models.Account{ID: 5}, nil)
	mockAccount.EXPECT().DeleteAccount(uint(5)).Return(nil)

	assert.NoError(t, svc.DeleteAccount(c, 5))
}
