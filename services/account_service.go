package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/utils"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountType = errors.New("invalid account type")
)

type AccountService struct {
	repos *repositories.Repos
}

func NewAccountService(repos *repositories.Repos) *AccountService {
	return &AccountService{repos: repos}
}

func (s *AccountService) CreateAccount(c *gin.Context, ownerID uint, input dto.CreateAccountDTO) (models.Account, error) {
	accountType := input.AccountType
	if accountType == "" {
		accountType = string(models.AccountTypeClient)
	}
	switch models.AccountType(accountType) {
	case models.AccountTypeClient, models.AccountTypePartner, models.AccountTypeVendor:
	default:
		return models.Account{}, ErrInvalidAccountType
	}

	account := models.Account{
		AccountName: input.AccountName,
		AccountType: accountType,
		Description: input.Description,
		OwnerID:     ownerID,
	}

	err := s.repos.Account.CreateAccount(&account)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "account", fmt.Sprintf("id=%d", account.ID), nil, account, "", s.repos.Audit)
	}
	return account, err
}

func (s *AccountService) GetAccount(id uint) (models.Account, error) {
	account, err := s.repos.Account.GetAccountByID(id)
	if err != nil {
		return models.Account{}, ErrAccountNotFound
	}
	return account, nil
}

// ListAccountsForUser returns the caller's accounts. A non-empty ids list
// narrows the result; ownership always applies.
func (s *AccountService) ListAccountsForUser(ownerID uint, ids []uint) ([]models.Account, error) {
	accounts, err := s.repos.Account.ListAccountsByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return accounts, nil
	}
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	filtered := accounts[:0]
	for _, account := range accounts {
		if wanted[account.ID] {
			filtered = append(filtered, account)
		}
	}
	return filtered, nil
}

func (s *AccountService) ListAccounts() ([]models.Account, error) {
	return s.repos.Account.ListAccounts()
}

func (s *AccountService) UpdateAccount(c *gin.Context, id uint, input dto.UpdateAccountDTO) (models.Account, error) {
	account, err := s.repos.Account.GetAccountByID(id)
	if err != nil {
		return models.Account{}, ErrAccountNotFound
	}

	oldAccount := account

	if input.AccountName != nil {
		account.AccountName = *input.AccountName
	}
	if input.AccountType != nil {
		switch models.AccountType(*input.AccountType) {
		case models.AccountTypeClient, models.AccountTypePartner, models.AccountTypeVendor:
			account.AccountType = *input.AccountType
		default:
			return models.Account{}, ErrInvalidAccountType
		}
	}
	if input.Description != nil {
		account.Description = *input.Description
	}

	err = s.repos.Account.UpdateAccount(&account)
	if err == nil {
		utils.LogAuditWithConsole(c, "update", "account", fmt.Sprintf("id=%d", account.ID), oldAccount, account, "", s.repos.Audit)
	}
	return account, err
}

func (s *AccountService) DeleteAccount(c *gin.Context, id uint) error {
	account, err := s.repos.Account.GetAccountByID(id)
	if err != nil {
		return ErrAccountNotFound
	}

	err = s.repos.Account.DeleteAccount(id)
	if err == nil {
		utils.LogAuditWithConsole(c, "delete", "account", fmt.Sprintf("id=%d", account.ID), account, nil, "", s.repos.Audit)
	}
	return err
}
