package dto

type CreateAccountDTO struct {
	AccountName string `json:"account_name" binding:"required"`
	AccountType string `json:"account_type"`
	Description string `json:"description"`
}

type UpdateAccountDTO struct {
	AccountName *string `json:"account_name,omitempty"`
	AccountType *string `json:"account_type,omitempty"`
	Description *string `json:"description,omitempty"`
}
