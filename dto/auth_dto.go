package dto

type LoginDTO struct {
	SecretKey string `json:"secretKey" binding:"required"`
}

type CreateUserDTO struct {
	UserName string  `json:"user_name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Email    *string `json:"email,omitempty"`
}

type UpdateUserDTO struct {
	UserName *string `json:"user_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Email    *string `json:"email,omitempty"`
}
