package identity

import (
	"time"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name            string `json:"nome" binding:"required,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"senha" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmarSenha" binding:"required"`
	Farm            string `json:"nomeFazenda" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"nome" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6"`
	Farm     string `json:"fazenda" binding:"required,max=100"`
	Role     string `json:"cargo" binding:"omitempty,oneof=Administrador Gerente Funcionário"`
}

type UpdateUserRequest struct {
	Name     *string `json:"nome" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"senha" binding:"omitempty,min=6"`
	Farm     *string `json:"fazenda" binding:"omitempty,max=100"`
	Role     *string `json:"cargo" binding:"omitempty,oneof=Administrador Gerente Funcionário"`
}

type ListUsersQuery struct {
	Role   string `form:"cargo"`
	Farm   string `form:"fazenda"`
	Search string `form:"termo"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=100"`
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"nome"`
	Email      string     `json:"email"`
	Farm       string     `json:"fazenda"`
	Role       string     `json:"cargo"`
	Active     bool       `json:"ativo"`
	LastAccess *time.Time `json:"ultimo_acesso,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// LoginResponse pairs the authenticated user with its token.
type LoginResponse struct {
	User      UserResponse `json:"usuario"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expira_em"`
}

func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Farm:       user.Farm,
		Role:       string(user.Role),
		Active:     user.Active,
		LastAccess: user.LastAccess,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
