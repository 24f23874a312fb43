package dto

import "medibook-portal/internal/domain/entity"

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SessionResponse struct {
	Role     entity.Role `json:"role"`
	ID       int         `json:"id"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
}
