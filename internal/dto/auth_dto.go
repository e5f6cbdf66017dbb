package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	Username  string    `json:"username"`
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult carries the signed token alongside the user so the controller
// can decide between cookie and body transport.
type AuthResult struct {
	Token string
	User  UserDTO
}
