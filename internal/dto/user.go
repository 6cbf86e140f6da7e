package dto

import (
	"time"

	"signcraft/internal/domain"
)

// UserDTO is the wire shape of an account. The password hash is never
// serialized.
type UserDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func NewUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, NewUserDTO(u))
	}
	return dtos
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

type UserListResponse struct {
	Users []UserDTO `json:"users"`
}
