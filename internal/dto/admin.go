package dto

import "github.com/asadmehmood/investhub/internal/domain"

type AdminNoteRequestDTO struct {
	Note string `json:"note"`
}

type AdminUserDTO struct {
	User  UserDTO          `json:"user"`
	Stats domain.UserStats `json:"stats"`
}

type PagedUsersResponseDTO struct {
	Users []AdminUserDTO `json:"users"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
