package dto

import (
	"time"

	"github.com/asadmehmood/investhub/internal/domain"
)

type RegisterRequestDTO struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"fullName" validate:"required,min=2,max=100"`
	Address         string `json:"address" validate:"required"`
	City            string `json:"city" validate:"required"`
	MobileNumber    string `json:"mobileNumber" validate:"required,min=7,max=20"`
	EasyPaisaNumber string `json:"easypaisaNumber" validate:"required,min=7,max=20"`
	ReferralCode    string `json:"referralCode"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"fullName"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	MobileNumber    string    `json:"mobileNumber"`
	EasyPaisaNumber string    `json:"easypaisaNumber"`
	Role            string    `json:"role"`
	YoutubeVerified bool      `json:"youtubeVerified"`
	ReferralCode    string    `json:"referralCode"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Address:         u.Address,
		City:            u.City,
		MobileNumber:    u.MobileNumber,
		EasyPaisaNumber: u.EasyPaisaNumber,
		Role:            u.Role,
		YoutubeVerified: u.YoutubeVerified,
		ReferralCode:    u.ReferralCode,
		Active:          u.Active,
		CreatedAt:       u.CreatedAt,
	}
}

