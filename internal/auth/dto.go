package auth

import (
	"errors"
	"strings"

	"github.com/frahmantamala/shift-scheduling/internal/user"
)

// LoginDTO carries the raw credential exactly as typed. It may be the admin
// shortcut, an employee code, an employee name, or a legacy username; the
// service decides which.
type LoginDTO struct {
	Credential string `json:"credential"`
	Password   string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if strings.TrimSpace(dto.Credential) == "" {
		return errors.New("credential is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type RegisterDTO struct {
	EmployeeCode string `json:"employeeCode"`
	Password     string `json:"password"`
}

func (dto RegisterDTO) Validate() error {
	if strings.TrimSpace(dto.EmployeeCode) == "" {
		return errors.New("employee code is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto RefreshTokenDTO) Validate() error {
	if dto.RefreshToken == "" {
		return errors.New("refresh token is required")
	}
	return nil
}

// LoginResponse pairs the token set with the resolved identity so the client
// can greet the person by their roster name rather than their username.
type LoginResponse struct {
	AuthTokens
	DisplayName string     `json:"displayName"`
	User        *user.User `json:"user"`
}
