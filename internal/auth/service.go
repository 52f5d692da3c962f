package auth

import (
	"log/slog"

	"github.com/frahmantamala/shift-scheduling/internal"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

// UserAPI is the slice of the user service that authentication needs.
type UserAPI interface {
	FindByCredential(credential, password string) (*user.User, string, user.CredentialBranch, error)
	GetByID(id string) (*user.User, error)
	LookupEmployee(code string) (*user.EmployeeLookup, error)
	CreateUser(dto *user.CreateUserDTO) (*user.User, error)
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	Register(dto RegisterDTO) (*LoginResponse, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUser(id string) (*user.User, error)
}

type Service struct {
	users          UserAPI
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

func NewService(users UserAPI, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:          users,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Authenticate resolves the credential through the precedence chain and
// issues a token pair for the matched account.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	account, displayName, branch, err := s.users.FindByCredential(dto.Credential, dto.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login resolved", "user_id", account.ID, "branch", string(branch))
	return s.issueTokens(account, displayName)
}

// Register links a new account to an unclaimed roster entry. The username
// becomes the employee's name so subsequent logins resolve through the
// cross-reference branch naturally.
func (s *Service) Register(dto RegisterDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	lookup, err := s.users.LookupEmployee(dto.EmployeeCode)
	if err != nil {
		return nil, err
	}

	account, err := s.users.CreateUser(&user.CreateUserDTO{
		Username:   lookup.Name,
		Password:   dto.Password,
		Role:       user.RoleEmployee,
		Status:     user.StatusActive,
		EmployeeID: &lookup.ID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "user_id", account.ID, "employee_code", lookup.Code)
	return s.issueTokens(account, lookup.Name)
}

func (s *Service) issueTokens(account *user.User, displayName string) (*LoginResponse, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate token", err)
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(account.ID, account.Role)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate token", err)
	}

	return &LoginResponse{
		AuthTokens: AuthTokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		DisplayName: displayName,
		User:        account,
	}, nil
}

// RefreshTokens validates a refresh token and issues a new pair. The account
// is re-checked so a deactivated user cannot keep rotating tokens.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	account, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return AuthTokens{}, err
	}
	if !account.IsActive() {
		return AuthTokens{}, internal.ErrAccountInactive
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(account.ID, account.Role)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to generate token", err)
	}
	newRefreshToken, err := s.tokenGenerator.GenerateRefreshToken(account.ID, account.Role)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to generate token", err)
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) GetUser(id string) (*user.User, error) {
	return s.users.GetByID(id)
}
