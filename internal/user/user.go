package user

import (
	"time"

	userModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/user"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// AdminUsername is the reserved credential for the primary administrator
// shortcut: typing "admin" resolves directly against this account, skipping
// the employee cross-reference entirely.
const AdminUsername = "admin"

// CredentialBranch records which step of the login precedence chain
// resolved a credential. The order is fixed: admin shortcut, then employee
// code-or-name cross-reference, then the legacy username fallback.
type CredentialBranch string

const (
	BranchAdminShortcut    CredentialBranch = "admin_shortcut"
	BranchEmployeeCrossRef CredentialBranch = "employee_cross_ref"
	BranchLegacyUsername   CredentialBranch = "legacy_username"
)

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	EmployeeID *string   `json:"employeeId,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	// accounts predating the status field count as active
	return u.Status == "" || u.Status == StatusActive
}

func ToDataModel(u *User) *userModel.User {
	return &userModel.User{
		ID:         u.ID,
		Username:   u.Username,
		Password:   u.Password,
		Role:       u.Role,
		Status:     u.Status,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func FromDataModel(u *userModel.User) *User {
	return &User{
		ID:         u.ID,
		Username:   u.Username,
		Password:   u.Password,
		Role:       u.Role,
		Status:     u.Status,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type RepositoryAPI interface {
	GetAll() ([]*userModel.User, error)
	GetByID(id string) (*userModel.User, error)
	GetByUsername(username string) (*userModel.User, error)
	GetByEmployeeID(employeeID string) (*userModel.User, error)
	Create(u *userModel.User) error
	Update(u *userModel.User) error
	Delete(id string) error
	DeleteNonAdmin() error
}
