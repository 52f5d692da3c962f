package user

import "errors"

// UserWithEmployee is the admin listing row: the account joined with its
// linked employee. Unlinked accounts show the original placeholders.
type UserWithEmployee struct {
	User
	EmployeeName string `json:"employeeName"`
	EmployeeCode string `json:"employeeCode"`
}

type CreateUserDTO struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Status     string  `json:"status,omitempty"`
	EmployeeID *string `json:"employeeId,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Username == "" {
		return errors.New("username is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	if dto.Role != RoleAdmin && dto.Role != RoleEmployee {
		return errors.New("role must be admin or employee")
	}
	return nil
}

// UpdateUserDTO mirrors the admin edit modal: account fields plus optional
// cascading edits to the linked employee's name and code.
type UpdateUserDTO struct {
	Username     *string `json:"username,omitempty"`
	Password     *string `json:"password,omitempty"`
	Role         *string `json:"role,omitempty"`
	Status       *string `json:"status,omitempty"`
	EmployeeID   *string `json:"employeeId,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
	EmployeeCode *string `json:"employeeCode,omitempty"`
}

type BulkUserRow struct {
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	Role         string `json:"role,omitempty"`
	Status       string `json:"status,omitempty"`
	EmployeeCode string `json:"employeeCode,omitempty"`
}

type BulkUsersDTO struct {
	Users   []BulkUserRow `json:"users"`
	Replace bool          `json:"replace"`
}

type BulkUsersResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// EmployeeLookup is the registration pre-check response: the roster entry
// a code resolves to, confirmed to have no account yet.
type EmployeeLookup struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// UserWithCode feeds the login autocomplete: active usernames with their
// employee codes resolved through the roster when not stored directly.
type UserWithCode struct {
	Username     string  `json:"username"`
	EmployeeCode *string `json:"employeeCode"`
}
