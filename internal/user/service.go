package user

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/shift-scheduling/internal"
	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
)

// Placeholders shown for accounts without a linked employee.
const (
	UnassignedName = "Sin Asignar"
	UnassignedCode = "N/A"
)

const defaultBulkPassword = "1234"

type EmployeeDirectory interface {
	GetAll() ([]*employeeModel.Employee, error)
	GetByID(id string) (*employeeModel.Employee, error)
	GetByCode(code string) (*employeeModel.Employee, error)
	Update(emp *employeeModel.Employee) error
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

// FindByCredential resolves a login credential to an account using the
// fixed precedence chain. Password comparison is exact-match plaintext at
// every step; the caller gets one combined rejection regardless of whether
// the identity or the password failed. The resolved display name and the
// branch that matched are returned alongside the account.
func (s *Service) FindByCredential(credential, password string) (*User, string, CredentialBranch, error) {
	credRaw := strings.TrimSpace(credential)
	credLower := strings.ToLower(credRaw)

	if credLower == AdminUsername {
		account, err := s.matchAdminShortcut(password)
		if err != nil {
			return nil, "", "", err
		}
		return account, "Administrador", BranchAdminShortcut, s.rejectInactive(account)
	}

	matched, err := s.findEmployeeByCodeOrName(credLower)
	if err != nil {
		return nil, "", "", internal.NewInternalError("failed to resolve credential", err)
	}

	if matched != nil {
		account, err := s.matchLinkedAccount(matched.ID, password)
		if err != nil {
			return nil, "", "", err
		}
		return account, matched.Name, BranchEmployeeCrossRef, s.rejectInactive(account)
	}

	// Legacy fallback: accounts created before usernames moved to employee
	// names can still log in with their stored username.
	account, err := s.matchLegacyUsername(credLower, password)
	if err != nil {
		return nil, "", "", err
	}
	return account, credRaw, BranchLegacyUsername, s.rejectInactive(account)
}

func (s *Service) matchAdminShortcut(password string) (*User, error) {
	rec, err := s.repo.GetByUsername(AdminUsername)
	if err != nil {
		return nil, internal.NewInternalError("failed to resolve credential", err)
	}
	if rec == nil || rec.Password != password {
		return nil, internal.ErrInvalidCredentials
	}
	return FromDataModel(rec), nil
}

func (s *Service) matchLinkedAccount(employeeID, password string) (*User, error) {
	rec, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to resolve credential", err)
	}
	if rec == nil || rec.Password != password {
		return nil, internal.ErrInvalidCredentials
	}
	return FromDataModel(rec), nil
}

func (s *Service) matchLegacyUsername(credLower, password string) (*User, error) {
	rec, err := s.repo.GetByUsername(credLower)
	if err != nil {
		return nil, internal.NewInternalError("failed to resolve credential", err)
	}
	if rec == nil || rec.Password != password {
		return nil, internal.ErrInvalidCredentials
	}
	return FromDataModel(rec), nil
}

func (s *Service) rejectInactive(account *User) error {
	if account != nil && !account.IsActive() {
		return internal.ErrAccountInactive
	}
	return nil
}

func (s *Service) findEmployeeByCodeOrName(credLower string) (*employeeModel.Employee, error) {
	emps, err := s.employees.GetAll()
	if err != nil {
		return nil, err
	}
	for _, emp := range emps {
		if strings.ToLower(strings.TrimSpace(emp.Code)) == credLower ||
			strings.ToLower(strings.TrimSpace(emp.Name)) == credLower {
			return emp, nil
		}
	}
	return nil, nil
}

// ListUsers returns every account joined with its employee details for the
// admin screen.
func (s *Service) ListUsers() ([]*UserWithEmployee, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}

	emps, err := s.employees.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	byID := make(map[string]*employeeModel.Employee, len(emps))
	for _, emp := range emps {
		byID[emp.ID] = emp
	}

	rows := make([]*UserWithEmployee, 0, len(records))
	for _, rec := range records {
		u := FromDataModel(rec)
		if u.Status == "" {
			u.Status = StatusActive
		}
		row := &UserWithEmployee{User: *u, EmployeeName: UnassignedName, EmployeeCode: UnassignedCode}
		if u.EmployeeID != nil {
			if emp, ok := byID[*u.EmployeeID]; ok {
				row.EmployeeName = emp.Name
				row.EmployeeCode = emp.Code
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ListUsersWithCodes feeds the login autocomplete: active accounts only,
// employee code resolved through the roster.
func (s *Service) ListUsersWithCodes() ([]UserWithCode, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list users", err)
	}

	emps, err := s.employees.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	byID := make(map[string]*employeeModel.Employee, len(emps))
	for _, emp := range emps {
		byID[emp.ID] = emp
	}

	rows := make([]UserWithCode, 0, len(records))
	for _, rec := range records {
		if rec.Status == StatusInactive {
			continue
		}
		row := UserWithCode{Username: rec.Username}
		if rec.EmployeeID != nil {
			if emp, ok := byID[*rec.EmployeeID]; ok {
				code := emp.Code
				row.EmployeeCode = &code
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get user", err)
	}
	if rec == nil {
		return nil, internal.ErrUserNotFound
	}
	return FromDataModel(rec), nil
}

func (s *Service) CreateUser(dto *CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	existing, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		return nil, internal.NewInternalError("failed to check username", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("a user with this username already exists", internal.ErrCodeDuplicateUsername)
	}

	status := dto.Status
	if status == "" {
		status = StatusActive
	}

	now := time.Now()
	u := &User{
		ID:         uuid.NewString(),
		Username:   dto.Username,
		Password:   dto.Password,
		Role:       dto.Role,
		Status:     status,
		EmployeeID: dto.EmployeeID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ToDataModel(u)); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// UpdateUser applies account edits and, when the modal also edited the
// linked employee's name or code, cascades those to the roster record.
func (s *Service) UpdateUser(id string, dto *UpdateUserDTO) (*User, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get user", err)
	}
	if rec == nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.Username != nil {
		rec.Username = *dto.Username
	}
	if dto.Password != nil && *dto.Password != "" {
		rec.Password = *dto.Password
	}
	if dto.Role != nil {
		rec.Role = *dto.Role
	}
	if dto.Status != nil {
		rec.Status = *dto.Status
	}
	if dto.EmployeeID != nil {
		rec.EmployeeID = dto.EmployeeID
	}
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(rec); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, internal.NewInternalError("failed to update user", err)
	}

	if rec.EmployeeID != nil && (dto.EmployeeName != nil || dto.EmployeeCode != nil) {
		emp, err := s.employees.GetByID(*rec.EmployeeID)
		if err != nil {
			return nil, internal.NewInternalError("failed to get linked employee", err)
		}
		if emp != nil {
			if dto.EmployeeName != nil {
				emp.Name = *dto.EmployeeName
			}
			if dto.EmployeeCode != nil {
				emp.Code = *dto.EmployeeCode
			}
			emp.UpdatedAt = time.Now()
			if err := s.employees.Update(emp); err != nil {
				return nil, internal.NewInternalError("failed to update linked employee", err)
			}
		}
	}

	return FromDataModel(rec), nil
}

// DeleteUser removes the login account only; the employee record, and any
// shifts keyed to it, are kept for audit.
func (s *Service) DeleteUser(id string) error {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get user", err)
	}
	if rec == nil {
		return internal.ErrUserNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// LookupEmployee backs the self-registration form: it confirms the code
// exists on the roster and is not already linked to an account.
func (s *Service) LookupEmployee(code string) (*EmployeeLookup, error) {
	emp, err := s.employees.GetByCode(strings.TrimSpace(code))
	if err != nil {
		return nil, internal.NewInternalError("failed to look up employee", err)
	}
	if emp == nil {
		return nil, internal.NewNotFoundError("no employee found with this code", internal.ErrCodeEmployeeNotFound)
	}

	linked, err := s.repo.GetByEmployeeID(emp.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up employee", err)
	}
	if linked != nil {
		return nil, internal.NewConflictError("this employee already has an account", internal.ErrCodeAccountExists)
	}

	return &EmployeeLookup{ID: emp.ID, Code: emp.Code, Name: emp.Name, Role: emp.Role}, nil
}

// BulkUpsertUsers creates or updates accounts by case-insensitive username.
// With replace set, every non-admin account is dropped first so the upload
// becomes the authoritative set without locking admins out.
func (s *Service) BulkUpsertUsers(dto *BulkUsersDTO) (*BulkUsersResult, error) {
	if dto.Replace {
		if err := s.repo.DeleteNonAdmin(); err != nil {
			return nil, internal.NewInternalError("failed to clear non-admin users", err)
		}
	}

	result := &BulkUsersResult{}
	for _, row := range dto.Users {
		if row.Username == "" {
			continue
		}

		var employeeID *string
		if row.EmployeeCode != "" {
			emp, err := s.employees.GetByCode(row.EmployeeCode)
			if err != nil {
				return nil, internal.NewInternalError("failed to resolve employee code", err)
			}
			if emp != nil {
				employeeID = &emp.ID
			}
		}

		existing, err := s.repo.GetByUsername(row.Username)
		if err != nil {
			return nil, internal.NewInternalError("failed to check username", err)
		}

		if existing != nil {
			if row.Role != "" {
				existing.Role = row.Role
			}
			if row.Status != "" {
				existing.Status = row.Status
			} else if existing.Status == "" {
				existing.Status = StatusActive
			}
			if row.Password != "" {
				existing.Password = row.Password
			}
			if employeeID != nil {
				existing.EmployeeID = employeeID
			}
			existing.UpdatedAt = time.Now()
			if err := s.repo.Update(existing); err != nil {
				return nil, internal.NewInternalError("failed to update user", err)
			}
			result.Updated++
			continue
		}

		role := row.Role
		if role == "" {
			role = RoleEmployee
		}
		status := row.Status
		if status == "" {
			status = StatusActive
		}
		password := row.Password
		if password == "" {
			password = defaultBulkPassword
		}

		now := time.Now()
		u := &User{
			ID:         uuid.NewString(),
			Username:   row.Username,
			Password:   password,
			Role:       role,
			Status:     status,
			EmployeeID: employeeID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.Create(ToDataModel(u)); err != nil {
			return nil, internal.NewInternalError("failed to create user", err)
		}
		result.Created++
	}

	s.logger.Info("bulk user upload applied", "created", result.Created, "updated", result.Updated, "replace", dto.Replace)
	return result, nil
}
