package employee

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/shift-scheduling/internal"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListEmployees() ([]*Employee, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}

	employees := make([]*Employee, 0, len(records))
	for _, rec := range records {
		employees = append(employees, FromDataModel(rec))
	}
	return employees, nil
}

func (s *Service) GetEmployee(id string) (*Employee, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if rec == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromDataModel(rec), nil
}

func (s *Service) GetEmployeeByCode(code string) (*Employee, error) {
	rec, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if rec == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromDataModel(rec), nil
}

// CreateEmployee registers a new roster entry. Codes are unique across the
// whole roster, active or not, compared case-insensitively; collisions are
// rejected, never renamed.
func (s *Service) CreateEmployee(dto *CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	existing, err := s.repo.GetByCode(dto.Code)
	if err != nil {
		return nil, internal.NewInternalError("failed to check employee code", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("an employee with this code already exists", internal.ErrCodeDuplicateEmployeeCode)
	}

	joinDate := dto.JoinDate
	if joinDate == "" {
		joinDate = time.Now().Format(dateLayout)
	}
	role := dto.Role
	if role == "" {
		role = DefaultRole
	}

	now := time.Now()
	emp := &Employee{
		ID:        uuid.NewString(),
		Code:      dto.Code,
		Name:      dto.Name,
		JoinDate:  joinDate,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ToDataModel(emp)); err != nil {
		s.logger.Error("failed to create employee", "error", err, "code", dto.Code)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "code", emp.Code)
	return emp, nil
}

func (s *Service) UpdateEmployee(id string, dto *UpdateEmployeeDTO) (*Employee, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if rec == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	if dto.Code != nil && *dto.Code != rec.Code {
		other, err := s.repo.GetByCode(*dto.Code)
		if err != nil {
			return nil, internal.NewInternalError("failed to check employee code", err)
		}
		if other != nil && other.ID != rec.ID {
			return nil, internal.NewConflictError("an employee with this code already exists", internal.ErrCodeDuplicateEmployeeCode)
		}
		rec.Code = *dto.Code
	}
	if dto.Name != nil {
		rec.Name = *dto.Name
	}
	if dto.JoinDate != nil {
		rec.JoinDate = *dto.JoinDate
	}
	if dto.Role != nil {
		rec.Role = *dto.Role
	}
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(rec); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	return FromDataModel(rec), nil
}

// UpdateEmployeeName changes only the display name, leaving the code and
// history untouched. Spreadsheet reconciliation uses this for confirmed
// rename findings.
func (s *Service) UpdateEmployeeName(id, name string) error {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get employee", err)
	}
	if rec == nil {
		return internal.ErrEmployeeNotFound
	}

	if err := s.repo.UpdateName(id, name); err != nil {
		s.logger.Error("failed to rename employee", "error", err, "employee_id", id)
		return internal.NewInternalError("failed to rename employee", err)
	}
	return nil
}
