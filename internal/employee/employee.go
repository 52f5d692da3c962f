package employee

import (
	"time"

	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
)

// DefaultRole is assigned to employees created through bulk sync, where the
// spreadsheet carries no job title.
const DefaultRole = "Empleado"

type Employee struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	JoinDate  string    `json:"joinDate"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDataModel(e *Employee) *employeeModel.Employee {
	return &employeeModel.Employee{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		JoinDate:  e.JoinDate,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModel(e *employeeModel.Employee) *Employee {
	return &Employee{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		JoinDate:  e.JoinDate,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type RepositoryAPI interface {
	GetAll() ([]*employeeModel.Employee, error)
	GetByID(id string) (*employeeModel.Employee, error)
	GetByCode(code string) (*employeeModel.Employee, error)
	Create(emp *employeeModel.Employee) error
	Update(emp *employeeModel.Employee) error
	UpdateName(id, name string) error
}
