package storage

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/shift-scheduling/internal/employee"
	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employeeModel.Employee, error) {
	var employees []*employeeModel.Employee
	err := r.db.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id string) (*employeeModel.Employee, error) {
	var emp employeeModel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByCode(code string) (*employeeModel.Employee, error) {
	var emp employeeModel.Employee
	err := r.db.Where("LOWER(code) = LOWER(?)", code).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(emp *employeeModel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(emp *employeeModel.Employee) error {
	return r.db.Save(emp).Error
}

func (r *EmployeeRepository) UpdateName(id, name string) error {
	return r.db.Model(&employeeModel.Employee{}).Where("id = ?", id).Update("name", name).Error
}
