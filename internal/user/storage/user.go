package storage

import (
	"errors"

	"gorm.io/gorm"

	userModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/user"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*userModel.User, error) {
	var users []*userModel.User
	if err := r.db.Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) GetByID(id string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByUsername(username string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByEmployeeID(employeeID string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("employee_id = ?", employeeID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(u *userModel.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) Update(u *userModel.User) error {
	return r.db.Save(u).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&userModel.User{}).Error
}

func (r *Repository) DeleteNonAdmin() error {
	return r.db.Where("role <> ?", user.RoleAdmin).Delete(&userModel.User{}).Error
}
