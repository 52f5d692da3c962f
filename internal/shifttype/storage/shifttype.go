package storage

import (
	"gorm.io/gorm"

	shiftTypeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shifttype"
	"github.com/frahmantamala/shift-scheduling/internal/shifttype"
)

type ShiftTypeRepository struct {
	db *gorm.DB
}

func NewShiftTypeRepository(db *gorm.DB) shifttype.RepositoryAPI {
	return &ShiftTypeRepository{db: db}
}

func (r *ShiftTypeRepository) GetAll() ([]*shiftTypeModel.ShiftType, error) {
	var types []*shiftTypeModel.ShiftType
	err := r.db.Order("position ASC").Find(&types).Error
	return types, err
}

// ReplaceAll swaps the whole catalogue in one transaction, preserving the
// read-all/replace-all contract bulk configuration depends on.
func (r *ShiftTypeRepository) ReplaceAll(types []*shiftTypeModel.ShiftType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&shiftTypeModel.ShiftType{}).Error; err != nil {
			return err
		}
		if len(types) == 0 {
			return nil
		}
		return tx.Create(types).Error
	})
}
