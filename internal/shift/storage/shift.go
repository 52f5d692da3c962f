package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) shift.RepositoryAPI {
	return &ShiftRepository{db: db}
}

func (r *ShiftRepository) GetAll() ([]*shiftModel.Shift, error) {
	var shifts []*shiftModel.Shift
	err := r.db.Order("date ASC").Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) GetInRange(rng shift.DateRange) ([]*shiftModel.Shift, error) {
	var shifts []*shiftModel.Shift
	err := r.db.Where("date BETWEEN ? AND ?", rng.Start, rng.End).Order("date ASC").Find(&shifts).Error
	return shifts, err
}

// UpsertBatch writes cell edits, replacing any existing record for the same
// (employee, date) key.
func (r *ShiftRepository) UpsertBatch(records []*shiftModel.Shift) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"type"}),
	}).Create(records).Error
}

// ReplaceInRange deletes every record whose date falls inside the inclusive
// range and inserts the new set, all in one transaction. Records outside the
// range are untouched.
func (r *ShiftRepository) ReplaceInRange(rng shift.DateRange, records []*shiftModel.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date BETWEEN ? AND ?", rng.Start, rng.End).Delete(&shiftModel.Shift{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(records).Error
	})
}
