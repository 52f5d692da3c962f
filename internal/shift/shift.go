package shift

import (
	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
)

// TerminalCode marks the day an employee left; it is reserved and cannot be
// redefined as a configurable shift type.
const TerminalCode = "E"

type Shift struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Type       string `json:"type"`
}

// DateRange is an inclusive span of literal YYYY-MM-DD keys. Comparison is
// lexicographic, which orders correctly for ISO dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

func ToDataModel(s *Shift) *shiftModel.Shift {
	return &shiftModel.Shift{
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		Type:       s.Type,
	}
}

func FromDataModel(s *shiftModel.Shift) *Shift {
	return &Shift{
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		Type:       s.Type,
	}
}

type RepositoryAPI interface {
	GetAll() ([]*shiftModel.Shift, error)
	GetInRange(r DateRange) ([]*shiftModel.Shift, error)
	UpsertBatch(records []*shiftModel.Shift) error
	ReplaceInRange(r DateRange, records []*shiftModel.Shift) error
}
