package schedule

import (
	"log/slog"
	"time"

	employeeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/employee"
	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
)

const dateLayout = "2006-01-02"

type EmployeeSource interface {
	GetAll() ([]*employeeModel.Employee, error)
}

type ShiftSource interface {
	GetInRange(r shift.DateRange) ([]*shiftModel.Shift, error)
}

// Service assembles the admin schedule grid: the roster crossed with every
// day of a work period, plus per-employee statistics.
type Service struct {
	employees EmployeeSource
	shifts    ShiftSource
	logger    *slog.Logger
}

func NewService(employees EmployeeSource, shifts ShiftSource, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		shifts:    shifts,
		logger:    logger,
	}
}

type GridRow struct {
	EmployeeID string            `json:"employeeId"`
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Shifts     map[string]string `json:"shifts"`
	Statistics WorkStatistics    `json:"statistics"`
}

type GridResponse struct {
	DisplayMonth string    `json:"displayMonth"`
	PeriodLabel  string    `json:"periodLabel"`
	Dates        []string  `json:"dates"`
	Rows         []GridRow `json:"rows"`
}

// Grid builds the schedule grid for the period displayed as (year, month).
func (s *Service) Grid(year int, month time.Month) (*GridResponse, error) {
	dates := WorkPeriodDates(year, month)
	start := dates[0].Format(dateLayout)
	end := dates[len(dates)-1].Format(dateLayout)

	emps, err := s.employees.GetAll()
	if err != nil {
		s.logger.Error("grid: failed to list employees", "error", err)
		return nil, err
	}

	records, err := s.shifts.GetInRange(shift.DateRange{Start: start, End: end})
	if err != nil {
		s.logger.Error("grid: failed to list shifts", "error", err, "start", start, "end", end)
		return nil, err
	}

	byEmployee := make(map[string][]ShiftEntry)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], ShiftEntry{Date: rec.Date, Type: rec.Type})
	}

	dateLabels := make([]string, len(dates))
	for i, d := range dates {
		dateLabels[i] = d.Format(dateLayout)
	}

	display := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	period := WorkPeriod{Start: dates[0], End: dates[len(dates)-1], DisplayMonth: display}

	rows := make([]GridRow, 0, len(emps))
	for _, emp := range emps {
		entries := byEmployee[emp.ID]
		cells := make(map[string]string, len(entries))
		for _, e := range entries {
			cells[e.Date] = e.Type
		}
		rows = append(rows, GridRow{
			EmployeeID: emp.ID,
			Code:       emp.Code,
			Name:       emp.Name,
			Role:       emp.Role,
			Shifts:     cells,
			Statistics: CalculateWorkStatistics(entries, dates),
		})
	}

	return &GridResponse{
		DisplayMonth: display.Format("2006-01"),
		PeriodLabel:  FormatWorkPeriod(period),
		Dates:        dateLabels,
		Rows:         rows,
	}, nil
}
