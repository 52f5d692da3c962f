package bulksync

import (
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/shift-scheduling/internal"
	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	"github.com/frahmantamala/shift-scheduling/internal/employee"
	"github.com/frahmantamala/shift-scheduling/internal/schedule"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
	"github.com/frahmantamala/shift-scheduling/internal/spreadsheet"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

const dateLayout = "2006-01-02"

// EmployeeAPI is the slice of the employee service the sync needs.
type EmployeeAPI interface {
	ListEmployees() ([]*employee.Employee, error)
	CreateEmployee(dto *employee.CreateEmployeeDTO) (*employee.Employee, error)
	UpdateEmployeeName(id, name string) error
}

type UserAPI interface {
	CreateUser(dto *user.CreateUserDTO) (*user.User, error)
}

type ShiftStore interface {
	GetInRange(r shift.DateRange) ([]*shiftModel.Shift, error)
	ReplaceInRange(r shift.DateRange, records []*shiftModel.Shift) error
}

// SyncReport summarizes an applied upload, including the codes whose cells
// could not be resolved to any employee and were therefore dropped.
type SyncReport struct {
	CreatedEmployees int      `json:"createdEmployees"`
	UpdatedNames     int      `json:"updatedNames"`
	AppliedShifts    int      `json:"appliedShifts"`
	SkippedCount     int      `json:"skippedCount"`
	SkippedCodes     []string `json:"skippedCodes"`
	PeriodStart      string   `json:"periodStart,omitempty"`
	PeriodEnd        string   `json:"periodEnd,omitempty"`
}

type Service struct {
	employees EmployeeAPI
	users     UserAPI
	shifts    ShiftStore
	logger    *slog.Logger
}

func NewService(employees EmployeeAPI, users UserAPI, shifts ShiftStore, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		users:     users,
		shifts:    shifts,
		logger:    logger,
	}
}

// Preview decodes an uploaded workbook and reconciles it against the roster
// without changing anything.
func (s *Service) Preview(r io.Reader) (*spreadsheet.ReconciliationResult, error) {
	grid, err := spreadsheet.DecodeGrid(r)
	if err != nil {
		return nil, err
	}

	roster, err := s.roster()
	if err != nil {
		return nil, err
	}

	return spreadsheet.Reconcile(grid, roster)
}

// Apply commits a reconciled upload. Roster changes run first; the shift
// replacement only runs once every new employee and name update has landed,
// so a half-applied roster never gets shifts pointed at it.
func (s *Service) Apply(result *spreadsheet.ReconciliationResult, confirmed bool) (*SyncReport, error) {
	if (len(result.NewFindings) > 0 || len(result.NameUpdates) > 0) && !confirmed {
		return nil, internal.NewConflictError(
			"roster changes detected; confirm before applying",
			internal.ErrCodeConfirmationRequired,
		)
	}

	report := &SyncReport{SkippedCodes: []string{}}

	for _, finding := range result.NewFindings {
		name := finding.Name
		if name == "" {
			name = spreadsheet.NoNamePlaceholder
		}
		emp, err := s.employees.CreateEmployee(&employee.CreateEmployeeDTO{
			Code: finding.Code,
			Name: name,
		})
		if err != nil {
			return nil, err
		}

		username := strings.ToLower(finding.Code)
		if _, err := s.users.CreateUser(&user.CreateUserDTO{
			Username:   username,
			Password:   finding.Code,
			Role:       user.RoleEmployee,
			Status:     user.StatusActive,
			EmployeeID: &emp.ID,
		}); err != nil {
			return nil, err
		}
		report.CreatedEmployees++
	}

	if len(result.NameUpdates) > 0 {
		roster, err := s.roster()
		if err != nil {
			return nil, err
		}
		byCode := make(map[string]spreadsheet.RosterEmployee, len(roster))
		for _, re := range roster {
			byCode[strings.ToLower(re.Code)] = re
		}
		for _, update := range result.NameUpdates {
			re, ok := byCode[strings.ToLower(update.Code)]
			if !ok {
				continue
			}
			if err := s.employees.UpdateEmployeeName(re.ID, update.ExcelName); err != nil {
				return nil, err
			}
			report.UpdatedNames++
		}
	}

	if len(result.ShiftsData) == 0 {
		s.logger.Info("bulk sync applied", "created", report.CreatedEmployees, "updated_names", report.UpdatedNames)
		return report, nil
	}

	roster, err := s.roster()
	if err != nil {
		return nil, err
	}
	idByCode := make(map[string]string, len(roster))
	for _, re := range roster {
		idByCode[strings.ToLower(re.Code)] = re.ID
	}

	span := shift.DateRange{Start: result.ShiftsData[0].Date, End: result.ShiftsData[0].Date}
	records := make([]*shiftModel.Shift, 0, len(result.ShiftsData))
	skipped := map[string]bool{}
	for _, assignment := range result.ShiftsData {
		if assignment.Date < span.Start {
			span.Start = assignment.Date
		}
		if assignment.Date > span.End {
			span.End = assignment.Date
		}

		employeeID, ok := idByCode[strings.ToLower(assignment.EmployeeCode)]
		if !ok {
			skipped[assignment.EmployeeCode] = true
			report.SkippedCount++
			continue
		}
		records = append(records, &shiftModel.Shift{
			EmployeeID: employeeID,
			Date:       assignment.Date,
			Type:       assignment.Type,
		})
	}

	if err := s.shifts.ReplaceInRange(span, records); err != nil {
		return nil, internal.NewInternalError("failed to replace shifts", err)
	}

	report.AppliedShifts = len(records)
	report.PeriodStart = span.Start
	report.PeriodEnd = span.End
	for code := range skipped {
		report.SkippedCodes = append(report.SkippedCodes, code)
	}
	sort.Strings(report.SkippedCodes)

	s.logger.Info("bulk sync applied",
		"created", report.CreatedEmployees,
		"updated_names", report.UpdatedNames,
		"applied_shifts", report.AppliedShifts,
		"skipped", report.SkippedCount,
		"period_start", span.Start,
		"period_end", span.End,
	)
	return report, nil
}

// Template builds an empty workbook for a work period, one column per day.
func (s *Service) Template(year int, month time.Month) (*excelize.File, error) {
	roster, err := s.roster()
	if err != nil {
		return nil, err
	}
	dates := schedule.WorkPeriodDates(year, month)
	return spreadsheet.BuildSchedule(roster, dates, nil)
}

// Export builds a workbook for a work period with the stored shifts filled
// in.
func (s *Service) Export(year int, month time.Month) (*excelize.File, error) {
	roster, err := s.roster()
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(roster))
	codeByID := make(map[string]string, len(roster))
	for _, re := range roster {
		nameByID[re.ID] = re.Name
		codeByID[re.ID] = re.Code
	}

	dates := schedule.WorkPeriodDates(year, month)
	period := shift.DateRange{
		Start: dates[0].Format(dateLayout),
		End:   dates[len(dates)-1].Format(dateLayout),
	}

	stored, err := s.shifts.GetInRange(period)
	if err != nil {
		return nil, internal.NewInternalError("failed to load shifts", err)
	}

	assignments := map[string]map[string]string{}
	for _, rec := range stored {
		code, ok := codeByID[rec.EmployeeID]
		if !ok {
			continue
		}
		if assignments[code] == nil {
			assignments[code] = map[string]string{}
		}
		assignments[code][rec.Date] = rec.Type
	}

	return spreadsheet.BuildSchedule(roster, dates, assignments)
}

func (s *Service) roster() ([]spreadsheet.RosterEmployee, error) {
	emps, err := s.employees.ListEmployees()
	if err != nil {
		return nil, err
	}
	roster := make([]spreadsheet.RosterEmployee, 0, len(emps))
	for _, emp := range emps {
		roster = append(roster, spreadsheet.RosterEmployee{ID: emp.ID, Code: emp.Code, Name: emp.Name})
	}
	return roster, nil
}
