package shift

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/shift-scheduling/internal"
	shiftModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shift"
	shiftTypeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shifttype"
)

const dateLayout = "2006-01-02"

// The employee week view is anchored on Saturday, matching the factory's
// posting rhythm (schedules go up for the Saturday-to-Friday week).
const weekStart = time.Saturday

type ShiftTypeSource interface {
	GetAll() ([]*shiftTypeModel.ShiftType, error)
}

type Service struct {
	repo       RepositoryAPI
	shiftTypes ShiftTypeSource
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, shiftTypes ShiftTypeSource, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		shiftTypes: shiftTypes,
		logger:     logger,
	}
}

// ListShifts returns records in the inclusive range, or every record when
// both bounds are empty.
func (s *Service) ListShifts(start, end string) ([]*Shift, error) {
	var records []*shiftModel.Shift
	var err error

	if start == "" && end == "" {
		records, err = s.repo.GetAll()
	} else {
		if start == "" || end == "" {
			return nil, internal.NewValidationError("both startDate and endDate are required", internal.ErrCodeInvalidDateRange)
		}
		records, err = s.repo.GetInRange(DateRange{Start: start, End: end})
	}
	if err != nil {
		s.logger.Error("failed to list shifts", "error", err)
		return nil, internal.NewInternalError("failed to list shifts", err)
	}

	shifts := make([]*Shift, 0, len(records))
	for _, rec := range records {
		shifts = append(shifts, FromDataModel(rec))
	}
	return shifts, nil
}

// SaveShifts upserts individual cell edits from the grid: at most one record
// per (employee, date) key, last write wins.
func (s *Service) SaveShifts(dto *SaveShiftsDTO) error {
	if err := dto.Validate(); err != nil {
		return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if len(dto.Shifts) == 0 {
		return nil
	}

	records := make([]*shiftModel.Shift, 0, len(dto.Shifts))
	for _, in := range dto.Shifts {
		records = append(records, &shiftModel.Shift{
			EmployeeID: in.EmployeeID,
			Date:       in.Date,
			Type:       in.Type,
		})
	}

	if err := s.repo.UpsertBatch(records); err != nil {
		s.logger.Error("failed to save shifts", "error", err, "count", len(records))
		return internal.NewInternalError("failed to save shifts", err)
	}

	s.logger.Info("shifts saved", "count", len(records))
	return nil
}

// Week returns one employee's shifts for the 7-day week containing ref.
func (s *Service) Week(employeeID string, ref time.Time) (*WeekResponse, error) {
	start := ref
	for start.Weekday() != weekStart {
		start = start.AddDate(0, 0, -1)
	}
	end := start.AddDate(0, 0, 6)

	week := DateRange{Start: start.Format(dateLayout), End: end.Format(dateLayout)}

	records, err := s.repo.GetInRange(week)
	if err != nil {
		s.logger.Error("failed to load week", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to load week", err)
	}

	labels := s.labelsByCode()

	byDate := make(map[string]string)
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			byDate[rec.Date] = rec.Type
		}
	}

	days := make([]WeekDay, 0, 7)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		day := WeekDay{Date: date}
		if code, ok := byDate[date]; ok {
			day.Type = code
			day.Label = labels[code]
		}
		days = append(days, day)
	}

	return &WeekResponse{Start: week.Start, End: week.End, Days: days}, nil
}

func (s *Service) labelsByCode() map[string]string {
	labels := map[string]string{TerminalCode: "Terminado"}

	defs, err := s.shiftTypes.GetAll()
	if err != nil {
		// labels are cosmetic; a config read failure must not break the week view
		s.logger.Warn("failed to load shift type labels", "error", err)
		return labels
	}
	for _, def := range defs {
		labels[def.Code] = def.Label
	}
	return labels
}
