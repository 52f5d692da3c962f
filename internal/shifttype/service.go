package shifttype

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/frahmantamala/shift-scheduling/internal"
	shiftTypeModel "github.com/frahmantamala/shift-scheduling/internal/core/datamodel/shifttype"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
)

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

// GetShiftTypes returns the configured catalogue, falling back to the
// defaults when nothing has been stored yet.
func (s *Service) GetShiftTypes() ([]ShiftType, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load shift types", "error", err)
		return nil, internal.NewInternalError("failed to load shift types", err)
	}

	if len(records) == 0 {
		return Defaults(), nil
	}

	types := make([]ShiftType, 0, len(records))
	for _, rec := range records {
		types = append(types, FromDataModel(rec))
	}
	return types, nil
}

// SetShiftTypes replaces the whole catalogue. Codes must be 1-2 characters
// and unique case-insensitively; the terminal code is reserved and cannot
// be redefined.
func (s *Service) SetShiftTypes(types []ShiftType) ([]ShiftType, error) {
	if len(types) == 0 {
		return nil, internal.NewValidationError("at least one shift type is required", internal.ErrCodeInvalidShiftTypes)
	}

	seen := make(map[string]bool, len(types))
	normalized := make([]ShiftType, 0, len(types))
	for i, t := range types {
		code := strings.ToUpper(strings.TrimSpace(t.Code))
		if code == "" || len(code) > 2 {
			return nil, internal.NewValidationError(
				fmt.Sprintf("shift type %d: code must be 1 or 2 characters", i+1),
				internal.ErrCodeInvalidShiftTypes)
		}
		if code == shift.TerminalCode {
			return nil, internal.NewValidationError(
				fmt.Sprintf("code '%s' is reserved for terminated employees", shift.TerminalCode),
				internal.ErrCodeReservedShiftCode)
		}
		lower := strings.ToLower(code)
		if seen[lower] {
			return nil, internal.NewValidationError(
				fmt.Sprintf("duplicate shift type code '%s'", code),
				internal.ErrCodeInvalidShiftTypes)
		}
		seen[lower] = true

		normalized = append(normalized, ShiftType{
			Code:  code,
			Label: strings.TrimSpace(t.Label),
			Color: t.Color,
		})
	}

	records := make([]*shiftTypeModel.ShiftType, 0, len(normalized))
	for i, t := range normalized {
		records = append(records, ToDataModel(t, i))
	}

	if err := s.repo.ReplaceAll(records); err != nil {
		s.logger.Error("failed to store shift types", "error", err)
		return nil, internal.NewInternalError("failed to store shift types", err)
	}

	s.logger.Info("shift types replaced", "count", len(normalized))
	return normalized, nil
}
