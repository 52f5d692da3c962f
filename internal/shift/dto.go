package shift

import (
	"errors"
	"strings"
)

type SaveShiftsDTO struct {
	Shifts []ShiftDTO `json:"shifts"`
}

type ShiftDTO struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Type       string `json:"type"`
}

func (dto SaveShiftsDTO) Validate() error {
	for _, s := range dto.Shifts {
		if s.EmployeeID == "" {
			return errors.New("employeeId is required for every shift")
		}
		if s.Date == "" {
			return errors.New("date is required for every shift")
		}
		if strings.TrimSpace(s.Type) == "" {
			return errors.New("type is required for every shift")
		}
	}
	return nil
}

type WeekDay struct {
	Date  string `json:"date"`
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
}

type WeekResponse struct {
	Start string    `json:"start"`
	End   string    `json:"end"`
	Days  []WeekDay `json:"days"`
}
