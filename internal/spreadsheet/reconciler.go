package spreadsheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/frahmantamala/shift-scheduling/internal"
	"github.com/frahmantamala/shift-scheduling/internal/schedule"
)

// NoNamePlaceholder is what a row without a usable name is called. It is
// also excluded from rename detection: an upload that omits names must not
// look like everyone was renamed to "Sin Nombre".
const NoNamePlaceholder = "Sin Nombre"

const previewRowLimit = 5

// RosterEmployee is the slice of the master roster the reconciler compares
// against.
type RosterEmployee struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewEmployeeFinding reports a spreadsheet code not present in the roster.
type NewEmployeeFinding struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NameUpdateFinding reports a roster employee whose uploaded name differs
// from the stored one.
type NameUpdateFinding struct {
	Code      string `json:"code"`
	ExcelName string `json:"excelName"`
	DBName    string `json:"dbName"`
}

// ShiftAssignment is one non-empty cell of the upload, keyed by the literal
// header text of its column.
type ShiftAssignment struct {
	EmployeeCode string `json:"employeeCode"`
	Date         string `json:"date"`
	Type         string `json:"type"`
}

type Analysis struct {
	CollaboratorsCount int    `json:"collaboratorsCount"`
	DaysCount          int    `json:"daysCount"`
	PeriodMonth        string `json:"periodMonth"`
}

type Preview struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"totalRows"`
}

type ReconciliationResult struct {
	Analysis    Analysis             `json:"analysis"`
	NewFindings []NewEmployeeFinding `json:"newFindings"`
	NameUpdates []NameUpdateFinding  `json:"nameUpdates"`
	ShiftsData  []ShiftAssignment    `json:"shiftsData"`
	Preview     Preview              `json:"preview"`
}

var isoDatePattern = regexp.MustCompile(`^(\d{4})[-/](\d{2})[-/](\d{2})$`)

var codeHeaders = map[string]bool{"código": true, "codigo": true, "code": true}
var nameHeaders = map[string]bool{"nombre": true, "name": true}

// Reconcile classifies an uploaded shift table against the master roster.
// It is a pure function: parsing the same grid against the same roster
// always yields the same findings and assignments. Findings are never
// applied here; they are surfaced for operator confirmation.
func Reconcile(grid [][]string, roster []RosterEmployee) (*ReconciliationResult, error) {
	if len(grid) < 2 {
		return nil, internal.NewValidationError(
			"the file is empty or malformed: a header row and data rows are required",
			internal.ErrCodeEmptyWorkbook)
	}

	headers := grid[0]
	rows := grid[1:]

	codeIdx, nameIdx := -1, -1
	for i, h := range headers {
		lower := strings.ToLower(strings.TrimSpace(h))
		if codeIdx == -1 && codeHeaders[lower] {
			codeIdx = i
		}
		if nameIdx == -1 && nameHeaders[lower] {
			nameIdx = i
		}
	}
	if codeIdx == -1 {
		return nil, internal.NewValidationError(
			"required column 'Código' not found", internal.ErrCodeMissingCodeColumn)
	}

	// Every remaining non-empty header is a date column, used as an opaque
	// label: headers are never validated as real calendar dates.
	type dateColumn struct {
		index int
		label string
	}
	var dateColumns []dateColumn
	for i, h := range headers {
		if i == codeIdx || i == nameIdx {
			continue
		}
		if label := strings.TrimSpace(h); label != "" {
			dateColumns = append(dateColumns, dateColumn{index: i, label: label})
		}
	}
	if len(dateColumns) == 0 {
		return nil, internal.NewValidationError(
			"no date columns found for shifts", internal.ErrCodeNoDateColumns)
	}

	rosterByCode := make(map[string]RosterEmployee, len(roster))
	for _, emp := range roster {
		code := strings.ToLower(strings.TrimSpace(emp.Code))
		if code != "" {
			rosterByCode[code] = emp
		}
	}

	uniqueCodes := make(map[string]bool)
	seenNew := make(map[string]bool)
	seenUpdates := make(map[string]bool)

	result := &ReconciliationResult{
		NewFindings: []NewEmployeeFinding{},
		NameUpdates: []NameUpdateFinding{},
		ShiftsData:  []ShiftAssignment{},
		Preview:     Preview{Headers: headers, Rows: [][]string{}},
	}

	processed := 0
	for rowOffset, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		code := strings.TrimSpace(cellAt(row, codeIdx))
		if code == "" {
			// Visual spreadsheet row: header row is 1, first data row is 2.
			return nil, internal.NewValidationError(
				fmt.Sprintf("row %d: 'Código' is required and cannot be empty", rowOffset+2),
				internal.ErrCodeMissingRowCode)
		}
		uniqueCodes[code] = true
		lowerCode := strings.ToLower(code)

		name := NoNamePlaceholder
		if nameIdx != -1 {
			if n := strings.TrimSpace(cellAt(row, nameIdx)); n != "" {
				name = n
			}
		}

		if existing, ok := rosterByCode[lowerCode]; ok {
			excelClean := normalizeName(name)
			dbClean := normalizeName(existing.Name)
			if excelClean != dbClean && excelClean != strings.ToLower(NoNamePlaceholder) && !seenUpdates[lowerCode] {
				seenUpdates[lowerCode] = true
				result.NameUpdates = append(result.NameUpdates, NameUpdateFinding{
					Code:      code,
					ExcelName: name,
					DBName:    strings.TrimSpace(existing.Name),
				})
			}
		} else if !seenNew[lowerCode] {
			seenNew[lowerCode] = true
			result.NewFindings = append(result.NewFindings, NewEmployeeFinding{Code: code, Name: name})
		}

		for _, col := range dateColumns {
			if value := strings.TrimSpace(cellAt(row, col.index)); value != "" {
				result.ShiftsData = append(result.ShiftsData, ShiftAssignment{
					EmployeeCode: code,
					Date:         col.label,
					Type:         strings.ToUpper(value),
				})
			}
		}

		if len(result.Preview.Rows) < previewRowLimit {
			result.Preview.Rows = append(result.Preview.Rows, row)
		}
		processed++
	}

	result.Preview.TotalRows = processed
	result.Analysis = Analysis{
		CollaboratorsCount: len(uniqueCodes),
		DaysCount:          len(dateColumns),
		PeriodMonth:        periodLabel(dateColumns[0].label),
	}

	return result, nil
}

// periodLabel derives the human-readable period name from the first date
// header. A period starting on the 26th or 27th belongs to the following
// month, mirroring the work-period rule; non-ISO headers fall back to a raw
// label.
func periodLabel(firstLabel string) string {
	m := isoDatePattern.FindStringSubmatch(firstLabel)
	if m == nil {
		return "Iniciando: " + firstLabel
	}

	year, _ := strconv.Atoi(m[1])
	monthNum, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	month := time.Month(monthNum)

	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if day == schedule.PeriodEndDay || day == schedule.PeriodStartDay {
		anchor = anchor.AddDate(0, 1, 0)
	}
	return schedule.MonthYearLabel(anchor)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
