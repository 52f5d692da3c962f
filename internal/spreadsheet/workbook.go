package spreadsheet

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/shift-scheduling/internal"
)

const sheetName = "Plantilla"

const dateLayout = "2006-01-02"

// BuildSchedule produces the workbook operators download: one row per
// roster employee, a Nombre and a Código column, then one column per period
// date. assignments maps employee code to date to shift code; pass nil for
// a blank template.
func BuildSchedule(roster []RosterEmployee, dates []time.Time, assignments map[string]map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headers := make([]string, 0, len(dates)+2)
	headers = append(headers, "Nombre", "Código")
	for _, d := range dates {
		headers = append(headers, d.Format(dateLayout))
	}

	for col, value := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, internal.NewInternalError("failed to build worksheet", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return nil, internal.NewInternalError("failed to build worksheet", err)
		}
	}

	for rowIdx, emp := range roster {
		values := make([]interface{}, 0, len(headers))
		values = append(values, emp.Name, emp.Code)
		for _, d := range dates {
			value := ""
			if byDate, ok := assignments[emp.Code]; ok {
				value = byDate[d.Format(dateLayout)]
			}
			values = append(values, value)
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, internal.NewInternalError("failed to build worksheet", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, internal.NewInternalError("failed to build worksheet", err)
			}
		}
	}

	return f, nil
}

// WriteWorkbook streams a workbook to w, typically an HTTP response.
func WriteWorkbook(f *excelize.File, w io.Writer) error {
	defer func() { _ = f.Close() }()
	if err := f.Write(w); err != nil {
		return internal.NewInternalError("failed to write workbook", err)
	}
	return nil
}
