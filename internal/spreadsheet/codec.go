package spreadsheet

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/shift-scheduling/internal"
)

// DecodeGrid reads an uploaded workbook and returns its first sheet as a
// 2-D cell grid, header row included. Only the first sheet is consulted;
// further sheets are ignored.
func DecodeGrid(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, internal.NewValidationError(
			"could not read the file: not a valid spreadsheet", internal.ErrCodeEmptyWorkbook).WithCause(err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, internal.NewValidationError(
			"the workbook contains no worksheet", internal.ErrCodeEmptyWorkbook)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, internal.NewInternalError("failed to read worksheet rows", err)
	}
	if len(rows) < 2 {
		return nil, internal.NewValidationError(
			"the file is empty or malformed: a header row and data rows are required",
			internal.ErrCodeEmptyWorkbook)
	}

	return rows, nil
}
