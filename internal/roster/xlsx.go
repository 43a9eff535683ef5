package roster

import (
	"bytes"
	"fmt"

	"labelsheet/internal/app"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first worksheet of a workbook as a roster.
// Spreadsheet rows drop trailing empty cells, so short rows are padded.
func ParseXLSX(data []byte) (app.Roster, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return app.Roster{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return app.Roster{}, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return app.Roster{}, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	return FromSheetRows(rows), nil
}
