package roster

import (
	"strings"

	"labelsheet/internal/app"
)

// FromRecords builds a Roster from a header row followed by data rows.
// Blank records are skipped. With pad set, short rows get empty values for
// the trailing headers, which suits spreadsheet APIs that trim empty cells.
// Without it a short row only carries keys for the fields it has.
func FromRecords(records [][]string, pad bool) app.Roster {
	var roster app.Roster

	start := -1
	for i, record := range records {
		if !isBlank(record) {
			start = i
			break
		}
	}
	if start < 0 {
		return roster
	}

	roster.Header = append([]string(nil), records[start]...)
	for _, record := range records[start+1:] {
		if isBlank(record) {
			continue
		}

		row := make(app.RosterRow, len(roster.Header))
		for j, name := range roster.Header {
			switch {
			case j < len(record):
				row[name] = record[j]
			case pad:
				row[name] = ""
			}
		}
		roster.Rows = append(roster.Rows, row)
	}

	return roster
}

// FromSheetRows builds a Roster from spreadsheet rows, as read from a workbook
// or the Sheets API. Rows whose cells are all empty or whitespace are dropped
// and short rows are padded to the header width.
func FromSheetRows(rows [][]string) app.Roster {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankCells(row) {
			continue
		}
		records = append(records, row)
	}
	return FromRecords(records, true)
}

func isBlank(record []string) bool {
	if len(record) == 0 {
		return true
	}
	if len(record) == 1 && record[0] == "" {
		return true
	}
	return false
}

// isBlankCells reports whether every cell of a spreadsheet row is empty or whitespace
func isBlankCells(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
