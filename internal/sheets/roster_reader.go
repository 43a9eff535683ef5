package sheets

import (
	"context"
	"fmt"

	"labelsheet/internal/app"
	"labelsheet/internal/roster"

	"github.com/rs/zerolog/log"
)

// RosterReader loads rosters from a spreadsheet range whose first row is the header
type RosterReader struct {
	api SheetsAPI
}

// NewRosterReader creates a roster reader on top of any SheetsAPI
func NewRosterReader(api SheetsAPI) *RosterReader {
	return &RosterReader{api: api}
}

// ReadRoster reads the range and converts it to a roster.
// The Sheets API drops trailing empty cells, so short rows are padded.
// Rows holding only blank cells are skipped, the same as for workbooks.
func (r *RosterReader) ReadRoster(ctx context.Context, spreadsheetID, range_ string) (app.Roster, error) {
	if spreadsheetID == "" {
		return app.Roster{}, fmt.Errorf("spreadsheet ID is required")
	}
	if range_ == "" {
		return app.Roster{}, fmt.Errorf("sheet range is required")
	}

	values, err := r.api.ReadSheet(ctx, spreadsheetID, range_)
	if err != nil {
		return app.Roster{}, fmt.Errorf("failed to read roster range %s: %w", range_, err)
	}

	records := make([][]string, 0, len(values))
	for _, row := range values {
		records = append(records, rowStrings(row))
	}

	result := roster.FromSheetRows(records)

	log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Str("range", range_).
		Int("rows", len(result.Rows)).
		Msg("Read roster from sheet")

	return result, nil
}
