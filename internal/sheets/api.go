package sheets

import (
	"context"
)

// SheetsAPI defines the read access to Google Sheets the roster import needs.
//
// Note on interface{} usage:
// The Google Sheets API (google.golang.org/api/sheets/v4) uses [][]interface{}
// for cell values. This is outside our control and required for API compatibility.
// Use the Cell type wrapper to turn values into roster strings and keep
// interface{} constrained to this API boundary layer.
type SheetsAPI interface {
	// ReadSheet reads values from a sheet range.
	// Returns [][]interface{} as required by Google Sheets API.
	ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)
}
