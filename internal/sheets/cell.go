package sheets

import (
	"fmt"
	"strconv"
)

// Cell provides type-safe access to Google Sheets cell values.
// The Google Sheets API returns [][]interface{}, which we cannot change.
type Cell struct {
	raw interface{}
}

// NewCell creates a Cell from a raw interface{} value from Google Sheets API
func NewCell(raw interface{}) Cell {
	return Cell{raw: raw}
}

// String returns the cell value as a string.
// Whole numbers print without a decimal point so "8" stays "8".
func (c Cell) String() string {
	switch v := c.raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsEmpty returns true if the cell contains nil or empty string
func (c Cell) IsEmpty() bool {
	return c.raw == nil || c.raw == ""
}

// Raw returns the underlying interface{} value.
// This should only be used at the API boundary.
func (c Cell) Raw() interface{} {
	return c.raw
}

// rowStrings converts one API row into roster strings
func rowStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, value := range row {
		out[i] = NewCell(value).String()
	}
	return out
}
