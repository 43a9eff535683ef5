package roster

import (
	"bytes"
	"path/filepath"
	"strings"

	"labelsheet/internal/app"
)

// Format identifies how roster bytes are encoded
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// xlsxMagic is the zip local file header every workbook starts with
var xlsxMagic = []byte("PK\x03\x04")

// DetectFormat picks the roster format from the file name, falling back to content sniffing
func DetectFormat(fileName string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".csv", ".txt":
		return FormatCSV
	}
	if bytes.HasPrefix(data, xlsxMagic) {
		return FormatXLSX
	}
	return FormatCSV
}

// Parse decodes data in the given format
func Parse(format Format, data []byte) (app.Roster, error) {
	if format == FormatXLSX {
		return ParseXLSX(data)
	}
	return ParseCSV(data)
}
