package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"labelsheet/internal/app"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseCSV decodes comma-delimited roster text whose first row is the header.
// A UTF-8 or UTF-16 byte order mark is honoured and stripped; without one the
// bytes are read as UTF-8, and invalid sequences become U+FFFD rather than an error.
//
// A quote inside an unquoted field (O"Neil) is kept as a literal character.
// An unterminated quoted field is still a parse error unless the file also
// contains such a bare quote, in which case the lenient pass accepts it as well.
func ParseCSV(data []byte) (app.Roster, error) {
	records, err := readCSV(data, false)
	if errors.Is(err, csv.ErrBareQuote) {
		records, err = readCSV(data, true)
	}
	if err != nil {
		return app.Roster{}, fmt.Errorf("failed to read CSV records: %w", err)
	}

	return FromRecords(records, false), nil
}

func readCSV(data []byte, lazyQuotes bool) ([][]string, error) {
	decoded := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = lazyQuotes

	return reader.ReadAll()
}
