package roster

import (
	"strings"

	"labelsheet/internal/app"
)

// Validation messages surfaced to the form verbatim
const (
	MissingColumnsPrefix = "missing required columns: "
	NoDataMessage        = "no data found"
)

// PresentColumns returns the header names the required-column check runs against.
// Pure function: the keys of the first data row, or the header row when there is no data.
func PresentColumns(roster app.Roster) map[string]bool {
	present := make(map[string]bool)
	if len(roster.Rows) > 0 {
		for key := range roster.Rows[0] {
			present[key] = true
		}
		return present
	}

	for _, name := range roster.Header {
		present[name] = true
	}
	return present
}

// MissingColumns lists required columns absent from present, in required order
func MissingColumns(present map[string]bool) []string {
	var missing []string
	for _, column := range app.RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	return missing
}

// MissingColumnsMessage formats the validation message for missing columns
func MissingColumnsMessage(missing []string) string {
	return MissingColumnsPrefix + strings.Join(missing, ", ")
}

// ProjectAthletes maps every roster row to an Athlete.
// Pure function: a row without a value for a required column gets an empty string.
func ProjectAthletes(rows []app.RosterRow) []app.Athlete {
	athletes := make([]app.Athlete, 0, len(rows))
	for _, row := range rows {
		athletes = append(athletes, app.Athlete{
			FirstName: row[app.ColumnFirstName],
			LastName:  row[app.ColumnLastName],
			AgeGroup:  row[app.ColumnAgeGroup],
		})
	}
	return athletes
}

// ValidationResult contains the outcome of validating a roster
type ValidationResult struct {
	Athletes       []app.Athlete
	MissingColumns []string
	Message        string
}

// Valid reports whether the roster produced at least one athlete
func (r ValidationResult) Valid() bool {
	return r.Message == ""
}

// Validate checks required columns, then projects rows to athletes.
// Pure function: no row is converted when a required column is missing.
func Validate(roster app.Roster) ValidationResult {
	missing := MissingColumns(PresentColumns(roster))
	if len(missing) > 0 {
		return ValidationResult{
			MissingColumns: missing,
			Message:        MissingColumnsMessage(missing),
		}
	}

	athletes := ProjectAthletes(roster.Rows)
	if len(athletes) == 0 {
		return ValidationResult{Message: NoDataMessage}
	}

	return ValidationResult{Athletes: athletes}
}
