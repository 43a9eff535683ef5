package app

import "time"

// Required roster columns. Header names are matched exactly and case-sensitively.
const (
	ColumnFirstName = "athlete_first_name"
	ColumnLastName  = "athlete_last_name"
	ColumnAgeGroup  = "athlete_age_group"
)

// RequiredColumns lists the roster columns in the order they are reported when missing
var RequiredColumns = []string{ColumnFirstName, ColumnLastName, ColumnAgeGroup}

// RosterRow is one raw roster record keyed by header name.
// A key is absent when the source row had no field for that header.
type RosterRow map[string]string

// Roster is the parsed content of an uploaded roster
type Roster struct {
	Header []string
	Rows   []RosterRow
}

// Athlete is a validated roster entry used for rendering
type Athlete struct {
	FirstName string
	LastName  string
	AgeGroup  string
}

// FullName returns "First Last" exactly as printed on a label
func (a Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}

// GenerationRequest carries the three inputs supplied by the form
type GenerationRequest struct {
	File []byte
	Team string
	Date time.Time
}

// Document is a finished label sheet ready to be saved
type Document struct {
	FileName string
	Content  []byte
	Pages    int
	Athletes int
}
