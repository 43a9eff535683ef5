package mocks

import (
	"context"

	"labelsheet/internal/app"
)

// MockRosterReader is a test double for sheets.RosterReader
type MockRosterReader struct {
	ReadRosterResponse app.Roster
	ReadRosterError    error

	ReadRosterCalled     bool
	ReadRosterCalledWith struct {
		SpreadsheetID string
		Range         string
	}
}

// NewMockRosterReader creates a reader returning roster
func NewMockRosterReader(roster app.Roster) *MockRosterReader {
	return &MockRosterReader{ReadRosterResponse: roster}
}

func (m *MockRosterReader) ReadRoster(ctx context.Context, spreadsheetID, range_ string) (app.Roster, error) {
	m.ReadRosterCalled = true
	m.ReadRosterCalledWith.SpreadsheetID = spreadsheetID
	m.ReadRosterCalledWith.Range = range_
	return m.ReadRosterResponse, m.ReadRosterError
}
