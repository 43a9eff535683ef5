package mocks

import (
	"labelsheet/internal/app"
	"labelsheet/internal/labels"
)

// MockObserver records job outcomes
type MockObserver struct {
	Documents []*app.Document
	Failures  []labels.ErrorKind
}

func (m *MockObserver) Generated(doc *app.Document) {
	m.Documents = append(m.Documents, doc)
}

func (m *MockObserver) Failed(kind labels.ErrorKind) {
	m.Failures = append(m.Failures, kind)
}
