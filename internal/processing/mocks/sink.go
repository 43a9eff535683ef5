package mocks

import (
	"context"

	"labelsheet/internal/app"
)

// MockSink is a test double for processing.DocumentSink
type MockSink struct {
	// Responses to return
	SaveResponse string
	SaveError    error

	// Call tracking
	SaveCalled bool
	SaveCount  int
	Saved      []*app.Document
}

// NewMockSink creates a sink that reports location for every save
func NewMockSink(location string) *MockSink {
	return &MockSink{SaveResponse: location}
}

func (m *MockSink) Save(ctx context.Context, doc *app.Document) (string, error) {
	m.SaveCalled = true
	m.SaveCount++
	if m.SaveError != nil {
		return "", m.SaveError
	}
	m.Saved = append(m.Saved, doc)
	return m.SaveResponse, nil
}

// MockPublisher is a test double for processing.Publisher
type MockPublisher struct {
	PublishResponse string
	PublishError    error

	PublishCalled     bool
	PublishCalledWith struct {
		FileName string
		Content  []byte
	}
}

// NewMockPublisher creates a new mock publisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, fileName string, content []byte) (string, error) {
	m.PublishCalled = true
	m.PublishCalledWith.FileName = fileName
	m.PublishCalledWith.Content = content
	return m.PublishResponse, m.PublishError
}
