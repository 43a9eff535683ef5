package processing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/labels"
	"labelsheet/internal/processing/mocks"
	"labelsheet/internal/roster"
)

var jobDate = time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC)

const validCSV = "athlete_first_name,athlete_last_name,athlete_age_group\n" +
	"Ana,Lee,8U\nBo,Park,10U\nCy,Diaz,12U\n"

func csvRequest(data string) app.GenerationRequest {
	return app.GenerationRequest{File: []byte(data), Team: "Cupertino Hills", Date: jobDate}
}

func TestLabelJobRun(t *testing.T) {
	sink := mocks.NewMockSink("memory://labels")
	observer := &mocks.MockObserver{}
	job := NewLabelJob(labels.NewGenerator(), sink).WithObserver(observer)

	result, err := job.Run(context.Background(), roster.FormatCSV, csvRequest(validCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Document.FileName != "athletes_Cupertino_Hills_2024-07-14.pdf" {
		t.Errorf("Unexpected file name %s", result.Document.FileName)
	}
	if result.Document.Athletes != 3 || result.Document.Pages != 1 {
		t.Errorf("Expected 3 athletes on 1 page, got %d on %d", result.Document.Athletes, result.Document.Pages)
	}
	if len(result.Locations) != 1 || result.Locations[0] != "memory://labels" {
		t.Errorf("Unexpected locations %v", result.Locations)
	}
	if sink.SaveCount != 1 || sink.Saved[0] != result.Document {
		t.Error("Expected the generated document to be saved once")
	}
	if len(observer.Documents) != 1 || len(observer.Failures) != 0 {
		t.Errorf("Unexpected observer state: %d documents, %v failures", len(observer.Documents), observer.Failures)
	}
}

func TestLabelJobFailedGenerationSkipsSinks(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		kind     labels.ErrorKind
		expected string
	}{
		{"MissingColumns", "first,last\nA,B\n", labels.KindValidation, "missing required columns: athlete_first_name, athlete_last_name, athlete_age_group"},
		{"NoData", "athlete_first_name,athlete_last_name,athlete_age_group\n", labels.KindValidation, "no data found"},
		{"Malformed", "athlete_first_name,athlete_last_name,athlete_age_group\n\"Ana,Lee,8U\n", labels.KindParse, "error parsing CSV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := mocks.NewMockSink("unused")
			observer := &mocks.MockObserver{}
			job := NewLabelJob(labels.NewGenerator(), sink).WithObserver(observer)

			result, err := job.Run(context.Background(), roster.FormatCSV, csvRequest(tt.data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if result != nil {
				t.Error("Expected no result on failure")
			}
			if !strings.HasPrefix(err.Error(), tt.expected) {
				t.Errorf("Expected message starting with %q, got %q", tt.expected, err.Error())
			}
			if labels.KindOf(err) != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, labels.KindOf(err))
			}
			if sink.SaveCalled {
				t.Error("Sink must not be called for a failed generation")
			}
			if len(observer.Failures) != 1 || observer.Failures[0] != tt.kind {
				t.Errorf("Expected one %s failure, got %v", tt.kind, observer.Failures)
			}
		})
	}
}

func TestLabelJobSinkFailure(t *testing.T) {
	failing := mocks.NewMockSink("")
	failing.SaveError = errors.New("disk full")
	after := mocks.NewMockSink("never")
	observer := &mocks.MockObserver{}

	job := NewLabelJob(labels.NewGenerator(), failing, after).WithObserver(observer)
	_, err := job.Run(context.Background(), roster.FormatCSV, csvRequest(validCSV))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if err.Error() != "error saving athletes_Cupertino_Hills_2024-07-14.pdf: disk full" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if labels.KindOf(err) != labels.KindOutput {
		t.Errorf("Expected output error, got %s", labels.KindOf(err))
	}
	if after.SaveCalled {
		t.Error("Expected later sinks to be skipped after a failure")
	}
	if len(observer.Documents) != 0 || len(observer.Failures) != 1 {
		t.Errorf("Unexpected observer state: %d documents, %v failures", len(observer.Documents), observer.Failures)
	}
}

func TestLabelJobRunSheet(t *testing.T) {
	reader := mocks.NewMockRosterReader(app.Roster{
		Header: []string{app.ColumnFirstName, app.ColumnLastName, app.ColumnAgeGroup},
		Rows: []app.RosterRow{
			{app.ColumnFirstName: "Ana", app.ColumnLastName: "Lee", app.ColumnAgeGroup: "8U"},
		},
	})
	sink := mocks.NewMockSink("memory://labels")
	job := NewLabelJob(labels.NewGenerator(), sink).WithSheets(reader)

	result, err := job.RunSheet(context.Background(), "sheet-123", "Roster!A1:C", "Laurelwood", jobDate)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reader.ReadRosterCalledWith.SpreadsheetID != "sheet-123" || reader.ReadRosterCalledWith.Range != "Roster!A1:C" {
		t.Errorf("Unexpected reader arguments %+v", reader.ReadRosterCalledWith)
	}
	if result.Document.FileName != "athletes_Laurelwood_2024-07-14.pdf" || result.Document.Athletes != 1 {
		t.Errorf("Unexpected document %s with %d athletes", result.Document.FileName, result.Document.Athletes)
	}
}

func TestLabelJobRunSheetErrors(t *testing.T) {
	job := NewLabelJob(labels.NewGenerator())
	if _, err := job.RunSheet(context.Background(), "id", "A1:C", "Team", jobDate); err == nil {
		t.Error("Expected error without a sheet reader, got nil")
	}

	reader := mocks.NewMockRosterReader(app.Roster{})
	reader.ReadRosterError = errors.New("quota exceeded")
	job.WithSheets(reader)

	_, err := job.RunSheet(context.Background(), "id", "A1:C", "Team", jobDate)
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Expected wrapped reader error, got %v", err)
	}
	if labels.KindOf(err) != "" {
		t.Errorf("Reader failures are not generation errors, got kind %s", labels.KindOf(err))
	}
}

func TestDirectorySink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewDirectorySink(dir)
	doc := &app.Document{FileName: "athletes_A_2024-07-14.pdf", Content: []byte("%PDF-1.3 test")}

	path, err := sink.Save(context.Background(), doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != filepath.Join(dir, doc.FileName) {
		t.Errorf("Unexpected path %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(content) != string(doc.Content) {
		t.Errorf("Saved content mismatch")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the saved document, found %d entries", len(entries))
	}

	// Saving again overwrites in place
	doc.Content = []byte("%PDF-1.3 second")
	if _, err := sink.Save(context.Background(), doc); err != nil {
		t.Fatalf("Expected overwrite to succeed, got %v", err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "%PDF-1.3 second" {
		t.Errorf("Expected overwritten content, got %q", content)
	}
}

func TestDirectorySinkErrors(t *testing.T) {
	sink := NewDirectorySink(t.TempDir())

	for _, name := range []string{"", ".", "..", "../escape.pdf", `a\b.pdf`} {
		if _, err := sink.Save(context.Background(), &app.Document{FileName: name}); err == nil {
			t.Errorf("Expected error for file name %q", name)
		}
	}

	if _, err := sink.Save(context.Background(), nil); err == nil {
		t.Error("Expected error for nil document")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sink.Save(ctx, &app.Document{FileName: "a.pdf"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	if NewDirectorySink("").dir != "." {
		t.Error("Expected empty directory to default to current directory")
	}
}

func TestPublishSink(t *testing.T) {
	publisher := mocks.NewMockPublisher()
	publisher.PublishResponse = "/srv/labels/a.pdf"
	sink := NewPublishSink(publisher)

	location, err := sink.Save(context.Background(), &app.Document{FileName: "a.pdf", Content: []byte("pdf")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if location != "/srv/labels/a.pdf" {
		t.Errorf("Unexpected location %s", location)
	}
	if publisher.PublishCalledWith.FileName != "a.pdf" || string(publisher.PublishCalledWith.Content) != "pdf" {
		t.Errorf("Unexpected publish arguments %+v", publisher.PublishCalledWith)
	}

	publisher.PublishError = errors.New("connection refused")
	if _, err := sink.Save(context.Background(), &app.Document{FileName: "a.pdf"}); err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected wrapped publish error, got %v", err)
	}
}

func TestLabelJobTeamWithPathSeparators(t *testing.T) {
	dir := t.TempDir()
	job := NewLabelJob(labels.NewGenerator(), NewDirectorySink(dir))

	req := csvRequest(validCSV)
	req.Team = "8U/10U Marlins"

	result, err := job.Run(context.Background(), roster.FormatCSV, req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := filepath.Join(dir, "athletes_8U_10U_Marlins_2024-07-14.pdf")
	if len(result.Locations) != 1 || result.Locations[0] != expected {
		t.Fatalf("Expected document at %s, got %v", expected, result.Locations)
	}
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("Expected saved document, got %v", err)
	}
}
