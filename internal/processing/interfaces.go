package processing

import (
	"context"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/labels"
	"labelsheet/internal/roster"
)

// DocumentGenerator defines the generator methods used by LabelJob
type DocumentGenerator interface {
	GenerateFormat(format roster.Format, req app.GenerationRequest) (*app.Document, error)
	GenerateRoster(parsed app.Roster, team string, date time.Time) (*app.Document, error)
}

// DocumentSink stores a finished document and returns where it went
type DocumentSink interface {
	Save(ctx context.Context, doc *app.Document) (string, error)
}

// RosterReader defines the spreadsheet roster source used by LabelJob
type RosterReader interface {
	ReadRoster(ctx context.Context, spreadsheetID, range_ string) (app.Roster, error)
}

// Publisher uploads named content to a remote location
type Publisher interface {
	Publish(ctx context.Context, fileName string, content []byte) (string, error)
}

// Observer is notified of every finished or failed job
type Observer interface {
	Generated(doc *app.Document)
	Failed(kind labels.ErrorKind)
}
