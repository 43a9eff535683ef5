package processing

import (
	"context"
	"fmt"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/labels"
	"labelsheet/internal/roster"

	"github.com/rs/zerolog/log"
)

// Result is a generated document together with every location it was saved to
type Result struct {
	Document  *app.Document
	Locations []string
}

// LabelJob runs one generation from a roster source through to its sinks
type LabelJob struct {
	generator DocumentGenerator
	sinks     []DocumentSink
	sheets    RosterReader
	observer  Observer
}

// NewLabelJob creates a job that saves finished documents to every sink in order
func NewLabelJob(generator DocumentGenerator, sinks ...DocumentSink) *LabelJob {
	return &LabelJob{
		generator: generator,
		sinks:     sinks,
		observer:  noopObserver{},
	}
}

// WithSheets enables RunSheet using reader as the roster source
func (j *LabelJob) WithSheets(reader RosterReader) *LabelJob {
	j.sheets = reader
	return j
}

// WithObserver reports job outcomes to observer
func (j *LabelJob) WithObserver(observer Observer) *LabelJob {
	if observer == nil {
		observer = noopObserver{}
	}
	j.observer = observer
	return j
}

// Run generates a label sheet from an uploaded roster file and saves it
func (j *LabelJob) Run(ctx context.Context, format roster.Format, req app.GenerationRequest) (*Result, error) {
	logger := log.With().
		Str("team", req.Team).
		Str("format", string(format)).
		Int("bytes", len(req.File)).
		Logger()

	logger.Debug().Msg("Generating label sheet")

	doc, err := j.generator.GenerateFormat(format, req)
	if err != nil {
		j.fail(err)
		return nil, err
	}

	return j.save(ctx, doc)
}

// RunSheet generates a label sheet from a spreadsheet range and saves it
func (j *LabelJob) RunSheet(ctx context.Context, spreadsheetID, range_, team string, date time.Time) (*Result, error) {
	if j.sheets == nil {
		return nil, fmt.Errorf("no spreadsheet reader configured")
	}

	parsed, err := j.sheets.ReadRoster(ctx, spreadsheetID, range_)
	if err != nil {
		log.Error().
			Err(err).
			Str("spreadsheet_id", spreadsheetID).
			Str("range", range_).
			Msg("Failed to read roster from sheet")
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	doc, err := j.generator.GenerateRoster(parsed, team, date)
	if err != nil {
		j.fail(err)
		return nil, err
	}

	return j.save(ctx, doc)
}

// save hands a finished document to each sink; the first failure aborts the job
func (j *LabelJob) save(ctx context.Context, doc *app.Document) (*Result, error) {
	result := &Result{Document: doc}

	for _, sink := range j.sinks {
		location, err := sink.Save(ctx, doc)
		if err != nil {
			outputErr := labels.NewOutputError(doc.FileName, err)
			j.fail(outputErr)
			return nil, outputErr
		}
		result.Locations = append(result.Locations, location)
	}

	j.observer.Generated(doc)

	log.Info().
		Str("file_name", doc.FileName).
		Int("athletes", doc.Athletes).
		Int("pages", doc.Pages).
		Strs("locations", result.Locations).
		Msg("Label sheet generated")

	return result, nil
}

func (j *LabelJob) fail(err error) {
	kind := labels.KindOf(err)
	j.observer.Failed(kind)

	event := log.Error()
	if labels.IsUserError(err) {
		event = log.Warn()
	}
	event.Err(err).Str("kind", string(kind)).Msg("Label sheet generation failed")
}

type noopObserver struct{}

func (noopObserver) Generated(*app.Document)  {}
func (noopObserver) Failed(labels.ErrorKind) {}
