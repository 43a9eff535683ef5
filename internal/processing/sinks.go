package processing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"labelsheet/internal/app"

	"github.com/rs/zerolog/log"
)

// DirectorySink writes documents into a local directory.
// Files appear atomically: content goes to a temp file that is renamed into place.
type DirectorySink struct {
	dir string
}

// NewDirectorySink creates a sink writing into dir, "." when empty
func NewDirectorySink(dir string) *DirectorySink {
	if dir == "" {
		dir = "."
	}
	return &DirectorySink{dir: dir}
}

// Save writes doc under its own file name and returns the final path
func (s *DirectorySink) Save(ctx context.Context, doc *app.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc == nil {
		return "", fmt.Errorf("no document to save")
	}
	if doc.FileName == "" || strings.ContainsAny(doc.FileName, `/\`) || doc.FileName == "." || doc.FileName == ".." {
		return "", fmt.Errorf("invalid file name %q", doc.FileName)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".labels-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(doc.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}

	target := filepath.Join(s.dir, doc.FileName)
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("failed to move document into place: %w", err)
	}

	log.Debug().
		Str("path", target).
		Int("size", len(doc.Content)).
		Msg("Saved label sheet")

	return target, nil
}

// PublishSink uploads documents through a Publisher
type PublishSink struct {
	publisher Publisher
}

// NewPublishSink wraps publisher as a DocumentSink
func NewPublishSink(publisher Publisher) *PublishSink {
	return &PublishSink{publisher: publisher}
}

// Save publishes doc under its own file name
func (s *PublishSink) Save(ctx context.Context, doc *app.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("no document to save")
	}
	location, err := s.publisher.Publish(ctx, doc.FileName, doc.Content)
	if err != nil {
		return "", fmt.Errorf("failed to publish: %w", err)
	}
	return location, nil
}
