package labels

import (
	"fmt"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/config"
	"labelsheet/internal/domain/layout"
	rosterdomain "labelsheet/internal/domain/roster"
	"labelsheet/internal/roster"
)

// Generator turns a roster into a paginated label sheet
type Generator struct {
	layout    config.LayoutConfig
	newCanvas CanvasFactory
}

// NewGenerator creates a generator using the default layout and the PDF canvas
func NewGenerator() *Generator {
	return &Generator{
		layout:    config.DefaultLayout,
		newCanvas: NewPDFCanvas,
	}
}

// NewGeneratorWithCanvas creates a generator drawing onto canvases from factory
func NewGeneratorWithCanvas(layoutCfg config.LayoutConfig, factory CanvasFactory) *Generator {
	return &Generator{
		layout:    layoutCfg,
		newCanvas: factory,
	}
}

// Generate parses the request's CSV file and renders its label sheet.
// Any failure returns a *GenerationError and no document.
func (g *Generator) Generate(req app.GenerationRequest) (*app.Document, error) {
	return g.GenerateFormat(roster.FormatCSV, req)
}

// GenerateFormat is Generate for a roster file in the given format
func (g *Generator) GenerateFormat(format roster.Format, req app.GenerationRequest) (*app.Document, error) {
	parsed, err := roster.Parse(format, req.File)
	if err != nil {
		source := "CSV"
		if format == roster.FormatXLSX {
			source = "XLSX"
		}
		return nil, NewParseError(source, err)
	}

	return g.GenerateRoster(parsed, req.Team, req.Date)
}

// GenerateRoster validates an already parsed roster and renders it
func (g *Generator) GenerateRoster(parsed app.Roster, team string, date time.Time) (doc *app.Document, err error) {
	result := rosterdomain.Validate(parsed)
	if !result.Valid() {
		return nil, NewValidationError(result.Message)
	}

	// Drawing libraries may panic on unexpected input; no partial document escapes.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = NewRenderError(fmt.Errorf("%v", r))
		}
	}()

	plan, err := layout.BuildPlan(result.Athletes, team, date, g.layout)
	if err != nil {
		return nil, NewRenderError(err)
	}

	canvas := g.newCanvas(g.layout, date)
	RenderPlan(canvas, plan, team, g.layout)
	pages := canvas.PageCount()

	content, err := canvas.Bytes()
	if err != nil {
		return nil, NewRenderError(err)
	}

	return &app.Document{
		FileName: FileName(team, date),
		Content:  content,
		Pages:    pages,
		Athletes: len(result.Athletes),
	}, nil
}

// Generate renders a request with a default generator
func Generate(req app.GenerationRequest) (*app.Document, error) {
	return NewGenerator().Generate(req)
}
