package layout

import (
	"errors"
	"fmt"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/config"
)

// ErrNoAthletes is returned when a plan is requested for an empty roster
var ErrNoAthletes = errors.New("no athletes to lay out")

// Cell is one occupied grid slot with its position on the page
type Cell struct {
	Row     int
	Column  int
	Index   int
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Athlete app.Athlete
}

// Title is the text block drawn at the top of every page
type Title struct {
	Heading   string
	DateLine  string
	Continued bool
}

// Page holds the title and the occupied cells of one page
type Page struct {
	Number int
	Title  Title
	Rows   []int
	Cells  []Cell
}

// Plan is the complete paginated grid for one label sheet
type Plan struct {
	Columns    int
	Rows       int
	CellWidth  float64
	CellHeight float64
	Pages      []Page
}

// CellCount returns the number of occupied cells across every page
func (p Plan) CellCount() int {
	total := 0
	for _, page := range p.Pages {
		total += len(page.Cells)
	}
	return total
}

// RowCount returns ceil(athletes / columns).
// Pure function: the grid height depends only on the athlete count.
func RowCount(athletes, columns int) int {
	if athletes <= 0 || columns <= 0 {
		return 0
	}
	return (athletes + columns - 1) / columns
}

// BuildTitle returns the title block text for a page.
// Pure function: every page after the first carries the continued suffix.
func BuildTitle(team string, date time.Time, continued bool) Title {
	heading := "Athlete List - " + team
	if continued {
		heading += config.ContinuedTitleSuffix
	}
	return Title{
		Heading:   heading,
		DateLine:  "Date: " + date.Format(config.TitleDateFormat),
		Continued: continued,
	}
}

// BuildPlan assigns athletes to grid cells in row-major order and paginates by grid row.
// Pure function: the same inputs always produce the same plan.
func BuildPlan(athletes []app.Athlete, team string, date time.Time, layout config.LayoutConfig) (Plan, error) {
	if len(athletes) == 0 {
		return Plan{}, ErrNoAthletes
	}
	if err := layout.Validate(); err != nil {
		return Plan{}, fmt.Errorf("invalid layout: %w", err)
	}

	plan := Plan{
		Columns:    layout.Columns,
		Rows:       RowCount(len(athletes), layout.Columns),
		CellWidth:  layout.CellWidth(),
		CellHeight: layout.CellHeight,
	}

	page := Page{Number: 1, Title: BuildTitle(team, date, false)}
	y := layout.RowTop()
	index := 0

	for row := 0; row < plan.Rows; row++ {
		// A row never splits across pages and a page never starts empty.
		if len(page.Rows) > 0 && y+layout.CellHeight > layout.RowLimit() {
			plan.Pages = append(plan.Pages, page)
			page = Page{Number: page.Number + 1, Title: BuildTitle(team, date, true)}
			y = layout.RowTop()
		}

		page.Rows = append(page.Rows, row)
		for col := 0; col < layout.Columns && index < len(athletes); col++ {
			page.Cells = append(page.Cells, Cell{
				Row:     row,
				Column:  col,
				Index:   index,
				X:       layout.Margin + float64(col)*plan.CellWidth,
				Y:       y,
				Width:   plan.CellWidth,
				Height:  layout.CellHeight,
				Athlete: athletes[index],
			})
			index++
		}

		y += layout.CellHeight
	}

	plan.Pages = append(plan.Pages, page)
	return plan, nil
}

// RowsPerPage returns how many grid rows fit below the title block.
// Pure function: derived from the same overflow check BuildPlan applies.
func RowsPerPage(layout config.LayoutConfig) int {
	rows := 0
	for y := layout.RowTop(); y+layout.CellHeight <= layout.RowLimit(); y += layout.CellHeight {
		rows++
	}
	if rows == 0 {
		return 1
	}
	return rows
}
