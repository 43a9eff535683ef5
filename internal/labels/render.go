package labels

import (
	"labelsheet/internal/config"
	"labelsheet/internal/domain/layout"
)

// RenderPlan draws every page of plan onto canvas.
// Only occupied cells get a border and text; unfilled slots in the last row stay blank.
func RenderPlan(canvas Canvas, plan layout.Plan, team string, cfg config.LayoutConfig) {
	for _, page := range plan.Pages {
		canvas.AddPage()
		drawTitle(canvas, page.Title, cfg)

		canvas.SetFontSize(cfg.BodyFontSize)
		for _, cell := range page.Cells {
			drawCell(canvas, cell, team, cfg)
		}
	}
}

func drawTitle(canvas Canvas, title layout.Title, cfg config.LayoutConfig) {
	canvas.SetFontSize(cfg.TitleFontSize)
	canvas.Text(cfg.Margin, cfg.Margin, title.Heading)
	canvas.SetFontSize(cfg.DateFontSize)
	canvas.Text(cfg.Margin, cfg.Margin+cfg.DateLineOffset, title.DateLine)
}

func drawCell(canvas Canvas, cell layout.Cell, team string, cfg config.LayoutConfig) {
	canvas.Rect(cell.X, cell.Y, cell.Width, cell.Height)

	x := cell.X + cfg.TextInset
	canvas.Text(x, cell.Y+cfg.NameOffset, cell.Athlete.FullName())
	canvas.Text(x, cell.Y+cfg.AgeGroupOffset, "Age Group: "+cell.Athlete.AgeGroup)
	canvas.Text(x, cell.Y+cfg.TeamOffset, "Team: "+team)
}
