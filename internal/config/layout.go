package config

import "fmt"

// Label sheet layout constants. Lengths are in millimetres, font sizes in points.
const (
	LabelColumns           = 3
	PageMargin             = 10.0
	CellHeight             = 30.0
	TitleBlockHeight       = 20.0
	DateLineOffset         = 8.0
	CellTextInset          = 3.0
	NameLineOffset         = 10.0
	AgeGroupLineOffset     = 18.0
	TeamLineOffset         = 26.0
	TitleFontSize          = 16.0
	DateFontSize           = 12.0
	BodyFontSize           = 10.0
	DefaultFontFamily      = "Helvetica"
	ContinuedTitleSuffix   = " (continued)"
	TitleDateFormat        = "01/02/2006"
	FileNameDateFormat     = "2006-01-02"
	DefaultPaperName       = "A4"
	DefaultPaperWidthMM    = 210.0
	DefaultPaperHeightMM   = 297.0
	DefaultPageUnit        = "mm"
	DefaultPageOrientation = "P"
)

// PaperSize describes a page in the layout unit
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// A4 is the page size label sheets are printed on
var A4 = PaperSize{Name: DefaultPaperName, Width: DefaultPaperWidthMM, Height: DefaultPaperHeightMM}

// LayoutConfig holds the fixed geometry of a label sheet
type LayoutConfig struct {
	Paper            PaperSize
	Columns          int
	Margin           float64
	CellHeight       float64
	TitleBlockHeight float64
	DateLineOffset   float64
	TextInset        float64
	NameOffset       float64
	AgeGroupOffset   float64
	TeamOffset       float64
	TitleFontSize    float64
	DateFontSize     float64
	BodyFontSize     float64
	FontFamily       string
}

// DefaultLayout is the layout every label sheet uses
var DefaultLayout = LayoutConfig{
	Paper:            A4,
	Columns:          LabelColumns,
	Margin:           PageMargin,
	CellHeight:       CellHeight,
	TitleBlockHeight: TitleBlockHeight,
	DateLineOffset:   DateLineOffset,
	TextInset:        CellTextInset,
	NameOffset:       NameLineOffset,
	AgeGroupOffset:   AgeGroupLineOffset,
	TeamOffset:       TeamLineOffset,
	TitleFontSize:    TitleFontSize,
	DateFontSize:     DateFontSize,
	BodyFontSize:     BodyFontSize,
	FontFamily:       DefaultFontFamily,
}

// CellWidth is the page width minus both margins, shared equally by the columns
func (l LayoutConfig) CellWidth() float64 {
	return (l.Paper.Width - 2*l.Margin) / float64(l.Columns)
}

// RowTop is the vertical offset of the first grid row on every page
func (l LayoutConfig) RowTop() float64 {
	return l.Margin + l.TitleBlockHeight
}

// RowLimit is the lowest y a row's bottom edge may reach
func (l LayoutConfig) RowLimit() float64 {
	return l.Paper.Height - l.Margin
}

// Validate rejects geometry that cannot place at least one grid row on a page
func (l LayoutConfig) Validate() error {
	if l.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", l.Columns)
	}
	if l.Paper.Width <= 0 || l.Paper.Height <= 0 {
		return fmt.Errorf("paper size must be positive, got %.2fx%.2f", l.Paper.Width, l.Paper.Height)
	}
	if l.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %.2f", l.Margin)
	}
	if l.CellHeight <= 0 {
		return fmt.Errorf("cell height must be positive, got %.2f", l.CellHeight)
	}
	if l.CellWidth() <= 0 {
		return fmt.Errorf("margins leave no room for cells on a %.2f wide page", l.Paper.Width)
	}
	if l.RowTop()+l.CellHeight > l.RowLimit() {
		return fmt.Errorf("a %.2f high row does not fit below the title block", l.CellHeight)
	}
	return nil
}
