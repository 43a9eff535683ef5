package labels

import (
	"bytes"
	"fmt"
	"time"

	"labelsheet/internal/config"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// Canvas is an append-only drawing surface. Coordinates are in layout units
// with the origin at the top-left corner; Text y is the baseline.
type Canvas interface {
	AddPage()
	SetFontSize(size float64)
	Text(x, y float64, text string)
	Rect(x, y, width, height float64)
	PageCount() int
	Bytes() ([]byte, error)
}

// CanvasFactory creates a canvas for one document stamped with the given date
type CanvasFactory func(layout config.LayoutConfig, date time.Time) Canvas

// pdfCanvas draws with fpdf core fonts
type pdfCanvas struct {
	pdf *fpdf.Fpdf
}

// NewPDFCanvas creates a PDF canvas sized to the layout's paper.
// Creation and modification dates are fixed to date so identical input gives identical bytes.
func NewPDFCanvas(layout config.LayoutConfig, date time.Time) Canvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: config.DefaultPageOrientation,
		UnitStr:        config.DefaultPageUnit,
		Size:           fpdf.SizeType{Wd: layout.Paper.Width, Ht: layout.Paper.Height},
	})

	stamp := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("labelsheet", false)
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(false, layout.Margin)
	pdf.SetFont(layout.FontFamily, "", layout.BodyFontSize)

	return &pdfCanvas{pdf: pdf}
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFontSize(size float64) {
	c.pdf.SetFontSize(size)
}

func (c *pdfCanvas) Text(x, y float64, text string) {
	c.pdf.Text(x, y, toWindows1252(text))
}

func (c *pdfCanvas) Rect(x, y, width, height float64) {
	c.pdf.Rect(x, y, width, height, "D")
}

func (c *pdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *pdfCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// toWindows1252 encodes text for the core fonts; characters they cannot show become '?'
func toWindows1252(text string) string {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
