package labels

import (
	"errors"
	"time"

	"labelsheet/internal/config"
)

type drawOp struct {
	Kind   string
	Page   int
	X, Y   float64
	W, H   float64
	Text   string
	FontPt float64
}

// recordingCanvas captures drawing calls for assertions
type recordingCanvas struct {
	ops      []drawOp
	pages    int
	fontSize float64
	date     time.Time
	bytesErr error
	panicOn  string
}

func newRecordingFactory(last **recordingCanvas) CanvasFactory {
	return func(layout config.LayoutConfig, date time.Time) Canvas {
		c := &recordingCanvas{date: date, fontSize: layout.BodyFontSize}
		*last = c
		return c
	}
}

func (c *recordingCanvas) AddPage() {
	c.pages++
}

func (c *recordingCanvas) SetFontSize(size float64) {
	c.fontSize = size
}

func (c *recordingCanvas) Text(x, y float64, text string) {
	if c.panicOn != "" && text == c.panicOn {
		panic("cannot draw " + text)
	}
	c.ops = append(c.ops, drawOp{Kind: "text", Page: c.pages, X: x, Y: y, Text: text, FontPt: c.fontSize})
}

func (c *recordingCanvas) Rect(x, y, width, height float64) {
	c.ops = append(c.ops, drawOp{Kind: "rect", Page: c.pages, X: x, Y: y, W: width, H: height})
}

func (c *recordingCanvas) PageCount() int {
	return c.pages
}

func (c *recordingCanvas) Bytes() ([]byte, error) {
	if c.bytesErr != nil {
		return nil, c.bytesErr
	}
	return []byte("recorded"), nil
}

func (c *recordingCanvas) rects(page int) []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.Kind == "rect" && (page == 0 || op.Page == page) {
			out = append(out, op)
		}
	}
	return out
}

func (c *recordingCanvas) texts(page int) []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.Kind == "text" && (page == 0 || op.Page == page) {
			out = append(out, op)
		}
	}
	return out
}

var errCanvasWrite = errors.New("disk full")
