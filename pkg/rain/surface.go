package rain

import (
	"fmt"
	"image/color"
)

// LineCap mirrors the Canvas 2D lineCap values.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// String returns the Canvas 2D name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return fmt.Sprintf("LineCap(%d)", int(c))
}

// ParseLineCap converts a Canvas 2D lineCap name.
func ParseLineCap(s string) (LineCap, error) {
	switch s {
	case "butt":
		return LineCapButt, nil
	case "round":
		return LineCapRound, nil
	case "square":
		return LineCapSquare, nil
	}
	return LineCapButt, fmt.Errorf("unknown line cap %q", s)
}

// Surface is the drawable target a session renders into.
//
// The stroke setters are called once when a session starts. Clear and
// StrokeLine are called from the tick handler only.
type Surface interface {
	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)

	// Clear resets the whole surface to transparent.
	Clear()

	// StrokeLine draws one segment with the configured stroke.
	StrokeLine(x0, y0, x1, y1 float64)
}

// Flusher is implemented by surfaces that need an explicit present step
// after every frame, such as a terminal screen.
type Flusher interface {
	Flush()
}
