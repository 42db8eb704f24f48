// Package scene defines the whiteboard scene format produced by the
// converter: a flat, ordered list of drawing primitives.
package scene

import "github.com/google/uuid"

// Kind discriminates the element variants.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindLine      Kind = "line"
	KindDraw      Kind = "draw"
	KindText      Kind = "text"
)

// Sharpness values for StrokeSharpness.
const (
	Sharp = "sharp"
	Round = "round"
)

// Element is one drawing primitive. X and Y are absolute; Points, when
// present, are relative to (X, Y) with the first point at (0, 0).
type Element struct {
	ID              string       `json:"id"`
	Kind            Kind         `json:"type"`
	X               float64      `json:"x"`
	Y               float64      `json:"y"`
	Width           float64      `json:"width"`
	Height          float64      `json:"height"`
	Angle           float64      `json:"angle"`
	StrokeColor     string       `json:"strokeColor"`
	BackgroundColor string       `json:"backgroundColor"`
	FillStyle       string       `json:"fillStyle"`
	StrokeWidth     float64      `json:"strokeWidth"`
	StrokeStyle     string       `json:"strokeStyle"`
	StrokeSharpness string       `json:"strokeSharpness"`
	Roughness       int          `json:"roughness"`
	Opacity         float64      `json:"opacity"`
	GroupIDs        []string     `json:"groupIds"`
	Points          [][2]float64 `json:"points,omitempty"`

	// text fields
	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily int     `json:"fontFamily,omitempty"`
	Baseline   float64 `json:"baseline,omitempty"`
}

// newElement returns an element of the given kind with every style field
// set to its default value.
func newElement(kind Kind) Element {
	return Element{
		ID:              FreshID(),
		Kind:            kind,
		StrokeColor:     "#000000",
		BackgroundColor: "transparent",
		FillStyle:       "hachure",
		StrokeWidth:     1,
		StrokeStyle:     "solid",
		StrokeSharpness: Sharp,
		Roughness:       1,
		Opacity:         100,
	}
}

// NewRectangle returns a default-valued rectangle element.
func NewRectangle() Element { return newElement(KindRectangle) }

// NewEllipse returns a default-valued ellipse element.
func NewEllipse() Element { return newElement(KindEllipse) }

// NewLine returns a default-valued line (polyline) element.
func NewLine() Element { return newElement(KindLine) }

// NewDraw returns a default-valued freeform path element.
func NewDraw() Element { return newElement(KindDraw) }

// NewText returns a default-valued text element.
func NewText() Element {
	el := newElement(KindText)
	el.FontFamily = 1
	return el
}

// Scene is an ordered, append-only list of elements.
type Scene struct {
	Elements []Element
}

// Append adds the element at the end of the scene.
func (s *Scene) Append(el Element) {
	s.Elements = append(s.Elements, el)
}

// Len returns the number of elements.
func (s *Scene) Len() int { return len(s.Elements) }

// FreshID returns an identifier unique within a scene.
func FreshID() string { return uuid.NewString() }
