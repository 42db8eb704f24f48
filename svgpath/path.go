// Package svgpath compiles SVG path command strings ("d" attributes) into
// an abstract operation list, and decomposes them into closed sub-polygons
// suitable for a scene converter.
package svgpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgscene/geom"
)

// Operation is one basic path command.
type Operation interface {
	// flatten appends the operation to the polygon under construction
	flatten(f *flattener)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// Path is a sequence of basic path operations.
type Path []Operation

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

func fromFixedP(p fixed.Point26_6) geom.Point {
	return geom.Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Start starts a new sub-path at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current sub-path.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current sub-path.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current sub-path.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop closes the current sub-path.
func (p *Path) Stop() {
	*p = append(*p, Close{})
}

// String returns an SVG representation of the path.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}
