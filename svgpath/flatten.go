package svgpath

import (
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgscene/geom"
)

// This file decomposes a compiled path into closed sub-polygons.

// curveSteps is the number of line segments a bezier segment is
// flattened into.
const curveSteps = 16

type flattener struct {
	polys [][]geom.Point
	cur   []geom.Point
	start geom.Point
	pos   geom.Point
}

// flush terminates the current sub-polygon, closing it back to its start
// point. Contours with fewer than two points carry no geometry and are
// dropped.
func (f *flattener) flush() {
	if len(f.cur) >= 2 {
		if f.cur[len(f.cur)-1] != f.cur[0] {
			f.cur = append(f.cur, f.cur[0])
		}
		f.polys = append(f.polys, f.cur)
	}
	f.cur = nil
}

func (f *flattener) add(p geom.Point) {
	f.cur = append(f.cur, p)
	f.pos = p
}

func (op MoveTo) flatten(f *flattener) {
	f.flush()
	f.start = fromFixedP(fixed.Point26_6(op))
	f.add(f.start)
}

func (op LineTo) flatten(f *flattener) {
	f.add(fromFixedP(fixed.Point26_6(op)))
}

func (op QuadTo) flatten(f *flattener) {
	p0, c, p1 := f.pos, fromFixedP(op[0]), fromFixedP(op[1])
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		f.add(geom.Point{
			X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
			Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
		})
	}
}

func (op CubicTo) flatten(f *flattener) {
	p0, c1, c2, p1 := f.pos, fromFixedP(op[0]), fromFixedP(op[1]), fromFixedP(op[2])
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		f.add(geom.Point{
			X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
			Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
		})
	}
}

func (op Close) flatten(f *flattener) {
	f.flush()
	// a sub-path continued without an explicit move starts back at the
	// closing point
	f.cur = append(f.cur, f.start)
	f.pos = f.start
}

// Flatten decomposes the path into its closed sub-polygons, one per
// sub-path, with bezier segments approximated by line chains. Every
// returned polygon ends with a copy of its first point.
func (p Path) Flatten() [][]geom.Point {
	f := &flattener{}
	for _, op := range p {
		op.flatten(f)
	}
	f.flush()
	return f.polys
}

// SubPolygons compiles the path command string and decomposes it into
// ordered closed sub-polygons.
func SubPolygons(d string) ([][]geom.Point, error) {
	path, err := Parse(d)
	if err != nil {
		return nil, err
	}
	return path.Flatten(), nil
}
