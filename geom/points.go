package geom

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// BoundingDimensions returns the width and height of the axis-aligned
// bounding box of the points.
func BoundingDimensions(pts []Point) (w, h float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxX - minX, maxY - minY
}

// Winding is the rotational direction of a closed polygon's vertex
// sequence, in the y-down coordinate system used by SVG.
type Winding uint8

const (
	Clockwise Winding = iota
	CounterClockwise
)

func (w Winding) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// WindingOrder classifies the polygon by the sign of its area
// (shoelace formula), in y-down coordinates. Degenerate polygons are
// reported as clockwise.
func WindingOrder(pts []Point) Winding {
	var sum float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		sum += (q.X - p.X) * (q.Y + p.Y)
	}
	if sum <= 0 {
		return Clockwise
	}
	return CounterClockwise
}
