// Package geom provides the small linear-algebra layer used by the
// converter: 4x4 transform matrices built from SVG transform attributes,
// point transformation, and polygon measures.
package geom

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var errParamMismatch = errors.New("param mismatch")

// Identity is the neutral transform.
var Identity = mgl64.Ident4()

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func parseFloatList(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Translate returns the translation matrix moving the origin to (x, y).
func Translate(x, y float64) mgl64.Mat4 { return mgl64.Translate3D(x, y, 0) }

// Scale returns the scaling matrix with factors (sx, sy).
func Scale(sx, sy float64) mgl64.Mat4 { return mgl64.Scale3D(sx, sy, 1) }

func skewX(angle float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	m.Set(0, 1, math.Tan(angle))
	return m
}

func skewY(angle float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	m.Set(1, 0, math.Tan(angle))
	return m
}

func applyTransformFunc(m mgl64.Mat4, name string, pts []float64) (mgl64.Mat4, error) {
	ln := len(pts)
	switch name {
	case "rotate":
		if ln == 1 {
			m = m.Mul4(mgl64.HomogRotate3DZ(pts[0] * math.Pi / 180))
		} else if ln == 3 {
			m = m.Mul4(Translate(pts[1], pts[2])).
				Mul4(mgl64.HomogRotate3DZ(pts[0] * math.Pi / 180)).
				Mul4(Translate(-pts[1], -pts[2]))
		} else {
			return m, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m = m.Mul4(Translate(pts[0], 0))
		} else if ln == 2 {
			m = m.Mul4(Translate(pts[0], pts[1]))
		} else {
			return m, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m = m.Mul4(Scale(pts[0], pts[0]))
		} else if ln == 2 {
			m = m.Mul4(Scale(pts[0], pts[1]))
		} else {
			return m, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m = m.Mul4(skewX(pts[0] * math.Pi / 180))
		} else {
			return m, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m = m.Mul4(skewY(pts[0] * math.Pi / 180))
		} else {
			return m, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			t := mgl64.Ident4()
			t.Set(0, 0, pts[0])
			t.Set(1, 0, pts[1])
			t.Set(0, 1, pts[2])
			t.Set(1, 1, pts[3])
			t.Set(0, 3, pts[4])
			t.Set(1, 3, pts[5])
			m = m.Mul4(t)
		} else {
			return m, errParamMismatch
		}
	default:
		return m, errParamMismatch
	}
	return m, nil
}

// ParseTransform interprets an SVG transform attribute value, composing the
// transform functions left to right.
func ParseTransform(v string) (mgl64.Mat4, error) {
	m := mgl64.Ident4()
	ts := strings.Split(v, ")")
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m, errParamMismatch // badly formed transformation
		}
		pts, err := parseFloatList(d[1])
		if err != nil {
			return m, err
		}
		m, err = applyTransformFunc(m, strings.ToLower(strings.TrimSpace(d[0])), pts)
		if err != nil {
			return m, err
		}
	}
	return m, nil
}

// Compose multiplies the transform attribute values given outermost first,
// so that the resulting matrix applies the outermost transform last.
// Empty strings are skipped; malformed ones are ignored (the element is
// placed as if the attribute were absent), matching lenient SVG renderers.
func Compose(transforms []string) mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, s := range transforms {
		if strings.TrimSpace(s) == "" {
			continue
		}
		t, err := ParseTransform(s)
		if err != nil {
			continue
		}
		m = m.Mul4(t)
	}
	return m
}

// Apply maps a point through the matrix, dropping the z component.
func Apply(m mgl64.Mat4, p Point) Point {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, 0, 1})
	return Point{X: v.X(), Y: v.Y()}
}

// ApplyToPoints maps every point through the matrix.
func ApplyToPoints(m mgl64.Mat4, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Apply(m, p)
	}
	return out
}
