package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgscene/geom"
)

func TestParseBasicCommands(t *testing.T) {
	path, err := Parse("M0 0 L10 0 L10 10 Z")
	require.NoError(t, err)
	require.Len(t, path, 4)

	assert.IsType(t, MoveTo{}, path[0])
	assert.IsType(t, LineTo{}, path[1])
	assert.IsType(t, LineTo{}, path[2])
	assert.IsType(t, Close{}, path[3])
}

func TestParseRelativeAndShorthand(t *testing.T) {
	// h, v and relative l all expand to absolute line segments
	path, err := Parse("m1 1 h4 v3 l-4 0 z")
	require.NoError(t, err)

	polys := path.Flatten()
	require.Len(t, polys, 1)
	assert.Equal(t, []geom.Point{
		{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 4}, {X: 1, Y: 4}, {X: 1, Y: 1},
	}, polys[0])
}

func TestParseImplicitRepetition(t *testing.T) {
	// parameter groups after M repeat as L
	path, err := Parse("M0 0 10 0 10 10")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.IsType(t, LineTo{}, path[1])
	assert.IsType(t, LineTo{}, path[2])
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("M0 0 X10 10")
	assert.ErrorIs(t, err, errBadCommand)

	_, err = Parse("M0")
	assert.Error(t, err)
}

func TestFlattenOpenSubPathIsClosed(t *testing.T) {
	polys, err := SubPolygons("M0 0 L10 0 L10 10")
	require.NoError(t, err)
	require.Len(t, polys, 1)

	poly := polys[0]
	assert.Equal(t, poly[0], poly[len(poly)-1])
}

func TestFlattenMultipleSubPaths(t *testing.T) {
	polys, err := SubPolygons("M0 0h10v10h-10z M20 0h10v10h-10z")
	require.NoError(t, err)
	require.Len(t, polys, 2)

	// sub-polygons keep document order
	assert.Equal(t, geom.Point{X: 0, Y: 0}, polys[0][0])
	assert.Equal(t, geom.Point{X: 20, Y: 0}, polys[1][0])
}

func TestFlattenQuadBezier(t *testing.T) {
	polys, err := SubPolygons("M0 0 Q5 5 10 0")
	require.NoError(t, err)
	require.Len(t, polys, 1)

	poly := polys[0]
	// 1 start point, 16 curve samples, 1 closing point
	assert.Len(t, poly, 18)
	assert.InDelta(t, 10, poly[16].X, 1e-6) // curve end point
	// the apex of the parabola sits halfway up the control point
	var maxY float64
	for _, p := range poly {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	assert.InDelta(t, 2.5, maxY, 0.05)
}

func TestFlattenArcEndPoint(t *testing.T) {
	polys, err := SubPolygons("M0 0 A5 5 0 0 1 10 0")
	require.NoError(t, err)
	require.Len(t, polys, 1)

	poly := polys[0]
	end := poly[len(poly)-2] // last point before the closing copy
	assert.InDelta(t, 10, end.X, 0.05)
	assert.InDelta(t, 0, end.Y, 0.05)
}

func TestZeroRadiusArcIsLine(t *testing.T) {
	path, err := Parse("M0 0 A0 5 0 0 1 10 0")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.IsType(t, LineTo{}, path[1])
}

func TestSubPathContinuesAfterClose(t *testing.T) {
	// a segment after z without an explicit move restarts at the sub-path
	// start point
	polys, err := SubPolygons("M0 0 L10 0 L10 10 z L0 10")
	require.NoError(t, err)
	require.Len(t, polys, 2)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, polys[1][0])
	assert.Equal(t, geom.Point{X: 0, Y: 10}, polys[1][1])
}

func TestPathString(t *testing.T) {
	path, err := Parse("M0 0 L10 0 Z")
	require.NoError(t, err)
	assert.Contains(t, path.String(), "Z")
	assert.Contains(t, path.String(), "M0.000,0.000")
}
