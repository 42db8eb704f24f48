package convert

import (
	"github.com/benoitkugler/svgscene/geom"
	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
)

// Shape resolvers: each reads the element's intrinsic geometry, composes
// it with the inherited transform and emits one primitive.

// boxGeometry embeds the shape's intrinsic position and size in a local
// matrix, composes it under the inherited transform, and reads the final
// position from the translation column and the size from the scale
// diagonal.
func (c *context) boxGeometry(node *svgdom.Node, x, y, w, h float64, el *scene.Element) {
	local := geom.Translate(x, y).Mul4(geom.Scale(w, h))
	eff := c.transform(node).Mul4(local)
	el.X = eff.At(0, 3)
	el.Y = eff.At(1, 3)
	el.Width = eff.At(0, 0)
	el.Height = eff.At(1, 1)
}

func resolveRect(c *context, node *svgdom.Node) error {
	el := scene.NewRectangle()
	c.applyPresentation(node, &el)
	c.applyFilter(node, &el)
	c.boxGeometry(node,
		numericAttribute(node, "x", 0),
		numericAttribute(node, "y", 0),
		numericAttribute(node, "width", 0),
		numericAttribute(node, "height", 0),
		&el)
	// the target schema has no numeric corner radius: rounding
	// attributes only flip the corner style
	if hasAttribute(node, "rx") || hasAttribute(node, "ry") {
		el.StrokeSharpness = scene.Round
	} else {
		el.StrokeSharpness = scene.Sharp
	}
	el.GroupIDs = c.groupIDs()
	c.out.Append(el)
	return nil
}

func resolveCircle(c *context, node *svgdom.Node) error {
	r := numericAttribute(node, "r", 0)
	return c.emitEllipse(node,
		numericAttribute(node, "cx", 0),
		numericAttribute(node, "cy", 0),
		r, r)
}

func resolveEllipse(c *context, node *svgdom.Node) error {
	return c.emitEllipse(node,
		numericAttribute(node, "cx", 0),
		numericAttribute(node, "cy", 0),
		numericAttribute(node, "rx", 0),
		numericAttribute(node, "ry", 0))
}

func (c *context) emitEllipse(node *svgdom.Node, cx, cy, rx, ry float64) error {
	el := scene.NewEllipse()
	c.applyPresentation(node, &el)
	c.applyFilter(node, &el)
	c.boxGeometry(node, cx-rx, cy-ry, 2*rx, 2*ry, &el)
	el.GroupIDs = c.groupIDs()
	c.out.Append(el)
	return nil
}

func resolvePolygon(c *context, node *svgdom.Node) error {
	// a polygon is always closed, whatever its fill
	return c.emitPolyline(node, true)
}

func resolvePolyline(c *context, node *svgdom.Node) error {
	// a polyline is closed unless filling is explicitly disabled
	return c.emitPolyline(node, c.styleValue(node, "fill", "") != "none")
}

func (c *context) emitPolyline(node *svgdom.Node, closePath bool) error {
	pts := pointListFromAttribute(node)
	if len(pts) == 0 {
		return nil
	}
	transformed := geom.ApplyToPoints(c.transform(node), pts)
	rel := rebase(transformed)
	if closePath {
		rel = append(rel, geom.Point{})
	}

	el := scene.NewLine()
	c.applyPresentation(node, &el)
	c.applyFilter(node, &el)
	el.X = transformed[0].X
	el.Y = transformed[0].Y
	el.Width, el.Height = geom.BoundingDimensions(rel)
	el.Points = toPairs(rel)
	el.GroupIDs = c.groupIDs()
	c.out.Append(el)
	return nil
}
