package convert

import (
	"fmt"

	"github.com/benoitkugler/svgscene/geom"
	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
	"github.com/benoitkugler/svgscene/svgpath"
)

// resolvePath decomposes a path element into one freeform primitive per
// sub-polygon.
//
// Under the nonzero fill rule, sub-polygons whose winding order differs
// from the first one are treated as holes and painted white, since the
// target schema has no compound-path concept. The comparison is always
// against the first sub-polygon's orientation, so deeper nesting
// (holes within holes) is not rendered correctly.
func resolvePath(c *context, node *svgdom.Node) error {
	d, ok := node.Attr("d")
	if !ok || d == "" {
		return nil
	}
	subs, err := svgpath.SubPolygons(d)
	if err != nil {
		return fmt.Errorf("invalid path data: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	fill := c.styleValue(node, "fill", transparent)
	if fill == "none" {
		fill = transparent
	}
	offX := numericAttribute(node, "x", 0)
	offY := numericAttribute(node, "y", 0)
	m := c.transform(node)

	switch c.styleValue(node, "fill-rule", "nonzero") {
	case "nonzero":
		// the shared identifier groups the contours back into one shape
		groupID := scene.FreshID()
		var reference geom.Winding
		for i, sub := range subs {
			transformed := geom.ApplyToPoints(m, sub)
			rel := rebase(transformed)
			winding := geom.WindingOrder(rel)
			if i == 0 {
				reference = winding
			}

			el := scene.NewDraw()
			c.applyPresentation(node, &el)
			c.applyFilter(node, &el)
			el.BackgroundColor = fill
			if i > 0 && winding != reference {
				el.BackgroundColor = holeColor
			}
			// strokes are emitted separately by the editor; a stroked
			// contour here would draw twice
			el.StrokeWidth = 0
			el.StrokeColor = transparent
			el.X = transformed[0].X + offX
			el.Y = transformed[0].Y + offY
			el.Width, el.Height = geom.BoundingDimensions(rel)
			el.Points = toPairs(rel)
			el.GroupIDs = append(c.groupIDs(), groupID)
			c.out.Append(el)
		}
	case "evenodd":
		// even-odd filling is left to the target renderer: no hole
		// simulation, ordinary colors and strokes
		groupID := scene.FreshID()
		for _, sub := range subs {
			transformed := geom.ApplyToPoints(m, sub)
			rel := rebase(transformed)

			el := scene.NewDraw()
			c.applyPresentation(node, &el)
			c.applyFilter(node, &el)
			el.X = transformed[0].X + offX
			el.Y = transformed[0].Y + offY
			el.Width, el.Height = geom.BoundingDimensions(rel)
			el.Points = toPairs(rel)
			el.GroupIDs = append(c.groupIDs(), groupID)
			c.out.Append(el)
		}
	default:
		// unrecognized fill rule: the path is skipped, not an error
	}
	return nil
}
