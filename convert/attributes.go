package convert

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/svgscene/geom"
	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
)

// Attribute extraction helpers. Style lookups honour the inline style
// attribute ("style stomps on presentation attributes") and fall back
// to the enclosing groups, innermost first.

func hasAttribute(n *svgdom.Node, name string) bool {
	_, ok := n.Attr(name)
	return ok
}

func attribute(n *svgdom.Node, name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// numericAttribute reads the attribute with numeric coercion: missing or
// invalid values yield the default.
func numericAttribute(n *svgdom.Node, name string, def float64) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return def
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// inlineStyleValue extracts one declaration from the style attribute.
func inlineStyleValue(n *svgdom.Node, name string) (string, bool) {
	style, ok := n.Attr("style")
	if !ok {
		return "", false
	}
	for _, pair := range strings.Split(style, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 && strings.TrimSpace(kv[0]) == name {
			return strings.TrimSpace(kv[1]), true
		}
	}
	return "", false
}

// nodeStyleValue reads a presentation value off a single element, inline
// style first.
func nodeStyleValue(n *svgdom.Node, name string) (string, bool) {
	if v, ok := inlineStyleValue(n, name); ok {
		return v, true
	}
	return n.Attr(name)
}

// styleValue resolves a presentation value with group inheritance: the
// element itself, then the enclosing groups from innermost to outermost.
func (c *context) styleValue(n *svgdom.Node, name, def string) string {
	if v, ok := nodeStyleValue(n, name); ok {
		return v
	}
	for i := len(c.groups) - 1; i >= 0; i-- {
		if v, ok := nodeStyleValue(c.groups[i].node, name); ok {
			return v
		}
	}
	return def
}

// pointListFromAttribute parses the points attribute of polygon and
// polyline elements. A trailing unpaired coordinate is dropped.
func pointListFromAttribute(n *svgdom.Node) []geom.Point {
	fields := strings.FieldsFunc(attribute(n, "points", ""),
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
	pts := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts
}

// applyPresentation maps the recognized presentation attributes onto the
// element's style fields.
func (c *context) applyPresentation(n *svgdom.Node, el *scene.Element) {
	if v := c.styleValue(n, "stroke", ""); v != "" {
		if v == "none" {
			el.StrokeColor = transparent
		} else {
			el.StrokeColor = v
		}
	}
	if v := c.styleValue(n, "fill", ""); v != "" {
		if v == "none" {
			el.BackgroundColor = transparent
		} else {
			el.BackgroundColor = v
			el.FillStyle = "solid"
		}
	}
	if v := c.styleValue(n, "stroke-width", ""); v != "" {
		if w, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64); err == nil {
			el.StrokeWidth = w
		}
	}
	if v := c.styleValue(n, "stroke-dasharray", ""); v != "" && v != "none" {
		el.StrokeStyle = "dashed"
	}
}

// applyFilter maps the recognized opacity and visibility attributes.
func (c *context) applyFilter(n *svgdom.Node, el *scene.Element) {
	if v := c.styleValue(n, "opacity", ""); v != "" {
		if op, err := strconv.ParseFloat(v, 64); err == nil {
			if op < 0 {
				op = 0
			} else if op > 1 {
				op = 1
			}
			el.Opacity = op * 100
		}
	}
	if v := c.styleValue(n, "display", ""); v == "none" {
		el.Opacity = 0
	}
	if v := c.styleValue(n, "visibility", ""); v == "hidden" {
		el.Opacity = 0
	}
}
