// Package convert turns a parsed SVG document into a whiteboard scene:
// an ordered list of typed primitives with absolute geometry, style
// fields and group membership.
package convert

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/benoitkugler/svgscene/geom"
	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	handlers["svg"] = resolveContainer
	handlers["g"] = resolveGroup
	handlers["use"] = resolveUse
}

// group is one enclosing <g> element: a stable identifier plus the
// element itself, whose declared attributes act as style defaults for
// descendants.
type group struct {
	id   string
	node *svgdom.Node
}

// context carries the traversal state down the tree. It is copied, never
// shared, when descending into a group, so that group membership cannot
// leak across sibling branches.
type context struct {
	doc  *svgdom.Document
	out  *scene.Scene
	mode ErrorMode
	base mgl64.Mat4 // document-wide pre-transform

	groups []group // outermost first

	fontSizes map[string]float64 // stylesheet font sizes, by selector

	visiting map[string]bool // reference-cycle guard for use elements
}

type handler func(c *context, node *svgdom.Node) error

var handlers = map[string]handler{
	"rect":     resolveRect,
	"circle":   resolveCircle,
	"ellipse":  resolveEllipse,
	"polygon":  resolvePolygon,
	"polyline": resolvePolyline,
	"path":     resolvePath,
	"text":     resolveText,

	// recognized but deliberately ignored: lines have no scene
	// counterpart, and defs content is only reachable through use
	"line":     resolveNothing,
	"defs":     resolveNothing,
	"style":    resolveNothing,
	"title":    resolveNothing,
	"desc":     resolveNothing,
	"metadata": resolveNothing,
}

// walk visits the node, dispatching on its tag. Unsupported tags advance
// traversal without emitting anything.
func (c *context) walk(node *svgdom.Node) error {
	if node == nil || node.Type != svgdom.ElementNode {
		return nil
	}
	h, ok := handlers[node.Tag]
	if !ok {
		return c.unsupported(node.Tag)
	}
	return h(c, node)
}

func resolveNothing(*context, *svgdom.Node) error { return nil }

// resolveContainer recurses into children with the unchanged context.
func resolveContainer(c *context, node *svgdom.Node) error {
	for _, child := range node.Children {
		if err := c.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// resolveGroup pushes a new group record onto a copy of the group chain
// and walks the children with the extended context. The original context
// is left untouched for the node's siblings.
func resolveGroup(c *context, node *svgdom.Node) error {
	sub := *c
	sub.groups = append(append([]group{}, c.groups...), group{
		id:   scene.FreshID(),
		node: node,
	})
	return resolveContainer(&sub, node)
}

// groupIDs returns the identifiers of the enclosing groups, outermost
// first, as a fresh slice.
func (c *context) groupIDs() []string {
	if len(c.groups) == 0 {
		return nil
	}
	ids := make([]string, len(c.groups))
	for i, g := range c.groups {
		ids[i] = g.id
	}
	return ids
}

// transform composes every enclosing group's transform attribute
// (outermost first) with the node's own, yielding the node's effective
// matrix. The composition order is load-bearing: ancestors multiply on
// the left.
func (c *context) transform(node *svgdom.Node) mgl64.Mat4 {
	transforms := make([]string, 0, len(c.groups)+1)
	for _, g := range c.groups {
		if t, ok := g.node.Attr("transform"); ok {
			transforms = append(transforms, t)
		}
	}
	if t, ok := node.Attr("transform"); ok {
		transforms = append(transforms, t)
	}
	return c.base.Mul4(geom.Compose(transforms))
}

// rebase translates the points so that the first one becomes the origin.
func rebase(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return nil
	}
	origin := pts[0]
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Sub(origin)
	}
	return out
}

func toPairs(pts []geom.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// Options tunes a conversion. The zero value is ready to use: silent
// error mode, no scaling.
type Options struct {
	// Mode determines whether unsupported elements are ignored, logged,
	// or rejected.
	Mode ErrorMode

	// Scale, when non-zero, uniformly scales the whole document.
	Scale float64
}

// ConvertDocument walks the parsed document and returns the resulting
// scene. A malformed reference aborts the whole conversion: no partial
// scene is returned.
func ConvertDocument(doc *svgdom.Document, opts Options) (*scene.Scene, error) {
	base := mgl64.Ident4()
	if opts.Scale != 0 && opts.Scale != 1 {
		base = geom.Scale(opts.Scale, opts.Scale)
	}
	c := &context{
		doc:       doc,
		out:       &scene.Scene{},
		mode:      opts.Mode,
		base:      base,
		fontSizes: parseFontSizes(doc.Stylesheet),
		visiting:  make(map[string]bool),
	}
	if err := c.walk(doc.Root); err != nil {
		return nil, err
	}
	return c.out, nil
}

// Convert reads an SVG document from the stream and converts it.
func Convert(stream io.Reader, opts Options) (*scene.Scene, error) {
	doc, err := svgdom.Parse(stream)
	if err != nil {
		return nil, err
	}
	return ConvertDocument(doc, opts)
}
