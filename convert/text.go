package convert

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aymerick/douceur/parser"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/benoitkugler/svgscene/geom"
	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
)

// Text resolution: one primitive per text run, with font sizes taken
// from the document stylesheet, an explicit attribute, or a default, in
// that order of increasing priority.

func parseFontValue(v string) (float64, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// parseFontSizes extracts the font-size declarations of the embedded
// stylesheet, keyed by selector. A malformed stylesheet yields no rules,
// it does not fail the conversion.
func parseFontSizes(stylesheet string) map[string]float64 {
	sizes := make(map[string]float64)
	if strings.TrimSpace(stylesheet) == "" {
		return sizes
	}
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return sizes
	}
	for _, rule := range sheet.Rules {
		for _, decl := range rule.Declarations {
			if decl.Property != "font-size" {
				continue
			}
			size, err := parseFontValue(decl.Value)
			if err != nil {
				continue
			}
			for _, sel := range rule.Selectors {
				sizes[strings.TrimSpace(sel)] = size
			}
		}
	}
	return sizes
}

// classFontSize looks the class up under the four selector spellings a
// text rule may use.
func (c *context) classFontSize(class string) (float64, bool) {
	for _, sel := range [4]string{
		"." + class,
		"text." + class,
		"." + class + " tspan",
		"text." + class + " tspan",
	} {
		if size, ok := c.fontSizes[sel]; ok {
			return size, true
		}
	}
	return 0, false
}

// fontSize resolves the element's font size: stylesheet rule matching
// its class, overridden by an explicit font-size attribute, else the
// fallback.
func (c *context) fontSize(n *svgdom.Node, fallback float64) float64 {
	size := fallback
	if class := attribute(n, "class", ""); class != "" {
		if v, ok := c.classFontSize(class); ok {
			size = v
		}
	}
	if v, ok := nodeStyleValue(n, "font-size"); ok {
		if f, err := parseFontValue(v); err == nil {
			size = f
		}
	}
	return size
}

func directText(n *svgdom.Node) string {
	var b strings.Builder
	for _, child := range n.Children {
		if child.Type == svgdom.TextNode {
			b.WriteString(child.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

func resolveText(c *context, node *svgdom.Node) error {
	m := c.transform(node)
	fontSize := c.fontSize(node, defaultFontSize)
	x := numericAttribute(node, "x", 0)
	y := numericAttribute(node, "y", 0)
	fill := c.styleValue(node, "fill", defaultTextColor)

	for _, child := range node.Children {
		switch {
		case child.Type == svgdom.TextNode:
			if text := strings.TrimSpace(child.Text); text != "" {
				c.emitText(node, m, x, y, text, fill, fontSize)
			}
		case child.Type == svgdom.ElementNode && child.Tag == "tspan":
			text := directText(child)
			if text == "" {
				continue
			}
			// spans inherit position, color and size from the text
			// element unless they declare their own
			spanFill, ok := nodeStyleValue(child, "fill")
			if !ok {
				spanFill = fill
			}
			c.emitText(child, m,
				numericAttribute(child, "x", x),
				numericAttribute(child, "y", y),
				text, spanFill,
				c.fontSize(child, fontSize))
		}
	}
	return nil
}

func (c *context) emitText(node *svgdom.Node, m mgl64.Mat4, x, y float64, text, color string, fontSize float64) {
	pos := geom.Apply(m, geom.Point{X: x, Y: y})

	el := scene.NewText()
	c.applyFilter(node, &el)
	el.Text = text
	el.FontSize = fontSize
	el.StrokeColor = color
	el.X = pos.X
	el.Y = pos.Y
	if !c.doc.FromScene {
		// svg anchors text at the baseline, the scene at the top edge;
		// documents exported by the editor are already top-anchored
		el.Y -= fontSize
	}
	el.Width = charPixelWidth * float64(utf8.RuneCountInString(text))
	el.Height = textHeight
	el.Baseline = fontSize
	el.GroupIDs = c.groupIDs()
	c.out.Append(el)
}
