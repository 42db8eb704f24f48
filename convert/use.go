package convert

import (
	"strings"

	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
)

// attributes of the referencing element that always override the
// template's declarations
var useOverrides = map[string]bool{
	"x":      true,
	"y":      true,
	"width":  true,
	"height": true,
	"href":   true, // covers xlink:href as well
}

// mergeUse clones the template and merges the instance attributes onto
// the copy: the override set always takes the instance value, every
// other attribute keeps the template's declaration when it has one.
func mergeUse(instance, template *svgdom.Node) *svgdom.Node {
	merged := template.Clone()
	for _, attr := range instance.Attrs {
		name := attr.Name.Local
		if name == "id" {
			continue
		}
		if useOverrides[name] {
			merged.SetAttr(name, attr.Value)
			continue
		}
		if _, ok := merged.Attr(name); !ok {
			merged.SetAttr(name, attr.Value)
		}
	}
	return merged
}

// resolveUse inlines a use element: the referenced template, merged with
// the instance attributes, is walked in an isolated scene from which
// exactly one primitive is extracted.
func resolveUse(c *context, node *svgdom.Node) error {
	href, ok := node.Attr("href")
	if !ok {
		href, ok = node.Attr("xlink:href")
	}
	if !ok {
		return UnresolvedReferenceError{}
	}
	id := strings.TrimPrefix(href, "#")
	template := c.doc.FindByID(id)
	if template == nil {
		return MissingReferencedElementError{ID: id}
	}
	if c.visiting[id] {
		return ReferenceCycleError{ID: id}
	}
	c.visiting[id] = true
	defer delete(c.visiting, id)

	tmp := scene.Scene{}
	sub := *c
	sub.out = &tmp
	if err := sub.walk(mergeUse(node, template)); err != nil {
		return err
	}
	if tmp.Len() == 0 {
		return EmptyReferenceResultError{ID: id}
	}
	c.out.Append(tmp.Elements[0])
	return nil
}
