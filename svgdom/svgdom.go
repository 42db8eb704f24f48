// Package svgdom builds a read-only document tree from SVG markup.
// The tree is the input of the converter: tags, attributes and raw text
// runs, with no SVG semantics attached.
package svgdom

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ExportMarker is the payload left (as an XML comment) in documents
// exported by the target editor. Its presence means coordinates are
// already top-anchored and text needs no baseline compensation.
const ExportMarker = "svg-source:svgscene"

const xlinkNamespace = "http://www.w3.org/1999/xlink"

// NodeType distinguishes element nodes from raw text runs.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is one node of the document tree. It is owned by the caller of the
// converter and never mutated by it.
type Node struct {
	Type     NodeType
	Tag      string     // local tag name, empty for text runs
	Attrs    []xml.Attr // document order, namespaces preserved
	Text     string     // character data, for text runs
	Parent   *Node
	Children []*Node
}

// Attr returns the value of the named attribute. Names of the form
// "prefix:local" (such as "xlink:href") match attributes in the
// corresponding namespace; plain names match un-prefixed attributes.
func (n *Node) Attr(name string) (string, bool) {
	prefix, local := "", name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
	}
	for _, attr := range n.Attrs {
		if attr.Name.Local != local {
			continue
		}
		switch prefix {
		case "":
			if attr.Name.Space == "" {
				return attr.Value, true
			}
		case "xlink":
			if attr.Name.Space == "xlink" || attr.Name.Space == xlinkNamespace {
				return attr.Value, true
			}
		default:
			if attr.Name.Space == prefix {
				return attr.Value, true
			}
		}
	}
	return "", false
}

// SetAttr sets the un-prefixed attribute, replacing an existing value.
func (n *Node) SetAttr(name, value string) {
	for i, attr := range n.Attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Clone returns a deep copy of the node and its children. The copy keeps
// the original parent pointer so that a cloned subtree can be walked in
// place of the original.
func (n *Node) Clone() *Node {
	c := &Node{
		Type:   n.Type,
		Tag:    n.Tag,
		Attrs:  append([]xml.Attr{}, n.Attrs...),
		Text:   n.Text,
		Parent: n.Parent,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
			c.Children[i].Parent = c
		}
	}
	return c
}

// Document is a parsed SVG document.
type Document struct {
	Root *Node

	// Stylesheet is the concatenated text of every <style> element.
	Stylesheet string

	// FromScene reports whether the document carries the ExportMarker,
	// i.e. was produced by exporting a scene from the target editor.
	FromScene bool

	byID map[string]*Node
}

// FindByID resolves an element by its id attribute, anywhere in the
// document (including defs). It returns nil for unknown ids.
func (d *Document) FindByID(id string) *Node {
	return d.byID[id]
}

// Parse reads an SVG document from the stream. Only well-formedness is
// required: unknown tags are kept in the tree and left to the consumer.
func Parse(stream io.Reader) (*Document, error) {
	doc := &Document{byID: make(map[string]*Node)}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var cur *Node
	var styleDepth int
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if doc.Root == nil {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			node := &Node{
				Type:   ElementNode,
				Tag:    se.Name.Local,
				Attrs:  append([]xml.Attr{}, se.Attr...),
				Parent: cur,
			}
			if cur == nil {
				if doc.Root != nil {
					return nil, errors.New("invalid svg xml document: multiple roots")
				}
				doc.Root = node
				// exporters may carry the marker on the root element
				// instead of a comment
				for _, attr := range node.Attrs {
					if strings.Contains(attr.Value, ExportMarker) {
						doc.FromScene = true
					}
				}
			} else {
				cur.Children = append(cur.Children, node)
			}
			if id, ok := node.Attr("id"); ok && id != "" {
				if _, dup := doc.byID[id]; !dup {
					doc.byID[id] = node
				}
			}
			if se.Name.Local == "style" {
				styleDepth++
			}
			cur = node
		case xml.EndElement:
			if cur != nil {
				if cur.Tag == "style" {
					styleDepth--
				}
				cur = cur.Parent
			}
		case xml.CharData:
			if cur == nil {
				continue // ignore character data outside of the tree
			}
			if styleDepth > 0 {
				doc.Stylesheet += string(se)
			}
			cur.Children = append(cur.Children, &Node{
				Type:   TextNode,
				Text:   string(se),
				Parent: cur,
			})
		case xml.Comment:
			if strings.Contains(string(se), ExportMarker) {
				doc.FromScene = true
			}
		}
	}
	return doc, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(data string) (*Document, error) {
	return Parse(strings.NewReader(data))
}
