// Package markup builds whole documents: an html root with fixed head and
// body sections, an optional doctype, and the Helmet helpers for the usual
// head and body insertions.
package markup

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/heathj/helmet/markup/node"
)

var log = logrus.WithField("pkg", "markup")

// Document is an html element whose only children are a head and a body.
// Insertions always target those two elements.
type Document struct {
	root    *node.Element
	head    *node.Element
	body    *node.Element
	doctype string
}

// NewDocument creates an empty document without a doctype.
func NewDocument() *Document {
	d := &Document{
		root: node.New("html"),
		head: node.New("head"),
		body: node.New("body"),
	}
	d.root.AppendChildren(d.head, d.body)
	return d
}

// HTML creates an empty document with the given doctype.
func HTML(version Doctype) *Document {
	return NewDocument().SetDoctype(version)
}

func (d *Document) AppendHead(nodes ...node.Node) *Document {
	d.head.AppendChildren(nodes...)
	return d
}

func (d *Document) AppendBody(nodes ...node.Node) *Document {
	d.body.AppendChildren(nodes...)
	return d
}

func (d *Document) PrependHead(nodes ...node.Node) *Document {
	d.head.PrependChildren(nodes...)
	return d
}

func (d *Document) PrependBody(nodes ...node.Node) *Document {
	d.body.PrependChildren(nodes...)
	return d
}

// SetNamespace sets xmlns on the html element.
func (d *Document) SetNamespace(uri string) *Document {
	return d.SetAttribute("xmlns", node.String(uri))
}

// SetLanguage sets lang on the html element.
func (d *Document) SetLanguage(code string) *Document {
	return d.SetAttribute("lang", node.String(code))
}

func (d *Document) SetAttribute(name string, v node.Value) *Document {
	d.root.SetAttribute(name, v)
	return d
}

func (d *Document) AddClass(names ...string) *Document {
	d.root.AddClass(names...)
	return d
}

func (d *Document) SetID(id string) *Document {
	d.root.SetID(id)
	return d
}

// SetDoctype picks the declaration rendered before the html element.
func (d *Document) SetDoctype(version Doctype) *Document {
	d.doctype = DoctypeDeclaration(version)
	return d
}

// Doctype returns the current declaration, empty if none was set.
func (d *Document) Doctype() string { return d.doctype }

// Render returns the doctype followed by the html element.
func (d *Document) Render() string {
	return d.doctype + d.root.Render()
}

func (d *Document) String() string { return d.Render() }

// RootElement returns the html element. Inserting a document into a tree
// moves and cycle-checks it like that element.
func (d *Document) RootElement() *node.Element {
	if d == nil {
		return nil
	}
	return d.root
}

// Clone returns a deep copy of d whose html element has no parent.
func (d *Document) Clone() *Document {
	c := &Document{root: d.root.Clone(), doctype: d.doctype}
	for _, n := range c.root.Children() {
		el, ok := n.(*node.Element)
		if !ok {
			continue
		}
		switch el.Tag() {
		case "head":
			c.head = el
		case "body":
			c.body = el
		}
	}
	return c
}

func (d *Document) CloneNode() node.Node { return d.Clone() }

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}
