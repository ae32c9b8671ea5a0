// Package node is the element model of the markup builder: named nodes with
// ordered attributes and children that render themselves to markup text.
//
// Nothing in this package escapes text or attribute values, and nothing
// validates tag or attribute names. What you put in is what comes out.
package node

import (
	"io"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "node")

// Node is anything that can appear as a child of an Element.
type Node interface {
	Render() string
}

// Text is a literal child, rendered verbatim.
type Text string

func (t Text) Render() string { return string(t) }

// Collection groups sibling nodes without a wrapping tag.
type Collection []Node

// Render concatenates the rendering of every item.
func (c Collection) Render() string {
	var b strings.Builder
	for _, n := range c {
		writeNode(&b, n)
	}
	return b.String()
}

func (c Collection) String() string { return c.Render() }

// Container is a node that owns an element tree of its own, such as a
// whole document. Tree operations treat it as its root element.
type Container interface {
	Node
	RootElement() *Element
	CloneNode() Node
}

const defaultTag = "div"

// only the first run is replaced
var tagSeparators = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}/\\]+`)

func normalizeTag(t string) string {
	if t == "" {
		return defaultTag
	}
	if loc := tagSeparators.FindStringIndex(t); loc != nil {
		return t[:loc[0]] + "-" + t[loc[1]:]
	}
	return t
}

// Element is a named node with attributes and ordered children.
type Element struct {
	// SelfClosing renders the element as <tag /> while it has no children.
	SelfClosing bool

	tag      string
	attrs    *namedNodeMap
	children []Node
	parent   *Element
}

// New creates an element. An empty tag creates a div.
func New(tag string) *Element {
	return &Element{
		tag:   normalizeTag(tag),
		attrs: newNamedNodeMap(),
	}
}

func (e *Element) Tag() string { return e.tag }

// Parent returns the element this one was last inserted into, or nil.
func (e *Element) Parent() *Element { return e.parent }

// SetAttribute stores v under name, overwriting any previous value.
// None removes the attribute.
func (e *Element) SetAttribute(name string, v Value) *Element {
	e.attrs.setNamedItem(name, v)
	return e
}

// Attr is SetAttribute with a string value.
func (e *Element) Attr(name, value string) *Element {
	return e.SetAttribute(name, String(value))
}

// Flag sets a boolean attribute that renders as a bare name.
func (e *Element) Flag(name string) *Element {
	return e.SetAttribute(name, True)
}

func (e *Element) RemoveAttribute(name string) *Element {
	return e.SetAttribute(name, None)
}

func (e *Element) Attribute(name string) (Value, bool) {
	return e.attrs.getNamedItem(name)
}

// AttributeNames lists attribute names in rendering order.
func (e *Element) AttributeNames() []string {
	names := make([]string, len(e.attrs.names))
	copy(names, e.attrs.names)
	return names
}

// Apply sets every attribute of attrs on e.
func (e *Element) Apply(attrs Attrs) *Element {
	attrs.ApplyTo(e)
	return e
}

// AddClass appends the space-joined names to the class attribute. Classes
// are not deduplicated.
func (e *Element) AddClass(names ...string) *Element {
	joined := strings.Join(names, " ")
	if cur, ok := e.attrs.getNamedItem("class"); ok && cur.Truthy() {
		return e.Attr("class", cur.Text()+" "+joined)
	}
	return e.Attr("class", joined)
}

// SetID sets the id attribute. An empty id removes it.
func (e *Element) SetID(id string) *Element {
	if id == "" {
		return e.RemoveAttribute("id")
	}
	return e.Attr("id", id)
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	c := make([]Node, len(e.children))
	copy(c, e.children)
	return c
}

// SetChildren replaces all children with nodes.
func (e *Element) SetChildren(nodes ...Node) *Element {
	for _, c := range e.children {
		if el := asElement(c); el != nil && el.parent == e {
			el.parent = nil
		}
	}
	e.children = nil
	e.children = e.adopt("SetChildren", nodes)
	return e
}

// AppendChildren adds nodes after the existing children.
func (e *Element) AppendChildren(nodes ...Node) *Element {
	adopted := e.adopt("AppendChildren", nodes)
	e.children = append(e.children, adopted...)
	return e
}

// PrependChildren adds nodes before the existing children, keeping their
// given order.
func (e *Element) PrependChildren(nodes ...Node) *Element {
	adopted := e.adopt("PrependChildren", nodes)
	e.children = append(adopted, e.children...)
	return e
}

// adopt prepares nodes for insertion under e. Collections are spliced into
// their items, elements already attached somewhere are moved, and
// insertions that would make e its own ancestor are dropped.
func (e *Element) adopt(method string, nodes []Node) []Node {
	nodes = flatten(nil, nodes)
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		el := asElement(n)
		if el == nil {
			out = append(out, n)
			continue
		}
		if el.contains(e) {
			log.WithField("method", method).Debugf("[TREE]: refusing to insert <%s> into its own subtree <%s>", el.tag, e.tag)
			continue
		}
		if el.parent != nil {
			log.WithField("method", method).Debugf("[TREE]: moving <%s> from <%s> to <%s>", el.tag, el.parent.tag, e.tag)
			el.parent.removeChild(el)
		}
		// the same element twice in one call keeps the last position
		out = removeElement(out, el)
		el.parent = e
		out = append(out, n)
	}
	return out
}

func flatten(out, nodes []Node) []Node {
	for _, n := range nodes {
		if c, ok := n.(Collection); ok {
			out = flatten(out, c)
			continue
		}
		out = append(out, n)
	}
	return out
}

func (e *Element) removeChild(child *Element) {
	e.children = removeElement(e.children, child)
	child.parent = nil
}

func removeElement(list []Node, el *Element) []Node {
	for i, n := range list {
		if asElement(n) == el {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// contains reports whether other is e or one of its descendants.
func (e *Element) contains(other *Element) bool {
	for p := other; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of e without a parent.
func (e *Element) Clone() *Element {
	c := &Element{
		SelfClosing: e.SelfClosing,
		tag:         e.tag,
		attrs:       e.attrs.clone(),
	}
	for _, child := range e.children {
		c.children = append(c.children, cloneNode(child, c))
	}
	return c
}

func cloneNode(n Node, parent *Element) Node {
	switch n := n.(type) {
	case *Element:
		c := n.Clone()
		c.parent = parent
		return c
	case *MetaElement:
		c := &MetaElement{Element: n.Element.Clone()}
		c.parent = parent
		return c
	case Container:
		c := n.CloneNode()
		if el := asElement(c); el != nil {
			el.parent = parent
		}
		return c
	}
	return n
}

// Render returns the markup for e and its whole subtree.
func (e *Element) Render() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Element) String() string { return e.Render() }

// WriteTo writes the rendered markup to w.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Render())
	return int64(n), err
}

func (e *Element) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, name := range e.attrs.names {
		v := e.attrs.values[name]
		if !v.Truthy() {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		if !v.IsFlag() {
			b.WriteString(`="`)
			b.WriteString(v.Text())
			b.WriteByte('"')
		}
	}

	if e.SelfClosing && len(e.children) == 0 {
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')
	for _, child := range e.children {
		writeNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func writeNode(b *strings.Builder, n Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *Element:
		n.render(b)
	case *MetaElement:
		n.render(b)
	default:
		b.WriteString(n.Render())
	}
}

func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Element:
		return n == nil
	case *MetaElement:
		return n == nil || n.Element == nil
	case Container:
		return n.RootElement() == nil
	}
	return false
}

func asElement(n Node) *Element {
	switch n := n.(type) {
	case *Element:
		return n
	case *MetaElement:
		if n != nil {
			return n.Element
		}
	case Container:
		return n.RootElement()
	}
	return nil
}
