package node

// MetaElement is a self-closing meta element.
type MetaElement struct {
	*Element
}

// NewMeta creates a meta element. Empty name or content are left unset.
func NewMeta(name, content string) *MetaElement {
	m := &MetaElement{Element: New("meta")}
	m.SelfClosing = true
	if name != "" {
		m.Attr("name", name)
	}
	if content != "" {
		m.Attr("content", content)
	}
	return m
}

// SetContent sets the content attribute. An empty value removes it.
func (m *MetaElement) SetContent(value string) *MetaElement {
	if value == "" {
		m.RemoveAttribute("content")
		return m
	}
	m.Attr("content", value)
	return m
}

// Props is what Meta accepts besides the name: either Content or Attrs.
type Props interface {
	ApplyTo(e *Element)
}

// Content is a Props that sets the content attribute.
type Content string

func (c Content) ApplyTo(e *Element) {
	if c != "" {
		e.Attr("content", string(c))
	}
}

// Meta creates a meta element named name and applies props to it. A nil
// props applies nothing.
func Meta(name string, props Props) *MetaElement {
	m := NewMeta(name, "")
	if props != nil {
		props.ApplyTo(m.Element)
	}
	return m
}

// Charset creates <meta charset="..." />. An empty charset means utf-8.
func Charset(charset string) *MetaElement {
	if charset == "" {
		charset = "utf-8"
	}
	m := NewMeta("", "")
	m.Attr("charset", charset)
	return m
}

func HTTPEquiv(equiv, content string) *MetaElement {
	m := NewMeta("", "")
	m.Attr("http-equiv", equiv)
	return m.SetContent(content)
}

func Viewport(viewport string) *MetaElement { return NewMeta("viewport", viewport) }

func Referrer(referrer string) *MetaElement { return NewMeta("referrer", referrer) }

// Pair is a name/content entry of a meta map.
type Pair struct {
	Name    string
	Content string
}

// MetaMap creates one meta element per pair, in order. A pair named
// "charset" produces a charset meta rather than a name/content one.
func MetaMap(pairs ...Pair) Collection {
	c := make(Collection, 0, len(pairs))
	for _, p := range pairs {
		if p.Name == "charset" {
			c = append(c, Charset(p.Content))
			continue
		}
		c = append(c, NewMeta(p.Name, p.Content))
	}
	return c
}
