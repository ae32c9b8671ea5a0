package markup

import (
	"fmt"
	"strings"

	"github.com/heathj/helmet/markup/node"
)

// Helmet is a Document with shortcuts for common head and body content.
type Helmet struct {
	*Document
}

// NewHelmet creates a helmet without a doctype.
func NewHelmet() *Helmet {
	return &Helmet{Document: NewDocument()}
}

// Page creates a helmet with the HTML5 doctype.
func Page() *Helmet {
	h := NewHelmet()
	h.SetDoctype(HTML5)
	return h
}

func (h *Helmet) RootElement() *node.Element {
	if h == nil {
		return nil
	}
	return h.Document.RootElement()
}

// Clone returns a deep copy of h.
func (h *Helmet) Clone() *Helmet {
	return &Helmet{Document: h.Document.Clone()}
}

func (h *Helmet) CloneNode() node.Node { return h.Clone() }

// SetTitle appends a title to the head. Earlier titles are kept.
func (h *Helmet) SetTitle(text string) *Helmet {
	h.AppendHead(node.Title(text))
	return h
}

// AddLink appends <link rel href ...attrs /> to the head.
func (h *Helmet) AddLink(rel, href string, attrs node.Attrs) *Helmet {
	link := node.Link().Attr("rel", rel).Attr("href", href).Apply(attrs)
	h.AppendHead(link)
	return h
}

func (h *Helmet) AddStylesheet(href string, attrs node.Attrs) *Helmet {
	return h.AddLink("stylesheet", href, attrs)
}

// AddScript appends an external script to the body. An empty typ uses
// node.DefaultScriptType.
func (h *Helmet) AddScript(src, typ string, attrs node.Attrs) *Helmet {
	script := node.Script(typ).Attr("src", src).Apply(attrs)
	h.AppendBody(script)
	return h
}

// AddInlineScript appends a script to the body that immediately invokes
// body with args: (body)(arg1, arg2).
func (h *Helmet) AddInlineScript(body string, attrs node.Attrs, args ...any) *Helmet {
	typ := ""
	if v, ok := attrs.Get("type"); ok && v.Truthy() && !v.IsFlag() {
		typ = v.Text()
	}
	script := node.Script(typ).Attr("charset", "utf-8").Apply(attrs)

	list := make([]string, len(args))
	for i, a := range args {
		list[i] = fmt.Sprint(a)
	}
	script.SetChildren(node.Text("(" + body + ")(" + strings.Join(list, ", ") + ")"))

	h.AppendBody(script)
	return h
}

// SetBody prepends a div to the body. When attrs is not nil they are
// applied to the div and content becomes its children. With nil attrs the
// div stays empty.
func (h *Helmet) SetBody(attrs node.Attrs, content ...node.Node) *Helmet {
	div := node.Div()
	if attrs != nil {
		div.Apply(attrs)
		if len(content) != 0 {
			div.SetChildren(content...)
		}
	}
	h.PrependBody(div)
	return h
}
