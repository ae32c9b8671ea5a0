package node

import (
	"strconv"
	"strings"
)

// DefaultScriptType is the type given to scripts that do not name one.
const DefaultScriptType = "application/javascript"

func Div() *Element { return New("div") }

// H creates a heading element. Levels below 1 create an h1.
func H(level int) *Element {
	if level < 1 {
		level = 1
	}
	return New("h" + strconv.Itoa(level))
}

// Title creates a title element holding the space-joined text.
func Title(text ...string) *Element {
	return New("title").SetChildren(Text(strings.Join(text, " ")))
}

// Script creates a script element with the given type, or
// DefaultScriptType when typ is empty.
func Script(typ string) *Element {
	if typ == "" {
		typ = DefaultScriptType
	}
	return New("script").Attr("type", typ)
}

// Link creates a self-closing link element.
func Link() *Element {
	l := New("link")
	l.SelfClosing = true
	return l
}
