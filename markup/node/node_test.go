package node

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span() *Element { return New("span") }
func div() *Element  { return New("div") }
func em() *Element   { return New("em") }
func divSelf() *Element {
	d := New("div")
	d.SelfClosing = true
	return d
}

type renderTestcase struct {
	name     string
	node     Node
	expected string
}

func runRenderTests(t *testing.T, tests []renderTestcase) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.Render())
		})
	}
}

func TestTagNames(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"default", New(""), "<div></div>"},
		{"blockquote", New("blockquote"), "<blockquote></blockquote>"},
		{"h5", New("h5"), "<h5></h5>"},
		{"custom element", New("custom-element"), "<custom-element></custom-element>"},
		{"space", New("foo bar"), "<foo-bar></foo-bar>"},
		{"backslash", New(`foo\bar`), "<foo-bar></foo-bar>"},
		{"slash", New("foo/bar"), "<foo-bar></foo-bar>"},
		{"run collapsed", New("foo \t/ bar"), "<foo-bar></foo-bar>"},
		{"only first run", New("a b c"), "<a-b c></a-b c>"},
		{"vertical tab", New("a\vb"), "<a-b></a-b>"},
		{"no-break space", New("a\u00a0b"), "<a-b></a-b>"},
		{"ideographic space", New("a\u3000b"), "<a-b></a-b>"},
		{"byte order mark", New("a\ufeffb"), "<a-b></a-b>"},
		{"line separator", New("a\u2028 b"), "<a-b></a-b>"},
	})
}

func TestTagIsKeptAfterNormalization(t *testing.T) {
	assert.Equal(t, "foo-bar", New("foo/bar").Tag())
}

func TestAttributes(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"single", div().Attr("foo", "bar"), `<div foo="bar"></div>`},
		{"overwrite", div().Attr("foo", "foo").Attr("foo", "bar"), `<div foo="bar"></div>`},
		{"self closing", divSelf().Attr("foo", "bar"), `<div foo="bar" />`},
		{"many", div().Attr("one", "1").SetAttribute("two", Int(2)).SetAttribute("three", Int(3)),
			`<div one="1" two="2" three="3"></div>`},
		{"remove", div().Attr("test", "foobar").SetAttribute("test", None), "<div></div>"},
		{"zero", div().SetAttribute("tabindex", Int(0)), "<div></div>"},
		{"remove helper", div().Attr("test", "foobar").RemoveAttribute("test"), "<div></div>"},
		{"true flag", div().SetAttribute("foo", True), "<div foo></div>"},
		{"flag helper", div().Flag("async"), "<div async></div>"},
		{"false flag", div().SetAttribute("foo", Bool(false)), "<div></div>"},
		{"empty string", div().Attr("foo", ""), "<div></div>"},
		{"no escaping", div().Attr("title", `a"b<c>`), `<div title="a"b<c>"></div>`},
	})
}

func TestAttributeOrder(t *testing.T) {
	e := div().Attr("a", "1").Attr("b", "2").Attr("c", "3")
	e.Attr("a", "4")
	assert.Equal(t, []string{"a", "b", "c"}, e.AttributeNames())

	e.RemoveAttribute("a").Attr("a", "5")
	assert.Equal(t, []string{"b", "c", "a"}, e.AttributeNames())
	assert.Equal(t, `<div b="2" c="3" a="5"></div>`, e.Render())

	v, ok := e.Attribute("a")
	require.True(t, ok)
	assert.Equal(t, "5", v.Text())

	_, ok = e.Attribute("missing")
	assert.False(t, ok)
}

func TestFalsyAttributeIsStoredButNotRendered(t *testing.T) {
	e := div().SetAttribute("hidden", Bool(false))
	v, ok := e.Attribute("hidden")
	require.True(t, ok)
	assert.False(t, v.Truthy())
	assert.Equal(t, "<div></div>", e.Render())
}

func TestApply(t *testing.T) {
	e := div().Apply(Attrs{A("id", "demo"), A("data-target", "foo"), F("hidden")})
	assert.Equal(t, `<div id="demo" data-target="foo" hidden></div>`, e.Render())

	assert.Equal(t, "<div></div>", div().Apply(nil).Render())
}

func TestSetChildren(t *testing.T) {
	sec := divSelf()
	closedInSelf := div().SetChildren(divSelf())
	closedInSelf.SelfClosing = true
	openInSelf := div().SetChildren(div())
	openInSelf.SelfClosing = true

	runRenderTests(t, []renderTestcase{
		{"open with open child", div().SetChildren(div()), "<div><div></div></div>"},
		{"self closing with open child", openInSelf, "<div><div></div></div>"},
		{"self closing with closed child", closedInSelf, "<div><div /></div>"},
		{"open with closed child", div().SetChildren(sec), "<div><div /></div>"},
		{"overwrite", div().SetChildren(div()).SetChildren(span(), span()), "<div><span></span><span></span></div>"},
		{"text", div().SetChildren(Text("foo"), span(), Text("bar")), "<div>foo<span></span>bar</div>"},
	})
}

func TestAppendChildren(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"to empty", div().AppendChildren(div()), "<div><div></div></div>"},
		{"after set", div().SetChildren(div()).AppendChildren(span()), "<div><div></div><span></span></div>"},
		{"after append", div().AppendChildren(div()).AppendChildren(span()), "<div><div></div><span></span></div>"},
		{"many", div().AppendChildren(div(), span(), divSelf()), "<div><div></div><span></span><div /></div>"},
		{"after append and set", div().AppendChildren(div()).SetChildren(span()).AppendChildren(span(), span()),
			"<div><span></span><span></span><span></span></div>"},
	})
}

func TestPrependChildren(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"to empty", div().PrependChildren(div()), "<div><div></div></div>"},
		{"after set", div().SetChildren(div()).PrependChildren(span()), "<div><span></span><div></div></div>"},
		{"after prepend", div().PrependChildren(div()).PrependChildren(span()), "<div><span></span><div></div></div>"},
		{"many", div().PrependChildren(div(), span(), divSelf()), "<div><div></div><span></span><div /></div>"},
		{"many after set", div().PrependChildren(div()).SetChildren(div()).PrependChildren(span(), em()),
			"<div><span></span><em></em><div></div></div>"},
		{"with append", div().SetChildren(div()).PrependChildren(span()).AppendChildren(em()),
			"<div><span></span><div></div><em></em></div>"},
	})
}

func TestSelfClosingWithChildrenRendersPair(t *testing.T) {
	e := divSelf().Attr("a", "b")
	assert.Equal(t, `<div a="b" />`, e.Render())

	e.AppendChildren(Text("x"))
	assert.Equal(t, `<div a="b">x</div>`, e.Render())
}

func TestAddClass(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"new", div().AddClass("foo"), `<div class="foo"></div>`},
		{"space separated", div().AddClass("foo bar"), `<div class="foo bar"></div>`},
		{"list", div().AddClass("foo", "bar"), `<div class="foo bar"></div>`},
		{"existing", div().Attr("class", "bar").AddClass("foo"), `<div class="bar foo"></div>`},
		{"chained", div().AddClass("a").AddClass("b"), `<div class="a b"></div>`},
		{"not unique", div().AddClass("foo").AddClass("foo"), `<div class="foo foo"></div>`},
		{"falsy existing", div().Attr("class", "").AddClass("foo"), `<div class="foo"></div>`},
	})
}

func TestSetID(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"set", div().SetID("foo"), `<div id="foo"></div>`},
		{"overwrite", div().SetID("foo").SetID("bar"), `<div id="bar"></div>`},
		{"unset", div().SetID("foo").SetID(""), "<div></div>"},
		{"unset missing", div().SetID(""), "<div></div>"},
	})
}

func TestFactories(t *testing.T) {
	runRenderTests(t, []renderTestcase{
		{"div", Div(), "<div></div>"},
		{"h default", H(0), "<h1></h1>"},
		{"h5", H(5), "<h5></h5>"},
		{"title empty", Title(), "<title></title>"},
		{"title", Title("example value"), "<title>example value</title>"},
		{"title joined", Title("foo", "bar"), "<title>foo bar</title>"},
		{"script", Script(""), `<script type="application/javascript"></script>`},
		{"script typed", Script("foo/bar"), `<script type="foo/bar"></script>`},
		{"link", Link(), "<link />"},
		{"generic", New("footer"), "<footer></footer>"},
	})
}

func TestCollectionInElement(t *testing.T) {
	c := Collection{NewMeta("first", "f1"), NewMeta("second", "s2")}
	r := New("head").AppendChildren(c)
	assert.Equal(t, `<head><meta name="first" content="f1" /><meta name="second" content="s2" /></head>`, r.Render())
	assert.Equal(t, c.Render(), c.String())
}

func TestNilChildrenAreSkipped(t *testing.T) {
	var missing *Element
	e := div().AppendChildren(nil, missing, span())
	assert.Equal(t, "<div><span></span></div>", e.Render())
	assert.Equal(t, "", Collection{nil, Text("")}.Render())
}

func TestInsertMovesElement(t *testing.T) {
	child := span()
	first := div().AppendChildren(child)
	second := New("section").AppendChildren(child)

	assert.Equal(t, "<div></div>", first.Render())
	assert.Equal(t, "<section><span></span></section>", second.Render())
	assert.Same(t, second, child.Parent())
}

func TestReinsertMovesToNewPosition(t *testing.T) {
	a, b := span(), em()
	e := div().AppendChildren(a, b).AppendChildren(a)
	assert.Equal(t, "<div><em></em><span></span></div>", e.Render())

	e.PrependChildren(a)
	assert.Equal(t, "<div><span></span><em></em></div>", e.Render())

	e = div().AppendChildren(a, b, a)
	assert.Equal(t, "<div><em></em><span></span></div>", e.Render())
}

func TestCyclesAreRejected(t *testing.T) {
	outer := div()
	inner := span()
	outer.AppendChildren(inner)

	inner.AppendChildren(outer)
	outer.AppendChildren(outer)

	assert.Equal(t, "<div><span></span></div>", outer.Render())
	assert.Nil(t, outer.Parent())
}

func TestCollectionsAreSpliced(t *testing.T) {
	e := div()
	e.AppendChildren(Collection{e})
	e.AppendChildren(Collection{Text("a"), Collection{e, span()}})
	assert.Equal(t, "<div>a<span></span></div>", e.Render())
	assert.Len(t, e.Children(), 2)

	inner := span()
	outer := div().AppendChildren(inner)
	inner.PrependChildren(Collection{em(), outer})
	assert.Equal(t, "<div><span><em></em></span></div>", outer.Render())
}

func TestCollectionItemsHaveOneParent(t *testing.T) {
	child := span()
	c := Collection{child}
	first := div().AppendChildren(c)
	assert.Same(t, first, child.Parent())

	second := New("section").AppendChildren(c)
	assert.Same(t, second, child.Parent())
	assert.Equal(t, "<div></div>", first.Render())
	assert.Equal(t, "<section><span></span></section>", second.Render())
}

func TestSetChildrenReleasesOldChildren(t *testing.T) {
	old := span()
	e := div().AppendChildren(old)
	e.SetChildren(em())
	assert.Nil(t, old.Parent())

	other := div().AppendChildren(old)
	assert.Equal(t, "<div><em></em></div>", e.Render())
	assert.Equal(t, "<div><span></span></div>", other.Render())
}

func TestClone(t *testing.T) {
	orig := div().Attr("id", "a").AppendChildren(span().AddClass("x"), Text("t"), NewMeta("m", "c"))
	orig.SelfClosing = true
	parent := New("body").AppendChildren(orig)

	c := orig.Clone()
	assert.Nil(t, c.Parent())
	assert.Same(t, parent, orig.Parent())
	assert.Equal(t, orig.Render(), c.Render())

	c.Attr("id", "b")
	c.Children()[0].(*Element).AddClass("y")
	assert.Equal(t, `<div id="a"><span class="x"></span>t<meta name="m" content="c" /></div>`, orig.Render())
	assert.Equal(t, `<div id="b"><span class="x y"></span>t<meta name="m" content="c" /></div>`, c.Render())
}

func TestChildrenIsCopy(t *testing.T) {
	e := div().AppendChildren(span())
	kids := e.Children()
	kids[0] = em()
	assert.Equal(t, "<div><span></span></div>", e.Render())
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	e := div().Attr("id", "x")
	n, err := e.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(`<div id="x"></div>`)), n)
	assert.Equal(t, `<div id="x"></div>`, buf.String())
	assert.Equal(t, buf.String(), e.String())
}
