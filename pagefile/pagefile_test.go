package pagefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/helmet/markup/node"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		err      bool
	}{
		{"a.yaml", YAML, false},
		{"a.YML", YAML, false},
		{"dir/a.toml", TOML, false},
		{"a.json", "", true},
		{"a", "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			f, err := FormatOf(tt.path)
			if tt.err {
				assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestRenderYAML(t *testing.T) {
	out, err := Render("testdata/page.yaml")
	require.NoError(t, err)

	expected := `<!DOCTYPE HTML><html lang="en" class="theme-dark"><head>` +
		`<meta charset="utf-8" />` +
		`<meta name="viewport" content="width=device-width, initial-scale=1" />` +
		`<meta http-equiv="refresh" content="30" />` +
		`<title>Example</title>` +
		`<link rel="icon" href="/favicon.ico" type="image/png" sizes="32x32" />` +
		`<link rel="stylesheet" href="/app.css" />` +
		`</head><body>` +
		`<div id="app"><h1 class="title big">Hello</h1><img src="/a.png" alt="logo" /><ul><li>one</li><li>two</li></ul></div>` +
		`<script type="module" src="/app.js" defer></script>` +
		`<script type="application/javascript" charset="utf-8">(function(a,b){return a+b})(1, 2)</script>` +
		`</body></html>`
	assert.Equal(t, expected, out)
}

func TestRenderTOML(t *testing.T) {
	out, err := Render("testdata/page.toml")
	require.NoError(t, err)

	expected := `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">` +
		`<html lang="en"><head><meta charset="utf-8" /><title>Example</title>` +
		`<link rel="stylesheet" href="/app.css" crossorigin media="screen" />` +
		`</head><body><div id="app"><p>Hello</p><br /></div>` +
		`<script type="application/javascript" src="/app.js"></script></body></html>`
	assert.Equal(t, expected, out)
}

func TestAttributesKeepYAMLOrder(t *testing.T) {
	p, err := Parse([]byte("body:\n  attrs: {z: '1', a: '2', m: null, flag: true}\n"), YAML)
	require.NoError(t, err)
	require.NotNil(t, p.Body)

	names := make([]string, 0, len(p.Body.Attrs))
	for _, a := range p.Body.Attrs {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"z", "a", "m", "flag"}, names)
	assert.True(t, p.Body.Attrs[2].Value.IsAbsent())
	assert.True(t, p.Body.Attrs[3].Value.IsFlag())
}

func TestAttributesMustBeMapping(t *testing.T) {
	_, err := Parse([]byte("links:\n  - rel: icon\n    attrs: [a, b]\n"), YAML)
	assert.Error(t, err)

	_, err = Parse([]byte("links:\n  - rel: icon\n    attrs: {a: [1]}\n"), YAML)
	assert.Error(t, err)
}

func TestEmptyPage(t *testing.T) {
	p, err := Parse([]byte(""), YAML)
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE HTML><html><head></head><body></body></html>", p.Build().Render())
}

func TestBodyWithoutAttrsKeepsContent(t *testing.T) {
	p, err := Parse([]byte("body:\n  content:\n    - {tag: main, text: hi}\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE HTML><html><head></head><body><div><main>hi</main></div></body></html>", p.Build().Render())
}

func TestElementBuild(t *testing.T) {
	e := Element{
		Tag:   "section",
		ID:    "s",
		Class: []string{"a", "b"},
		Attrs: Attributes{node.A("role", "main")},
		Text:  "intro",
		Children: []Element{
			{Tag: "hr", SelfClosing: true},
		},
	}
	assert.Equal(t, `<section id="s" class="a b" role="main">intro<hr /></section>`, e.Build().Render())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/broken.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("title = "), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	_, err = Parse(nil, Format("json"))
	assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
}
