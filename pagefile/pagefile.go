// Package pagefile describes a page declaratively in YAML or TOML and
// builds it with the markup helpers.
package pagefile

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/helmet/markup"
	"github.com/heathj/helmet/markup/node"
)

var log = logrus.WithField("pkg", "pagefile")

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown page file format")

type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Extensions lists the file extensions Load understands, in lookup order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// Page is the top level of a page file.
type Page struct {
	Doctype       string         `yaml:"doctype"`
	Lang          string         `yaml:"lang"`
	Namespace     string         `yaml:"namespace"`
	Class         []string       `yaml:"class"`
	Title         string         `yaml:"title"`
	Meta          []Meta         `yaml:"meta"`
	Links         []Link         `yaml:"links"`
	Stylesheets   []Stylesheet   `yaml:"stylesheets"`
	Scripts       []Script       `yaml:"scripts"`
	InlineScripts []InlineScript `yaml:"inline_scripts"`
	Body          *Body          `yaml:"body"`
}

type Meta struct {
	Name      string `yaml:"name"`
	Content   string `yaml:"content"`
	HTTPEquiv string `yaml:"http_equiv"`
}

type Link struct {
	Rel   string     `yaml:"rel"`
	Href  string     `yaml:"href"`
	Attrs Attributes `yaml:"attrs"`
}

type Stylesheet struct {
	Href  string     `yaml:"href"`
	Attrs Attributes `yaml:"attrs"`
}

type Script struct {
	Src   string     `yaml:"src"`
	Type  string     `yaml:"type"`
	Attrs Attributes `yaml:"attrs"`
}

type InlineScript struct {
	Body  string     `yaml:"body"`
	Args  []string   `yaml:"args"`
	Attrs Attributes `yaml:"attrs"`
}

// Body is the container div placed first in the page body.
type Body struct {
	Attrs   Attributes `yaml:"attrs"`
	Content []Element  `yaml:"content"`
}

// Element is one node of the body tree. Text comes before Children.
type Element struct {
	Tag         string     `yaml:"tag"`
	ID          string     `yaml:"id"`
	Class       []string   `yaml:"class"`
	Attrs       Attributes `yaml:"attrs"`
	SelfClosing bool       `yaml:"self_closing"`
	Text        string     `yaml:"text"`
	Children    []Element  `yaml:"children"`
}

// Load reads and decodes the page file at path.
func Load(path string) (*Page, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read page file")
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	log.WithFields(logrus.Fields{
		"path":    path,
		"format":  format,
		"scripts": len(p.Scripts) + len(p.InlineScripts),
	}).Debug("page file loaded")
	return p, nil
}

// Parse decodes a page description. TOML tables are applied in sorted key
// order since TOML does not keep one.
func Parse(data []byte, format Format) (*Page, error) {
	switch format {
	case YAML:
	case TOML:
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "failed to parse TOML")
		}
		var err error
		if data, err = yaml.Marshal(raw); err != nil {
			return nil, errors.Wrap(err, "failed to convert TOML")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to parse page")
	}
	return &p, nil
}

// Build assembles the page. An empty doctype means HTML5.
func (p *Page) Build() *markup.Helmet {
	h := markup.Page()
	if p.Doctype != "" {
		h.SetDoctype(markup.Doctype(p.Doctype))
	}
	if p.Lang != "" {
		h.SetLanguage(p.Lang)
	}
	if p.Namespace != "" {
		h.SetNamespace(p.Namespace)
	}
	if len(p.Class) != 0 {
		h.AddClass(p.Class...)
	}

	var metas node.Collection
	for _, m := range p.Meta {
		if m.HTTPEquiv != "" {
			metas = append(metas, node.HTTPEquiv(m.HTTPEquiv, m.Content))
			continue
		}
		metas = append(metas, node.MetaMap(node.Pair{Name: m.Name, Content: m.Content})...)
	}
	if len(metas) != 0 {
		h.AppendHead(metas)
	}
	if p.Title != "" {
		h.SetTitle(p.Title)
	}
	for _, l := range p.Links {
		h.AddLink(l.Rel, l.Href, l.Attrs.Attrs())
	}
	for _, s := range p.Stylesheets {
		h.AddStylesheet(s.Href, s.Attrs.Attrs())
	}

	if p.Body != nil {
		attrs := p.Body.Attrs.Attrs()
		if attrs == nil {
			attrs = node.Attrs{}
		}
		content := make([]node.Node, 0, len(p.Body.Content))
		for _, e := range p.Body.Content {
			content = append(content, e.Build())
		}
		h.SetBody(attrs, content...)
	}

	for _, s := range p.Scripts {
		h.AddScript(s.Src, s.Type, s.Attrs.Attrs())
	}
	for _, s := range p.InlineScripts {
		args := make([]any, len(s.Args))
		for i, a := range s.Args {
			args[i] = a
		}
		h.AddInlineScript(s.Body, s.Attrs.Attrs(), args...)
	}
	return h
}

// Build creates the element and its subtree.
func (e Element) Build() *node.Element {
	el := node.New(e.Tag)
	el.SelfClosing = e.SelfClosing
	if e.ID != "" {
		el.SetID(e.ID)
	}
	if len(e.Class) != 0 {
		el.AddClass(e.Class...)
	}
	el.Apply(e.Attrs.Attrs())
	if e.Text != "" {
		el.AppendChildren(node.Text(e.Text))
	}
	for _, c := range e.Children {
		el.AppendChildren(c.Build())
	}
	return el
}

// Render loads the page file at path and renders it.
func Render(path string) (string, error) {
	p, err := Load(path)
	if err != nil {
		return "", err
	}
	return p.Build().Render(), nil
}
