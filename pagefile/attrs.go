package pagefile

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/heathj/helmet/markup/node"
)

// Attributes is an attribute table from a page file. YAML tables keep
// their document order.
type Attributes []node.Attr

// UnmarshalYAML reads a mapping of scalars. Booleans become flags, null
// becomes node.None and everything else is taken as a string.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: attributes must be a mapping", value.Line)
	}
	attrs := make(Attributes, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		switch v.Tag {
		case "!!bool":
			var b bool
			if err := v.Decode(&b); err != nil {
				return errors.Wrapf(err, "attribute %q", k.Value)
			}
			attrs = append(attrs, node.Attr{Name: k.Value, Value: node.Bool(b)})
		case "!!null":
			attrs = append(attrs, node.Attr{Name: k.Value, Value: node.None})
		default:
			attrs = append(attrs, node.A(k.Value, v.Value))
		}
	}
	*a = attrs
	return nil
}

// Attrs converts a to the builder's attribute list, keeping nil as nil.
func (a Attributes) Attrs() node.Attrs {
	if a == nil {
		return nil
	}
	return node.Attrs(a)
}
