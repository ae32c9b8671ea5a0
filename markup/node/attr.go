package node

import "strconv"

type valueKind uint8

const (
	absentValue valueKind = iota
	flagValue
	stringValue
	numberValue
)

// Value is an attribute value: absent, a boolean flag, a string or a number.
type Value struct {
	kind valueKind
	flag bool
	str  string
}

// None is the absent value. Setting an attribute to None removes it.
var None = Value{}

// True renders the attribute as a bare name.
var True = Bool(true)

func Bool(b bool) Value     { return Value{kind: flagValue, flag: b} }
func String(s string) Value { return Value{kind: stringValue, str: s} }

// Int renders as its decimal form. Zero, like false, is not rendered.
func Int(n int) Value { return Value{kind: numberValue, flag: n != 0, str: strconv.Itoa(n)} }

// IsAbsent reports whether v is None.
func (v Value) IsAbsent() bool { return v.kind == absentValue }

// Truthy reports whether the attribute is rendered at all. Absent values,
// false flags, zero and empty strings are skipped.
func (v Value) Truthy() bool {
	switch v.kind {
	case flagValue, numberValue:
		return v.flag
	case stringValue:
		return v.str != ""
	}
	return false
}

// IsFlag reports whether v is the boolean true, which renders without a value.
func (v Value) IsFlag() bool { return v.kind == flagValue && v.flag }

// Text returns the string form of v: the string itself, "true"/"false" for
// flags and "" for None.
func (v Value) Text() string {
	switch v.kind {
	case flagValue:
		return strconv.FormatBool(v.flag)
	case stringValue, numberValue:
		return v.str
	}
	return ""
}

// Attr is a single name/value pair.
type Attr struct {
	Name  string
	Value Value
}

// A returns a string-valued attribute.
func A(name, value string) Attr { return Attr{Name: name, Value: String(value)} }

// F returns a flag attribute that renders as a bare name.
func F(name string) Attr { return Attr{Name: name, Value: True} }

// Attrs is an ordered attribute list. A nil Attrs means "no attributes
// given", which some helpers treat differently from an empty list.
type Attrs []Attr

// Get returns the last value set for name in the list.
func (a Attrs) Get(name string) (Value, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return None, false
}

// ApplyTo sets each attribute on e in list order.
func (a Attrs) ApplyTo(e *Element) {
	for _, attr := range a {
		e.SetAttribute(attr.Name, attr.Value)
	}
}

// namedNodeMap keeps attributes in insertion order. Overwriting a key keeps
// its position; removing and re-adding it moves it to the end.
type namedNodeMap struct {
	names  []string
	values map[string]Value
}

func newNamedNodeMap() *namedNodeMap {
	return &namedNodeMap{values: make(map[string]Value)}
}

func (n *namedNodeMap) getNamedItem(name string) (Value, bool) {
	v, ok := n.values[name]
	return v, ok
}

func (n *namedNodeMap) setNamedItem(name string, v Value) {
	if v.IsAbsent() {
		n.removeNamedItem(name)
		return
	}
	if _, ok := n.values[name]; !ok {
		n.names = append(n.names, name)
	}
	n.values[name] = v
}

func (n *namedNodeMap) removeNamedItem(name string) {
	if _, ok := n.values[name]; !ok {
		return
	}
	delete(n.values, name)
	for i, k := range n.names {
		if k == name {
			n.names = append(n.names[:i], n.names[i+1:]...)
			break
		}
	}
}

func (n *namedNodeMap) clone() *namedNodeMap {
	c := &namedNodeMap{
		names:  make([]string, len(n.names)),
		values: make(map[string]Value, len(n.values)),
	}
	copy(c.names, n.names)
	for k, v := range n.values {
		c.values[k] = v
	}
	return c
}
