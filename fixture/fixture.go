// Package fixture builds selfobj object graphs from YAML descriptions and runs
// checks against them.
//
// A description names every object once under objects. Each object has at
// most one of value, function, or messages, which select its behavior, plus
// optional slots and parents. Slot values are the names of other objects in
// the same description, so graphs may share objects and contain cycles. Slots
// are created in the order they are written.
//
//	objects:
//	  ten: {value: 10}
//	  parent:
//	    slots:
//	      shared: ten
//	  child:
//	    slots:
//	      parent: parent
//	    parents: [parent]
//	checks:
//	  - {op: send, object: child, message: shared, want: "10"}
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
	yaml3 "gopkg.in/yaml.v3"

	"github.com/zephyrtronium/selfobj"
)

// Graph is a set of named objects built from a description, along with the
// checks the description declares.
type Graph struct {
	names   []string
	objects map[string]*selfobj.Object
	// Checks is the list of checks in the description, in order.
	Checks []Check
}

// Object returns the object with the given name.
func (g *Graph) Object(name string) (*selfobj.Object, bool) {
	o, ok := g.objects[name]
	return o, ok
}

// Names returns the names of the objects in the graph in the order they were
// described.
func (g *Graph) Names() []string {
	r := make([]string, len(g.names))
	copy(r, g.names)
	return r
}

// document is the top level of a description.
type document struct {
	Objects map[string]objectDesc `yaml:"objects"`
	Checks  []Check               `yaml:"checks"`
}

// objectDesc describes one object.
type objectDesc struct {
	Value    interface{}       `yaml:"value"`
	Function string            `yaml:"function"`
	Messages *[]string         `yaml:"messages"`
	Slots    map[string]string `yaml:"slots"`
	Parents  []string          `yaml:"parents"`
}

// Load reads a description from r and builds its objects. fns provides the
// functions which objects may name in their function fields.
func Load(r io.Reader, fns map[string]selfobj.Fn) (*Graph, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fixture: error reading description: %w", err)
	}
	var doc document
	if err := yaml.UnmarshalStrict(b, &doc); err != nil {
		return nil, fmt.Errorf("fixture: error decoding description: %w", err)
	}
	l, err := readLayout(b)
	if err != nil {
		return nil, fmt.Errorf("fixture: error decoding description: %w", err)
	}
	g := &Graph{
		names:   make([]string, 0, len(l.objects)),
		objects: make(map[string]*selfobj.Object, len(doc.Objects)),
		Checks:  doc.Checks,
	}
	// Create every object before filling any slots so that slots can refer
	// to objects described later, including in cycles.
	for _, name := range l.objects {
		if l.nullValue[name] {
			return nil, fmt.Errorf("fixture: object %q has null value", name)
		}
		o, err := newObject(name, doc.Objects[name], fns)
		if err != nil {
			return nil, err
		}
		g.names = append(g.names, name)
		g.objects[name] = o
	}
	for _, name := range g.names {
		if err := g.fill(name, doc.Objects[name], l.slots[name]); err != nil {
			return nil, err
		}
	}
	for i := range g.Checks {
		if err := g.Checks[i].validate(g); err != nil {
			return nil, fmt.Errorf("fixture: check %d (%s): %w", i, g.Checks[i].Label(), err)
		}
	}
	return g, nil
}

// LoadFile loads a description from the named file.
func LoadFile(path string, fns map[string]selfobj.Fn) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()
	return Load(f, fns)
}

// LoadBytes loads a description held in memory.
func LoadBytes(b []byte, fns map[string]selfobj.Fn) (*Graph, error) {
	return Load(bytes.NewReader(b), fns)
}

// newObject creates an object with the behavior its description selects, without
// slots.
func newObject(name string, desc objectDesc, fns map[string]selfobj.Fn) (*selfobj.Object, error) {
	n := 0
	if desc.Value != nil {
		n++
	}
	if desc.Function != "" {
		n++
	}
	if desc.Messages != nil {
		n++
	}
	if n > 1 {
		return nil, fmt.Errorf("fixture: object %q has more than one of value, function, and messages", name)
	}
	switch {
	case desc.Value != nil:
		switch desc.Value.(type) {
		case int, int64, uint64, float64, string, bool:
			return selfobj.NewPrimitive(desc.Value), nil
		default:
			return nil, fmt.Errorf("fixture: object %q has non-scalar value %v", name, desc.Value)
		}
	case desc.Function != "":
		f, ok := fns[desc.Function]
		if !ok {
			return nil, fmt.Errorf("fixture: object %q uses unknown function %q", name, desc.Function)
		}
		return selfobj.NewNamedFunction(desc.Function, f), nil
	case desc.Messages != nil:
		return selfobj.NewMessageSequence(*desc.Messages...), nil
	default:
		return selfobj.NewObject(), nil
	}
}

// fill assigns the slots and parent marks of the named object. order lists
// the slot names as they appear in the description.
func (g *Graph) fill(name string, desc objectDesc, order []string) error {
	o := g.objects[name]
	for _, slot := range order {
		ref := desc.Slots[slot]
		if ref == "" {
			return fmt.Errorf("fixture: object %q: slot %q must name an object", name, slot)
		}
		v, ok := g.objects[ref]
		if !ok {
			return fmt.Errorf("fixture: object %q: slot %q refers to unknown object %q", name, slot, ref)
		}
		o.AssignSlot(slot, v)
	}
	for _, p := range desc.Parents {
		o.MakeParent(p)
	}
	return nil
}

// layout is the part of a description that typed decoding loses: the source
// order of objects and slots, and which objects give an explicit null value.
type layout struct {
	objects   []string
	slots     map[string][]string
	nullValue map[string]bool
}

// readLayout walks the node tree of a description. Names are taken from the
// source text of each key, so names like n and on stay strings.
func readLayout(b []byte) (layout, error) {
	l := layout{slots: map[string][]string{}, nullValue: map[string]bool{}}
	var root yaml3.Node
	if err := yaml3.Unmarshal(b, &root); err != nil {
		return l, err
	}
	objs := mappingValue(&root, "objects")
	if objs == nil || objs.Kind != yaml3.MappingNode {
		return l, nil
	}
	for i := 0; i+1 < len(objs.Content); i += 2 {
		name, obj := objs.Content[i].Value, objs.Content[i+1]
		l.objects = append(l.objects, name)
		if v := mappingValue(obj, "value"); v != nil && v.ShortTag() == "!!null" {
			l.nullValue[name] = true
		}
		slots := mappingValue(obj, "slots")
		if slots == nil || slots.Kind != yaml3.MappingNode {
			continue
		}
		for j := 0; j+1 < len(slots.Content); j += 2 {
			l.slots[name] = append(l.slots[name], slots.Content[j].Value)
		}
	}
	return l, nil
}

// mappingValue returns the value node for key in the mapping n, or nil.
func mappingValue(n *yaml3.Node, key string) *yaml3.Node {
	n = resolve(n)
	if n.Kind == yaml3.DocumentNode && len(n.Content) > 0 {
		n = resolve(n.Content[0])
	}
	if n.Kind != yaml3.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolve(n.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml3.Node) *yaml3.Node {
	for n.Kind == yaml3.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
