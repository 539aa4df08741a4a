package catalog

import (
	"sort"

	"github.com/katalvlaran/hookwire/graph"
)

// namedType is a DataType with name-equality compatibility plus an
// optional allow-list of additional compatible names.
type namedType struct {
	name   string
	compat map[string]struct{}
}

// NewDataType returns a DataType identified by name. Two values are
// compatible when their names are equal; alsoCompatible widens the
// receiving side (a port of this type additionally accepts outputs of
// the listed names).
func NewDataType(name string, alsoCompatible ...string) graph.DataType {
	t := namedType{name: name}
	if len(alsoCompatible) > 0 {
		t.compat = make(map[string]struct{}, len(alsoCompatible))
		for _, n := range alsoCompatible {
			t.compat[n] = struct{}{}
		}
	}

	return t
}

// Name implements graph.DataType.
func (t namedType) Name() string { return t.name }

// CompatibleWith implements graph.DataType.
func (t namedType) CompatibleWith(other graph.DataType) bool {
	if other == nil {
		return false
	}
	if t.name == other.Name() {
		return true
	}
	if nt, ok := other.(namedType); ok {
		if _, ok := nt.compat[t.name]; ok {
			return true
		}
	}

	return false
}

// Template describes one kind of node the finder can create: its
// label, its finder categories, and how to populate a new node with
// ports.
type Template interface {
	// Label is the node's display label and the finder entry name.
	Label() string

	// Categories groups the template in the finder. Empty means
	// uncategorized.
	Categories() []string

	// Build populates a freshly inserted node with its ports.
	Build(n *graph.Node)
}

// funcTemplate adapts plain values and a build function to Template.
type funcTemplate struct {
	label      string
	categories []string
	build      func(*graph.Node)
}

// NewTemplate builds a Template from a label, categories, and a build
// function.
func NewTemplate(label string, categories []string, build func(*graph.Node)) Template {
	return &funcTemplate{label: label, categories: categories, build: build}
}

func (t *funcTemplate) Label() string        { return t.label }
func (t *funcTemplate) Categories() []string { return t.categories }
func (t *funcTemplate) Build(n *graph.Node) {
	if t.build != nil {
		t.build(n)
	}
}

// Registry is the ordered collection of node templates the finder
// enumerates.
type Registry struct {
	templates []Template
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Register appends a template. Registration order is preserved by All.
func (r *Registry) Register(t Template) {
	r.templates = append(r.templates, t)
}

// All returns every template in registration order.
func (r *Registry) All() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)

	return out
}

// Categories returns the sorted set of category names in use.
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	for _, t := range r.templates {
		for _, c := range t.Categories() {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// ByCategory returns the templates of one category in registration
// order.
func (r *Registry) ByCategory(name string) []Template {
	var out []Template
	for _, t := range r.templates {
		for _, c := range t.Categories() {
			if c == name {
				out = append(out, t)
				break
			}
		}
	}

	return out
}

// Spawn inserts a node built from the template into g and returns its
// id.
func (r *Registry) Spawn(g *graph.Graph, t Template) graph.NodeID {
	return g.AddNode(t.Label(), nil, t.Build)
}
