package willowui

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateNode is one declarative widget description: a kind, an optional
// ID, scalar fields and child nodes. Field values are kept as strings and
// interpreted by the loader and the kind's Configure hook.
type TemplateNode struct {
	Type       string
	ID         string
	Fields     map[string]string
	FieldOrder []string
	Children   []*TemplateNode
	Line       int
}

func (n *TemplateNode) label() string {
	if n.ID == "" {
		return n.Type
	}
	return n.ID
}

// Templates is a set of top-level templates addressable by ID.
type Templates struct {
	byID map[string]*TemplateNode
}

// NewTemplates returns an empty template set.
func NewTemplates() *Templates {
	return &Templates{byID: make(map[string]*TemplateNode)}
}

// ParseTemplates parses YAML template data. The document is a mapping of
// "Type@ID" keys to field mappings; a Children field holds a sequence of
// nested "Type@ID" mappings. Top-level templates must have an ID.
//
//	Container@MAIN_MENU:
//	  Width: 300
//	  Height: 200
//	  X: (WINDOW_RIGHT - WIDTH) / 2
//	  Children:
//	    - Button@QUIT:
//	        Text: Quit
func ParseTemplates(data []byte) (*Templates, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	t := NewTemplates()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return t, nil
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: templates must be a mapping", top.Line)
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		n, err := parseTemplateNode(top.Content[i], top.Content[i+1])
		if err != nil {
			return nil, err
		}
		if n.ID == "" {
			return nil, fmt.Errorf("line %d: top-level template %s needs an ID", n.Line, n.Type)
		}
		if err := t.Add(n); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadTemplateFiles parses and merges template files in order.
func LoadTemplateFiles(paths ...string) (*Templates, error) {
	t := NewTemplates()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		parsed, err := ParseTemplates(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := t.Merge(parsed); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return t, nil
}

func parseTemplateNode(key, value *yaml.Node) (*TemplateNode, error) {
	if key.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: template key must be a scalar", key.Line)
	}
	typ, id, _ := strings.Cut(key.Value, "@")
	if typ == "" {
		return nil, fmt.Errorf("line %d: template %q has no type", key.Line, key.Value)
	}
	n := &TemplateNode{Type: typ, ID: id, Fields: map[string]string{}, Line: key.Line}
	switch value.Kind {
	case yaml.MappingNode:
	case yaml.ScalarNode:
		if value.Value != "" && value.Tag != "!!null" {
			return nil, fmt.Errorf("line %d: %s must be a mapping", value.Line, key.Value)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("line %d: %s must be a mapping", value.Line, key.Value)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		fk, fv := value.Content[i], value.Content[i+1]
		if fk.Value == "Children" {
			children, err := parseChildren(fv)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, children...)
			continue
		}
		if fv.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field %s of %s must be a scalar", fv.Line, fk.Value, key.Value)
		}
		if _, dup := n.Fields[fk.Value]; dup {
			return nil, fmt.Errorf("line %d: duplicate field %s in %s", fk.Line, fk.Value, key.Value)
		}
		n.Fields[fk.Value] = fv.Value
		n.FieldOrder = append(n.FieldOrder, fk.Value)
	}
	return n, nil
}

func parseChildren(v *yaml.Node) ([]*TemplateNode, error) {
	var out []*TemplateNode
	switch v.Kind {
	case yaml.SequenceNode:
		for _, item := range v.Content {
			if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
				return nil, fmt.Errorf("line %d: each child must be a single Type@ID mapping", item.Line)
			}
			n, err := parseTemplateNode(item.Content[0], item.Content[1])
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(v.Content); i += 2 {
			n, err := parseTemplateNode(v.Content[i], v.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	default:
		return nil, fmt.Errorf("line %d: Children must be a sequence", v.Line)
	}
	return out, nil
}

// Add registers a top-level template. Duplicate IDs are an error.
func (t *Templates) Add(n *TemplateNode) error {
	if _, dup := t.byID[n.ID]; dup {
		return fmt.Errorf("line %d: duplicate template %s", n.Line, n.ID)
	}
	t.byID[n.ID] = n
	return nil
}

// Merge adds every template of o.
func (t *Templates) Merge(o *Templates) error {
	var errs []error
	for _, id := range o.IDs() {
		if err := t.Add(o.byID[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the template with the given ID.
func (t *Templates) Lookup(id string) (*TemplateNode, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// IDs returns the template IDs, sorted.
func (t *Templates) IDs() []string {
	ids := make([]string, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// buildNode constructs n and its subtree. Each widget is initialized
// against parent before its own children are built and appended, so
// layout containers see resolved child bounds.
func (ui *Context) buildNode(n *TemplateNode, parent *Widget, subs Vars, path string) (*Widget, error) {
	w, err := ui.registry.New(n.Type)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	w.ID = n.ID

	f := newFields(n.Fields, n.FieldOrder)
	if missing := f.missing(ui.registry.required(n.Type)); len(missing) > 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))}
	}
	f.Expr("X", &w.X)
	f.Expr("Y", &w.Y)
	f.Expr("Width", &w.Width)
	f.Expr("Height", &w.Height)
	f.Bool("Visible", &w.Visible)
	f.Bool("IgnoreMouseOver", &w.IgnoreMouseOver)
	f.Bool("IgnoreChildMouseOver", &w.IgnoreChildMouseOver)
	f.Bool("ClickThrough", &w.ClickThrough)
	if c, ok := w.behavior.(Configurer); ok {
		err = c.Configure(f)
	} else {
		err = f.Err()
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if unused := f.unused(); len(unused) > 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unused, ", "))}
	}

	w.Parent = parent
	err = w.Initialize(ui, subs)
	w.Parent = nil
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	for _, cn := range n.Children {
		child, err := ui.buildNode(cn, w, subs, path+"/"+cn.label())
		if err != nil {
			return nil, err
		}
		w.AddChild(child)
	}
	return w, nil
}
