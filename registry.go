package willowui

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
)

// Factory creates a fresh widget of one kind with default settings.
type Factory func() *Widget

type kindEntry struct {
	factory  Factory
	required []string
}

// Registry maps template type names to widget factories.
type Registry struct {
	kinds map[string]kindEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]kindEntry)}
}

// DefaultRegistry returns a registry with every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("Container", func() *Widget { return NewContainer("") })
	r.Register("Background", func() *Widget { return NewBackground("").Widget })
	r.Register("Label", func() *Widget { return NewLabel("", "").Widget })
	r.Register("Button", func() *Widget { return NewButton("", "").Widget })
	r.Register("DropDownButton", func() *Widget { return NewDropDownButton("", "").Widget })
	r.Register("TextField", func() *Widget { return NewTextField("").Widget })
	r.Register("ScrollPanel", func() *Widget { return NewScrollPanel("").Widget })
	r.Register("SpacingContainer", func() *Widget { return NewSpacingContainer("").Widget })
	r.Register("TooltipContainer", func() *Widget { return NewTooltipContainer("").Widget })
	r.Register("Mask", func() *Widget { return NewMask().Widget })
	return r
}

// Register adds or replaces a kind. required lists template fields the
// kind cannot be loaded without.
func (r *Registry) Register(name string, f Factory, required ...string) {
	r.kinds[name] = kindEntry{factory: f, required: required}
}

// New creates a widget of the named kind.
func (r *Registry) New(name string) (*Widget, error) {
	e, ok := r.kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWidgetType, name)
	}
	w := e.factory()
	w.Kind = name
	return w, nil
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) required(name string) []string {
	return r.kinds[name].required
}

// Fields is the set of scalar template fields for one widget. Each accessor
// marks the field as consumed; fields left unconsumed after loading are
// reported as unknown. Parse failures are collected and returned by Err.
type Fields struct {
	values map[string]string
	order  []string
	used   map[string]bool
	errs   []error
}

func newFields(values map[string]string, order []string) *Fields {
	return &Fields{values: values, order: order, used: make(map[string]bool, len(values))}
}

// Has reports whether the field is present without consuming it.
func (f *Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Lookup returns the raw value of a field.
func (f *Fields) Lookup(name string) (string, bool) {
	v, ok := f.values[name]
	if ok {
		f.used[name] = true
	}
	return v, ok
}

// String stores a field into dst. It reports whether the field was present.
func (f *Fields) String(name string, dst *string) bool {
	v, ok := f.Lookup(name)
	if ok {
		*dst = v
	}
	return ok
}

// Int stores an integer field into dst.
func (f *Fields) Int(name string, dst *int) bool {
	v, ok := f.Lookup(name)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f.Fail(name, err)
		return false
	}
	*dst = n
	return true
}

// Bool stores a boolean field into dst.
func (f *Fields) Bool(name string, dst *bool) bool {
	v, ok := f.Lookup(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		f.Fail(name, err)
		return false
	}
	*dst = b
	return true
}

// Expr stores a bounds expression field into dst.
func (f *Fields) Expr(name string, dst *Expr) bool {
	v, ok := f.Lookup(name)
	if !ok {
		return false
	}
	e, err := ParseExpr(v)
	if err != nil {
		f.Fail(name, err)
		return false
	}
	*dst = e
	return true
}

// Align stores a Left, Center or Right field into dst.
func (f *Fields) Align(name string, dst *TextAlign) bool {
	v, ok := f.Lookup(name)
	if !ok {
		return false
	}
	a, ok := parseAlign(v)
	if !ok {
		f.Fail(name, errBadChoice("Left, Center or Right", v))
		return false
	}
	*dst = a
	return true
}

// Key stores a key name field into dst.
func (f *Fields) Key(name string, dst *Key) bool {
	v, ok := f.Lookup(name)
	if !ok {
		return false
	}
	k, err := ParseKey(v)
	if err != nil {
		f.Fail(name, err)
		return false
	}
	*dst = k
	return true
}

// Fail records an invalid field value.
func (f *Fields) Fail(name string, err error) {
	f.errs = append(f.errs, fmt.Errorf("field %s: %w", name, err))
}

// Err returns the collected field errors, or nil.
func (f *Fields) Err() error {
	return errors.Join(f.errs...)
}

// unused returns present fields nothing consumed, in template order.
func (f *Fields) unused() []string {
	var out []string
	for _, name := range f.order {
		if !f.used[name] {
			out = append(out, name)
		}
	}
	return out
}

func (f *Fields) missing(required []string) []string {
	var out []string
	for _, name := range required {
		if !slices.Contains(f.order, name) {
			out = append(out, name)
		}
	}
	return out
}

func errBadChoice(want, got string) error {
	return fmt.Errorf("want %s, got %q", want, got)
}
