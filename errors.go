package willowui

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCloneable is returned by Clone for widget kinds without a clone hook.
	ErrNotCloneable = errors.New("widget is not cloneable")
	// ErrUnknownWidgetType is returned when a template names an unregistered kind.
	ErrUnknownWidgetType = errors.New("unknown widget type")
	// ErrMissingField is returned when a template omits a field its kind requires.
	ErrMissingField = errors.New("missing required field")
	// ErrUnknownField is returned when a template sets a field its kind does not accept.
	ErrUnknownField = errors.New("unknown field")
	// ErrBadExpression is returned for malformed bounds expressions.
	ErrBadExpression = errors.New("bad expression")
	// ErrUnknownVariable is returned when an expression references an
	// identifier that is not in its substitution table.
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrUnknownTemplate is returned when no template has the requested ID.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrWidgetNotFound is returned by Get when no descendant has the ID.
	ErrWidgetNotFound = errors.New("widget not found")
	// ErrPanelOpen is returned when a dropdown already has a panel attached.
	ErrPanelOpen = errors.New("dropdown panel already open")
)

// BoundsError reports a bounds expression that failed to evaluate.
type BoundsError struct {
	WidgetID string
	Field    string
	Err      error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("widget %q: %s: %v", e.WidgetID, e.Field, e.Err)
}

func (e *BoundsError) Unwrap() error { return e.Err }

// LoadError reports a template node that could not be turned into a widget.
// Path is the slash-separated chain of template IDs from the root template.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
