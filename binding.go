package willowui

// Binding is a widget property that holds either a literal value or an
// accessor evaluated on every read. The zero Binding reads as T's zero value.
type Binding[T any] struct {
	value T
	fn    func() T
}

// Static returns a Binding that always reads v.
func Static[T any](v T) Binding[T] {
	return Binding[T]{value: v}
}

// Bound returns a Binding that calls fn on every read.
func Bound[T any](fn func() T) Binding[T] {
	return Binding[T]{fn: fn}
}

// Get returns the current value.
func (b Binding[T]) Get() T {
	if b.fn != nil {
		return b.fn()
	}
	return b.value
}

// Set replaces the binding with a literal value.
func (b *Binding[T]) Set(v T) {
	b.value = v
	b.fn = nil
}

// Bind replaces the binding with an accessor.
func (b *Binding[T]) Bind(fn func() T) {
	b.fn = fn
}

// IsBound reports whether the value comes from an accessor.
func (b Binding[T]) IsBound() bool { return b.fn != nil }
