// Package observable holds state values that notify observers on change.
//
// A [Value] keeps one current value. Observers are called synchronously by
// the goroutine that calls Set, in registration order; the client publishes
// every value from its main loop, so observers see changes in order and
// never concurrently.
package observable

import "sync"

type observer[T any] struct {
	id int
	fn func(T)
}

// Value is an observable holder of one current value of type T.
// Get is safe from any goroutine. Set should only be called from one
// goroutine at a time.
type Value[T any] struct {
	mu        sync.RWMutex
	value     T
	nextID    int
	observers []observer[T]
}

// NewValue returns a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set replaces the current value and notifies every observer.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	observers := make([]observer[T], len(v.observers))
	copy(observers, v.observers)
	v.mu.Unlock()

	for _, o := range observers {
		o.fn(value)
	}
}

// Observe registers fn and calls it at once with the current value. The
// returned function removes the observer; it is safe to call more than once.
func (v *Value[T]) Observe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.observers = append(v.observers, observer[T]{id: id, fn: fn})
	current := v.value
	v.mu.Unlock()

	fn(current)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, o := range v.observers {
			if o.id == id {
				v.observers = append(v.observers[:i], v.observers[i+1:]...)
				return
			}
		}
	}
}
