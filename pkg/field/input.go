package field

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

// exportAll lets cmp compare values with unexported fields instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

type listenerEntry[T any] struct {
	id       int
	listener Listener[T]
}

// Input is an in-memory Field implementation. It is what tests and tools bind
// against when there is no real UI component behind the binder.
//
// Input is LocaleAware, ErrorDisplayable and Named.
// It is not safe for concurrent use.
type Input[T any] struct {
	name      string
	value     T
	locale    language.Tag
	errMsg    string
	hasError  bool
	listeners []listenerEntry[T]
	nextID    int
}

// NewInput creates a field holding the initial value.
func NewInput[T any](name string, initial T) *Input[T] {
	return &Input[T]{name: name, value: initial}
}

func (f *Input[T]) Name() string {
	return f.name
}

func (f *Input[T]) Value() T {
	return f.value
}

// SetValue stores the value and notifies listeners. Setting a value equal to
// the current one is a no-op and fires no event.
func (f *Input[T]) SetValue(value T) {
	if cmp.Equal(f.value, value, exportAll) {
		return
	}

	old := f.value
	f.value = value

	// Listeners may unsubscribe while being notified.
	snapshot := make([]listenerEntry[T], len(f.listeners))
	copy(snapshot, f.listeners)

	event := ValueChangeEvent[T]{Source: f, OldValue: old, Value: value}
	for _, l := range snapshot {
		l.listener(event)
	}
}

// AddValueChangeListener subscribes listener. Nil listeners are ignored and
// get a no-op registration.
func (f *Input[T]) AddValueChangeListener(listener Listener[T]) Registration {
	if listener == nil {
		return RegistrationFunc(nil)
	}

	id := f.nextID
	f.nextID++
	f.listeners = append(f.listeners, listenerEntry[T]{id: id, listener: listener})

	removed := false
	return RegistrationFunc(func() {
		if removed {
			return
		}
		removed = true
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	})
}

// ListenerCount reports the number of active subscriptions.
func (f *Input[T]) ListenerCount() int {
	return len(f.listeners)
}

func (f *Input[T]) Locale() language.Tag {
	return f.locale
}

func (f *Input[T]) SetLocale(tag language.Tag) {
	f.locale = tag
}

func (f *Input[T]) SetComponentError(message string) {
	f.errMsg = message
	f.hasError = true
}

func (f *Input[T]) ClearComponentError() {
	f.errMsg = ""
	f.hasError = false
}

// ComponentError returns the displayed error message, if any.
func (f *Input[T]) ComponentError() (string, bool) {
	return f.errMsg, f.hasError
}
