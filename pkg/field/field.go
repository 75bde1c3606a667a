package field

import "golang.org/x/text/language"

// Field is an observable single-value holder, typically an input component.
type Field[T any] interface {
	Value() T
	SetValue(value T)
	AddValueChangeListener(listener Listener[T]) Registration
}

// ValueChangeEvent is delivered synchronously to listeners after the value changed.
type ValueChangeEvent[T any] struct {
	Source   Field[T]
	OldValue T
	Value    T
}

// Listener receives value change events.
type Listener[T any] func(event ValueChangeEvent[T])

// Registration cancels a listener subscription.
type Registration interface {
	Remove()
}

// RegistrationFunc adapts a plain function to Registration.
type RegistrationFunc func()

func (f RegistrationFunc) Remove() {
	if f != nil {
		f()
	}
}

// LocaleAware is implemented by fields that know the locale they are displayed in.
// Returning language.Und means "no preference".
type LocaleAware interface {
	Locale() language.Tag
}

// ErrorDisplayable is implemented by fields that can show a validation error.
type ErrorDisplayable interface {
	SetComponentError(message string)
	ClearComponentError()
}

// Named is implemented by fields with a stable, human-readable name.
type Named interface {
	Name() string
}

// StatusLabel displays a single status message.
type StatusLabel interface {
	SetValue(value string)
	SetVisible(visible bool)
}
