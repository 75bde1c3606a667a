package binder

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/converter"
	"github.com/dmitrymomot/databinder/pkg/field"
	"github.com/dmitrymomot/databinder/pkg/logger"
	"github.com/dmitrymomot/databinder/pkg/result"
	"github.com/dmitrymomot/databinder/pkg/statemachine"
	"github.com/dmitrymomot/databinder/pkg/validator"
)

type bindingState string

const (
	stateIncomplete bindingState = "incomplete"
	stateComplete   bindingState = "complete"
)

type bindingEvent string

const eventBind bindingEvent = "bind"

// bound is what a Binder needs from a binding regardless of its type parameters.
type bound[B any] interface {
	Handle
	targetResult() BindingResult
	pull(bean B)
	subscribe(bean B)
	unsubscribe()
	store(bean B, runBeanValidation bool)
	snapshot(bean B) func()
	fireStatusChange(r BindingResult)
}

// Binding connects one field of presentation type F to one property of type T
// on beans of type B through a converter and validator chain.
//
// A binding is incomplete until Bind is called. While incomplete its chain and
// status handler can be configured; afterwards every configuration method
// returns ErrBindingAlreadyBound.
type Binding[B, F, T any] struct {
	binder *Binder[B]
	field  field.Field[F]
	name   string
	chain  converter.Converter[F, T]

	statusChangeHandler StatusChangeHandler
	handlerChanged      bool

	getter func(B) T
	setter func(B, T)

	lifecycle    *statemachine.Machine[bindingState, bindingEvent]
	registration field.Registration
}

func newBinding[B, F, T any](bd *Binder[B], f field.Field[F], name string, chain converter.Converter[F, T], handler StatusChangeHandler) *Binding[B, F, T] {
	b := &Binding[B, F, T]{
		binder:              bd,
		field:               f,
		name:                name,
		chain:               chain,
		statusChangeHandler: handler,
	}

	lifecycle, err := statemachine.NewBuilder[bindingState, bindingEvent](stateIncomplete).
		From(stateIncomplete).When(eventBind).To(stateComplete).
		WithGuard(hasGetter[B, T]).
		WithAction(b.complete).
		Add()
	if err != nil {
		// From, When and To are all declared above.
		panic("binder: " + err.Error())
	}
	b.lifecycle = lifecycle.Build()
	return b
}

// bindRequest is the payload of eventBind.
type bindRequest[B, T any] struct {
	getter func(B) T
	setter func(B, T)
}

func hasGetter[B, T any](_ bindingState, _ bindingEvent, data any) bool {
	req, ok := data.(bindRequest[B, T])
	return ok && req.getter != nil
}

// complete runs while the binding is still incomplete, right before the
// lifecycle moves to complete.
func (b *Binding[B, F, T]) complete(_, _ bindingState, _ bindingEvent, data any) error {
	req := data.(bindRequest[B, T])
	b.getter = req.getter
	b.setter = req.setter
	b.binder.register(b)

	if bean, ok := b.binder.Bean(); ok {
		b.pull(bean)
		b.subscribe(bean)
	}
	return nil
}

// bindingName prefers the field's own name and falls back to a random id.
func bindingName(f any) string {
	if named, ok := f.(field.Named); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return uuid.NewString()
}

// Name identifies the binding in validation errors and logs.
func (b *Binding[B, F, T]) Name() string {
	return b.name
}

func (b *Binding[B, F, T]) Field() field.Field[F] {
	return b.field
}

// FieldValue returns the field's current presentation value, before
// conversion.
func (b *Binding[B, F, T]) FieldValue() any {
	return b.field.Value()
}

// IsComplete reports whether Bind has succeeded.
func (b *Binding[B, F, T]) IsComplete() bool {
	return b.lifecycle.Is(stateComplete)
}

func (b *Binding[B, F, T]) checkUnbound() error {
	if b.IsComplete() {
		return ErrBindingAlreadyBound
	}
	return nil
}

// WithValidator appends v to the chain. The target type does not change.
func (b *Binding[B, F, T]) WithValidator(v validator.Validator[T]) (*Binding[B, F, T], error) {
	if err := b.checkUnbound(); err != nil {
		return b, err
	}
	if v == nil {
		return b, ErrNilValidator
	}
	b.chain = converter.Chain(b.chain, converter.Validate(v))
	return b, nil
}

// WithValidatorFunc appends a predicate validator failing with message.
func (b *Binding[B, F, T]) WithValidatorFunc(predicate func(T) bool, message string) (*Binding[B, F, T], error) {
	if predicate == nil {
		if err := b.checkUnbound(); err != nil {
			return b, err
		}
		return b, ErrNilValidator
	}
	return b.WithValidator(validator.From(predicate, message))
}

// WithStatusChangeHandler replaces the default handler, which toggles the
// field's component error. It can be set once per binding.
func (b *Binding[B, F, T]) WithStatusChangeHandler(handler StatusChangeHandler) (*Binding[B, F, T], error) {
	if err := b.checkUnbound(); err != nil {
		return b, err
	}
	if handler == nil {
		return b, ErrNilStatusHandler
	}
	if b.handlerChanged {
		return b, ErrStatusChangeHandlerAlreadySet
	}
	b.handlerChanged = true
	b.statusChangeHandler = handler
	return b, nil
}

// WithStatusLabel shows this binding's status message in label. The label is
// visible only while the status is an error.
func (b *Binding[B, F, T]) WithStatusLabel(label field.StatusLabel) (*Binding[B, F, T], error) {
	if label == nil {
		if err := b.checkUnbound(); err != nil {
			return b, err
		}
		return b, ErrNilStatusLabel
	}
	return b.WithStatusChangeHandler(labelStatusHandler(label))
}

// Bind completes the binding. A nil setter makes the binding read-only: the
// property is shown and validated but never written. If the binder already
// has a bean, the field is filled from it and starts propagating changes.
func (b *Binding[B, F, T]) Bind(getter func(B) T, setter func(B, T)) error {
	err := b.lifecycle.Fire(eventBind, bindRequest[B, T]{getter: getter, setter: setter})
	switch {
	case err == nil:
		return nil
	case statemachine.IsNoTransitionAvailable(err):
		return ErrBindingAlreadyBound
	case statemachine.IsTransitionRejected(err):
		return ErrNilGetter
	}
	return err
}

// Validate runs the chain against the current field value and reports the
// outcome to the binder's status handler. The bean is not touched.
func (b *Binding[B, F, T]) Validate() result.Result[T] {
	typed, res := b.convert()
	b.binder.reportStatus([]BindingResult{res})
	return typed
}

func (b *Binding[B, F, T]) locale() language.Tag {
	if la, ok := b.field.(field.LocaleAware); ok {
		if tag := la.Locale(); tag != language.Und {
			return tag
		}
	}
	return b.binder.opts.locale
}

func (b *Binding[B, F, T]) convert() (result.Result[T], BindingResult) {
	loc := b.locale()
	value := b.field.Value()

	r := b.chain.ToModel(value, loc)
	if f, failed := r.Failure(); failed {
		f = b.binder.localize(f, loc, b.name)
		return result.Fail[T](f), BindingResult{Binding: b, Value: value, failure: &f}
	}

	converted, _ := r.Value()
	return r, BindingResult{Binding: b, Value: converted}
}

func (b *Binding[B, F, T]) targetResult() BindingResult {
	_, res := b.convert()
	return res
}

func (b *Binding[B, F, T]) pull(bean B) {
	b.field.SetValue(b.chain.ToPresentation(b.getter(bean), b.locale()))
}

func (b *Binding[B, F, T]) subscribe(bean B) {
	b.registration = b.field.AddValueChangeListener(func(field.ValueChangeEvent[F]) {
		b.store(bean, true)
	})
}

func (b *Binding[B, F, T]) unsubscribe() {
	if b.registration != nil {
		b.registration.Remove()
		b.registration = nil
	}
}

// store writes the converted field value into bean when the chain succeeds.
// With runBeanValidation set, bean validators run afterwards unless some
// binding of the binder currently fails.
func (b *Binding[B, F, T]) store(bean B, runBeanValidation bool) {
	if b.setter != nil {
		typed, res := b.convert()
		b.binder.reportStatus([]BindingResult{res})
		typed.IfOk(func(value T) {
			b.setter(bean, value)
		})
	}

	if runBeanValidation && !b.binder.anyBindingFails() {
		b.binder.validateBean(bean)
	}
}

// snapshot captures the property in presentation form and returns a function
// that writes it back through the chain. A lossy chain restores the
// round-tripped value, not the original one. If the captured value no longer
// passes the chain, the original property value is written instead.
func (b *Binding[B, F, T]) snapshot(bean B) func() {
	if b.setter == nil {
		return nil
	}

	loc := b.locale()
	original := b.getter(bean)
	presentation := b.chain.ToPresentation(original, loc)

	return func() {
		if value, ok := b.chain.ToModel(presentation, loc).Value(); ok {
			b.setter(bean, value)
			return
		}
		b.binder.opts.logger.Debug("rollback value rejected by chain, restoring original",
			logger.Binding(b.name),
		)
		b.setter(bean, original)
	}
}

func (b *Binding[B, F, T]) fireStatusChange(r BindingResult) {
	msg, _ := r.Message()
	b.binder.opts.logger.Debug("binding status changed",
		logger.Binding(b.name),
		logger.Status(string(r.Status())),
		slog.String("message", msg),
	)
	b.statusChangeHandler(StatusChangeEvent{
		Binding: b,
		Field:   b.field,
		Status:  r.Status(),
		Message: msg,
	})
}

// WithConverter returns a new incomplete binding for the same field whose
// chain ends with c. It is a function because Go methods cannot introduce the
// new target type N. The receiver binding is left as it was.
func WithConverter[B, F, T, N any](b *Binding[B, F, T], c converter.Converter[T, N]) (*Binding[B, F, N], error) {
	if err := b.checkUnbound(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNilConverter
	}

	next := newBinding(b.binder, b.field, b.name, converter.Chain(b.chain, c), b.statusChangeHandler)
	next.handlerChanged = b.handlerChanged
	return next, nil
}

// WithConverterFunc is WithConverter for a pair of plain functions; any error
// from toModel is reported with message.
func WithConverterFunc[B, F, T, N any](b *Binding[B, F, T], toModel func(T) (N, error), toPresentation func(N) T, message string) (*Binding[B, F, N], error) {
	if toModel == nil || toPresentation == nil {
		if err := b.checkUnbound(); err != nil {
			return nil, err
		}
		return nil, ErrNilConverter
	}
	return WithConverter(b, converter.FromMessage(toModel, toPresentation, message))
}
