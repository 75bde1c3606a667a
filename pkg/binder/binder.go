package binder

import (
	"maps"
	"reflect"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/converter"
	"github.com/dmitrymomot/databinder/pkg/field"
	"github.com/dmitrymomot/databinder/pkg/logger"
	"github.com/dmitrymomot/databinder/pkg/result"
	"github.com/dmitrymomot/databinder/pkg/validator"
)

// Binder connects a set of fields to the properties of a bean of type B.
//
// A Binder is not safe for concurrent use. Field change notifications,
// validation and saving all run synchronously on the caller's goroutine.
type Binder[B any] struct {
	opts options

	bindings   []bound[B]
	validators []validator.Validator[B]

	bean    B
	hasBean bool

	statusLabel   field.StatusLabel
	statusHandler StatusHandler
}

// New creates an empty binder.
func New[B any](opts ...Option) *Binder[B] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With(logger.Component("binder"))

	return &Binder[B]{opts: o}
}

// ForField starts an incomplete binding for f with the identity converter
// and the default status change handler.
func ForField[B, F any](bd *Binder[B], f field.Field[F]) (*Binding[B, F, F], error) {
	if isNil(f) {
		return nil, ErrNilField
	}
	return newBinding(bd, f, bindingName(f), converter.Identity[F](), showComponentError), nil
}

// BindField is ForField followed by Bind.
func BindField[B, F any](bd *Binder[B], f field.Field[F], getter func(B) F, setter func(B, F)) error {
	b, err := ForField(bd, f)
	if err != nil {
		return err
	}
	return b.Bind(getter, setter)
}

// Bean returns the bound bean.
func (bd *Binder[B]) Bean() (B, bool) {
	return bd.bean, bd.hasBean
}

// Bindings returns the complete bindings in registration order.
func (bd *Binder[B]) Bindings() []Handle {
	handles := make([]Handle, 0, len(bd.bindings))
	for _, b := range bd.bindings {
		handles = append(handles, b)
	}
	return handles
}

// Locale is the fallback locale for fields that do not report one.
func (bd *Binder[B]) Locale() language.Tag {
	return bd.opts.locale
}

// Bind attaches bean. Any previously bound bean is released first. Every
// field is filled from the bean and from then on writes valid changes back.
func (bd *Binder[B]) Bind(bean B) error {
	if isNil(bean) {
		return ErrNilBean
	}

	bd.Unbind()
	bd.bean = bean
	bd.hasBean = true
	for _, b := range bd.bindings {
		b.pull(bean)
		b.subscribe(bean)
	}

	bd.opts.logger.Debug("bean bound", logger.Count(len(bd.bindings)))
	return nil
}

// Unbind releases the bean and stops propagating field changes. Fields keep
// their values and status. It is a no-op without a bean.
func (bd *Binder[B]) Unbind() {
	if !bd.hasBean {
		return
	}

	var zero B
	bd.bean = zero
	bd.hasBean = false
	for _, b := range bd.bindings {
		b.unsubscribe()
	}

	bd.opts.logger.Debug("bean unbound")
}

// Load fills the fields from bean once, without binding to it.
func (bd *Binder[B]) Load(bean B) error {
	if isNil(bean) {
		return ErrNilBean
	}
	for _, b := range bd.bindings {
		b.pull(bean)
	}
	return nil
}

// WithValidator appends a bean-level validator. Bean validators run after all
// fields are valid, in registration order. Nil is ignored.
func (bd *Binder[B]) WithValidator(v validator.Validator[B]) *Binder[B] {
	if v != nil {
		bd.validators = append(bd.validators, v)
	}
	return bd
}

// WithValidatorFunc appends a predicate bean validator failing with message.
func (bd *Binder[B]) WithValidatorFunc(predicate func(B) bool, message string) *Binder[B] {
	if predicate == nil {
		return bd
	}
	return bd.WithValidator(validator.From(predicate, message))
}

// Validate runs every binding chain and reports the results. When all fields
// pass and a bean is bound, bean validators run against it. The returned
// errors are either all field-level or all bean-level.
func (bd *Binder[B]) Validate() ValidationErrors {
	if errs := bd.validateBindings(); !errs.IsEmpty() {
		return errs
	}
	if bd.hasBean {
		return bd.validateBean(bd.bean)
	}
	return nil
}

// Save writes all field values into bean if every field and bean validator
// passes. On failure it returns ValidationErrors and bean holds its previous
// property values.
func (bd *Binder[B]) Save(bean B) error {
	if isNil(bean) {
		return ErrNilBean
	}
	if errs := bd.saveIfValid(bean); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// SaveIfValid is Save reporting success as a bool. A nil bean returns false.
func (bd *Binder[B]) SaveIfValid(bean B) bool {
	if isNil(bean) {
		return false
	}
	return bd.saveIfValid(bean).IsEmpty()
}

// saveIfValid validates the fields without writing, then writes every
// binding, then runs bean validators. A bean-level failure rolls every
// written property back through its binding's chain.
func (bd *Binder[B]) saveIfValid(bean B) ValidationErrors {
	if errs := bd.validateBindings(); !errs.IsEmpty() {
		bd.opts.logger.Debug("save rejected by field validation", logger.Count(len(errs)))
		return errs
	}

	restores := make([]func(), 0, len(bd.bindings))
	for _, b := range bd.bindings {
		if restore := b.snapshot(bean); restore != nil {
			restores = append(restores, restore)
		}
	}

	for _, b := range bd.bindings {
		b.store(bean, false)
	}

	if errs := bd.validateBean(bean); !errs.IsEmpty() {
		for _, restore := range restores {
			restore()
		}
		bd.opts.logger.Debug("save rolled back by bean validation", logger.Count(len(errs)))
		return errs
	}

	bd.opts.logger.Debug("bean saved", logger.Count(len(bd.bindings)))
	return nil
}

// SetStatusLabel shows bean-level status in label while fields keep
// reporting through their bindings. It excludes SetStatusHandler and can be
// set once.
func (bd *Binder[B]) SetStatusLabel(label field.StatusLabel) error {
	if bd.statusHandler != nil {
		return ErrStatusHandlerAlreadySet
	}
	if bd.statusLabel != nil {
		return ErrStatusLabelAlreadySet
	}
	if isNil(label) {
		return ErrNilStatusLabel
	}
	bd.statusLabel = label
	return nil
}

// StatusLabel returns the label set by SetStatusLabel, if any.
func (bd *Binder[B]) StatusLabel() (field.StatusLabel, bool) {
	return bd.statusLabel, bd.statusLabel != nil
}

// SetStatusHandler replaces the default status routing. It excludes
// SetStatusLabel and can be set once.
func (bd *Binder[B]) SetStatusHandler(handler StatusHandler) error {
	if handler == nil {
		return ErrNilStatusHandler
	}
	if bd.statusLabel != nil {
		return ErrStatusLabelAlreadySet
	}
	if bd.statusHandler != nil {
		return ErrStatusHandlerAlreadySet
	}
	bd.statusHandler = handler
	return nil
}

// StatusHandler returns the configured handler or the default one.
func (bd *Binder[B]) StatusHandler() StatusHandler {
	if bd.statusHandler != nil {
		return bd.statusHandler
	}
	return bd.defaultStatusHandler
}

// defaultStatusHandler routes field results to their bindings and shows the
// first bean-level error message, or nothing, in the status label.
func (bd *Binder[B]) defaultStatusHandler(results []BindingResult) {
	for _, r := range results {
		if b, ok := r.Binding.(bound[B]); ok {
			b.fireStatusChange(r)
		}
	}

	if bd.statusLabel == nil {
		return
	}

	msg := ""
	for _, r := range results {
		if r.IsBeanLevel() && r.IsError() {
			msg, _ = r.Message()
			break
		}
	}
	bd.statusLabel.SetValue(msg)
}

func (bd *Binder[B]) reportStatus(results []BindingResult) {
	bd.StatusHandler()(results)
}

func (bd *Binder[B]) register(b bound[B]) {
	bd.bindings = append(bd.bindings, b)
}

func (bd *Binder[B]) validateBindings() ValidationErrors {
	results := make([]BindingResult, 0, len(bd.bindings))
	for _, b := range bd.bindings {
		results = append(results, b.targetResult())
	}
	bd.reportStatus(results)

	var errs ValidationErrors
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r.validationError())
		}
	}
	return errs
}

func (bd *Binder[B]) validateBean(bean B) ValidationErrors {
	results := make([]BindingResult, 0, len(bd.validators))
	for _, v := range bd.validators {
		r := v.Validate(bean)
		if f, failed := r.Failure(); failed {
			f = bd.localize(f, bd.opts.locale, "")
			results = append(results, BindingResult{Value: bean, failure: &f})
			continue
		}
		results = append(results, BindingResult{Value: bean})
	}
	bd.reportStatus(results)

	var errs ValidationErrors
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r.validationError())
		}
	}
	return errs
}

func (bd *Binder[B]) anyBindingFails() bool {
	for _, b := range bd.bindings {
		if b.targetResult().IsError() {
			return true
		}
	}
	return false
}

// localize replaces the message of a keyed failure with its translation.
// The binding name fills the "field" placeholder unless the failure set one.
func (bd *Binder[B]) localize(f result.Failure, loc language.Tag, name string) result.Failure {
	if bd.opts.translator == nil || f.TranslationKey == "" {
		return f
	}

	values := make(map[string]any, len(f.TranslationValues)+1)
	maps.Copy(values, f.TranslationValues)
	if _, ok := values["field"]; !ok && name != "" {
		values["field"] = name
	}

	if msg, ok := bd.opts.translator.Translate(loc, f.TranslationKey, values); ok {
		f.Message = msg
	}
	return f
}

// isNil reports untyped nil and nil pointers, maps, slices, funcs, channels
// and interfaces.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
