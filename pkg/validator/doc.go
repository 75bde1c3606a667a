// Package validator provides composable, generic validators for field values
// and whole beans.
//
// A Validator[T] is a plain function that returns its input wrapped in a
// successful result.Result when the value is acceptable, or a failed result
// carrying a message and a translation key otherwise. Validators never modify
// the value, which is what allows the binder to chain them after converters.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `format_rules.go`, `choice_rules.go`). Every exported
// rule constructor returns a Validator; there is no hidden global state, so the
// package is stateless and goroutine-safe.
//
// Core building blocks:
//   - Validator[T]  – func(T) result.Result[T]
//   - From/FromKey  – build a validator from a predicate
//   - All/Optional  – combine validators
//   - Numeric       – generic constraint used by numeric rules
//
// # Usage
//
//	name := validator.All(
//	    validator.Required(),
//	    validator.MaxLen(64),
//	)
//	if r := name(" "); r.IsError() {
//	    msg, _ := r.Message()
//	    fmt.Println(msg) // field is required
//	}
//
// # Translation
//
// Built-in rules set TranslationKey values under the "validation." namespace
// (validation.required, validation.min_length, ...) with TranslationValues for
// the placeholders. The binder localizes them through pkg/i18n when configured
// with a translator.
package validator
