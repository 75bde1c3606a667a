// Package converter provides typed, locale-aware, bidirectional conversions
// between a field's presentation type and a bean property's model type.
//
// A Converter[P, M] turns a presentation value into a result.Result[M]
// (ToModel, which may fail) and turns a model value back into a presentation
// value (ToPresentation, which always succeeds). Converters compose with Chain
// into pipelines whose ToModel stops at the first failing stage and whose
// ToPresentation runs the stages in reverse. Validators join the same pipeline
// through Validate.
//
// # Usage
//
//	age := converter.Chain(
//	    converter.StringToInt("age must be a number"),
//	    converter.Validate(validator.Min(18)),
//	)
//	r := age.ToModel("17", language.English) // Error("must be at least 18")
//
// # Locales
//
// Numeric converters honour the grouping and decimal symbols of the locale
// they are called with ("1.234,5" in German, "1,234.5" in English). Symbols are
// derived once per locale with golang.org/x/text/message and memoized in a
// bounded cache. language.Und selects plain symbols with no grouping.
package converter
