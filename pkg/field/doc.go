// Package field defines the contracts the binder consumes from UI components:
// an observable value holder (Field) plus optional capabilities a component can
// opt into (LocaleAware, ErrorDisplayable, Named) and the StatusLabel used for
// binder-level messages.
//
// The binder only depends on these interfaces, never on a concrete component
// type. Input and Label are in-memory implementations used by tests, tools and
// server-side form processing where there is no real widget.
//
// # Usage
//
//	name := field.NewInput("name", "")
//	name.SetLocale(language.German)
//
//	reg := name.AddValueChangeListener(func(e field.ValueChangeEvent[string]) {
//	    fmt.Println(e.OldValue, "->", e.Value)
//	})
//	name.SetValue("Ann")
//	reg.Remove()
package field
