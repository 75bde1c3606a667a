// Package binder connects input fields to the properties of a bean and keeps
// them in sync through converter and validator chains.
//
// A Binder[B] owns an ordered set of bindings and a list of bean-level
// validators. Each Binding[B, F, T] ties one field.Field[F] to a property of
// type T, described by a getter and an optional setter:
//
//	bd := binder.New[*Account](binder.WithTranslator(tr))
//
//	name, _ := binder.ForField(bd, nameInput)
//	name, _ = name.WithValidator(validator.Required())
//	_ = name.Bind(
//	    func(a *Account) string { return a.Name },
//	    func(a *Account, v string) { a.Name = v },
//	)
//
//	text, _ := binder.ForField(bd, balanceInput)
//	balance, _ := binder.WithConverter(text, converter.StringToInt(""))
//	_ = balance.Bind(getBalance, setBalance)
//
//	bd.WithValidatorFunc(func(a *Account) bool { return a.Balance >= 0 }, "balance cannot be negative")
//
// # Lifecycle
//
// A binding is incomplete until Bind is called and complete afterwards.
// Configuration methods on a complete binding return ErrBindingAlreadyBound.
// WithConverter is a function rather than a method because it changes the
// target type.
//
// # Beans
//
// Bind attaches a bean: fields are filled from it and every valid change is
// written back, followed by bean-level validation when all fields are valid.
// Load fills fields once without attaching. Save and SaveIfValid validate all
// fields first and write nothing if any fails. Otherwise they write every
// binding, run the bean validators, and on failure roll each property back
// through its own chain. A chain that does not round-trip exactly (rounding,
// case folding) restores the round-tripped value.
//
// # Status reporting
//
// Every validation outcome goes to the binder's StatusHandler. The default
// handler passes field results to each binding's StatusChangeHandler, which
// by default toggles the field's component error (field.ErrorDisplayable),
// and shows the first bean-level message in the status label, if one is set.
// SetStatusLabel and SetStatusHandler are mutually exclusive.
//
// # Locale
//
// Conversions use the field's locale (field.LocaleAware) or the binder
// locale, English unless WithLocale says otherwise. With WithTranslator,
// failures carrying a translation key are localized into that locale; the
// binding name fills the %{field} placeholder.
//
// A Binder is not safe for concurrent use.
package binder
