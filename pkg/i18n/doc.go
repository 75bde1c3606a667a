// Package i18n localizes binder messages.
//
// It provides:
//
//   - locale helpers built on golang.org/x/text/language (WithLocale,
//     LocaleFromContext, ParseAcceptLanguage);
//   - a Translator that resolves dot-separated keys ("validation.required")
//     against per-language catalogs and substitutes %{name} placeholders;
//   - adapters loading catalogs from memory (MapAdapter), any fs.FS holding
//     YAML or JSON files (FSAdapter) or several sources merged (MultiAdapter);
//   - built-in English and German catalogs for every validation and
//     conversion key shipped by this module (DefaultMessages).
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MultiAdapter{
//	    i18n.DefaultMessages(),
//	    &i18n.FSAdapter{FS: os.DirFS("./translations")},
//	}, i18n.WithDefaultLanguage(language.English))
//	if err != nil {
//	    return err
//	}
//
//	msg := tr.T(language.German, "validation.required", "field", "Name")
//	// msg == "Name ist erforderlich"
//
// Language matching uses the x/text matcher, so "de-CH" resolves to the "de"
// catalog and unknown languages resolve to the default language.
//
// # Error Handling
//
// Loading errors wrap sentinel values such as ErrFailedToParse and
// ErrInvalidLanguage and can be checked with errors.Is.
package i18n
