package converter

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/result"
)

// StringToUUID parses canonical UUID text. Empty text converts to uuid.Nil and
// uuid.Nil is presented as empty text.
func StringToUUID(message string) Converter[string, uuid.UUID] {
	return New(
		func(value string, _ language.Tag) result.Result[uuid.UUID] {
			value = strings.TrimSpace(value)
			if value == "" {
				return result.Ok(uuid.Nil)
			}
			id, err := uuid.Parse(value)
			if err != nil {
				return conversionFailure[uuid.UUID](message, "must be a valid UUID", "conversion.uuid", value)
			}
			return result.Ok(id)
		},
		func(value uuid.UUID, _ language.Tag) string {
			if value == uuid.Nil {
				return ""
			}
			return value.String()
		},
	)
}

// StringToTime parses text with a time layout. Empty text converts to the zero
// time and the zero time is presented as empty text.
func StringToTime(layout, message string) Converter[string, time.Time] {
	return New(
		func(value string, _ language.Tag) result.Result[time.Time] {
			value = strings.TrimSpace(value)
			if value == "" {
				return result.Ok(time.Time{})
			}
			t, err := time.Parse(layout, value)
			if err != nil {
				r := conversionFailure[time.Time](message, "must be a valid date", "conversion.time", value)
				f, _ := r.Failure()
				f.TranslationValues["layout"] = layout
				return result.Fail[time.Time](f)
			}
			return result.Ok(t)
		},
		func(value time.Time, _ language.Tag) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
	)
}

// Trim removes surrounding whitespace on the way to the model.
func Trim() Converter[string, string] {
	return New(
		func(value string, _ language.Tag) result.Result[string] {
			return result.Ok(strings.TrimSpace(value))
		},
		func(value string, _ language.Tag) string {
			return value
		},
	)
}

// CaseMode selects the casing applied by CaseConverter.
type CaseMode int

const (
	Upper CaseMode = iota
	Lower
	Title
)

// CaseConverter normalizes letter case using the rules of the field locale,
// so Turkish dotted/dotless i and similar cases are handled correctly.
// The presentation direction is the identity.
func CaseConverter(mode CaseMode) Converter[string, string] {
	return New(
		func(value string, locale language.Tag) result.Result[string] {
			var c cases.Caser
			switch mode {
			case Lower:
				c = cases.Lower(locale)
			case Title:
				c = cases.Title(locale)
			default:
				c = cases.Upper(locale)
			}
			return result.Ok(c.String(value))
		},
		func(value string, _ language.Tag) string {
			return value
		},
	)
}
