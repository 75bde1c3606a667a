package converter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/databinder/pkg/cache"
	"github.com/dmitrymomot/databinder/pkg/result"
)

type numberSymbols struct {
	group   string
	decimal string
}

var plainSymbols = numberSymbols{decimal: "."}

var symbolCache = cache.NewLRU[language.Tag, numberSymbols](64)

func symbolsFor(tag language.Tag) numberSymbols {
	if tag == language.Und {
		return plainSymbols
	}
	return symbolCache.GetOrLoad(tag, loadSymbols)
}

// loadSymbols derives grouping and decimal separators by formatting a probe
// number with the locale's printer. Locales printing non-Latin digits fall
// back to plain symbols.
func loadSymbols(tag language.Tag) numberSymbols {
	s := message.NewPrinter(tag).Sprintf("%.1f", 1234.5)

	one := strings.Index(s, "1")
	mid := strings.Index(s, "234")
	if one < 0 || mid < one {
		return plainSymbols
	}

	decimal := strings.TrimSuffix(s[mid+3:], "5")
	if decimal == "" || strings.ContainsAny(decimal, "0123456789") {
		return plainSymbols
	}

	return numberSymbols{group: s[one+1 : mid], decimal: decimal}
}

func (s numberSymbols) normalize(value string) string {
	value = strings.TrimSpace(value)
	if s.group != "" {
		value = strings.ReplaceAll(value, s.group, "")
	}
	if s.decimal != "." {
		value = strings.ReplaceAll(value, s.decimal, ".")
	}
	return value
}

func (s numberSymbols) groupDigits(digits string) string {
	if s.group == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(s.group)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func (s numberSymbols) formatInt(n int64) string {
	sign := ""
	digits := strconv.FormatInt(n, 10)
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	return sign + s.groupDigits(digits)
}

func (s numberSymbols) formatFloat(f float64) string {
	str := strconv.FormatFloat(f, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}
	intPart, frac, hasFrac := strings.Cut(str, ".")
	out := sign + s.groupDigits(intPart)
	if hasFrac {
		out += s.decimal + frac
	}
	return out
}

func conversionFailure[M any](message, defaultMessage, key, value string) result.Result[M] {
	if message == "" {
		message = defaultMessage
	}
	return result.Fail[M](result.Failure{
		Message:           message,
		TranslationKey:    key,
		TranslationValues: map[string]any{"value": value},
	})
}

// StringToInt converts locale-formatted text to int. Empty text converts to 0.
// An empty message selects the default one.
func StringToInt(message string) Converter[string, int] {
	return New(
		func(value string, locale language.Tag) result.Result[int] {
			normalized := symbolsFor(locale).normalize(value)
			if normalized == "" {
				return result.Ok(0)
			}
			n, err := strconv.Atoi(normalized)
			if err != nil {
				return conversionFailure[int](message, "must be a whole number", "conversion.integer", value)
			}
			return result.Ok(n)
		},
		func(value int, locale language.Tag) string {
			return symbolsFor(locale).formatInt(int64(value))
		},
	)
}

// StringToInt64 is StringToInt for int64 values.
func StringToInt64(message string) Converter[string, int64] {
	return New(
		func(value string, locale language.Tag) result.Result[int64] {
			normalized := symbolsFor(locale).normalize(value)
			if normalized == "" {
				return result.Ok[int64](0)
			}
			n, err := strconv.ParseInt(normalized, 10, 64)
			if err != nil {
				return conversionFailure[int64](message, "must be a whole number", "conversion.integer", value)
			}
			return result.Ok(n)
		},
		func(value int64, locale language.Tag) string {
			return symbolsFor(locale).formatInt(value)
		},
	)
}

// StringToFloat64 converts locale-formatted decimal text. Empty text converts to 0.
func StringToFloat64(message string) Converter[string, float64] {
	return New(
		func(value string, locale language.Tag) result.Result[float64] {
			normalized := symbolsFor(locale).normalize(value)
			if normalized == "" {
				return result.Ok(0.0)
			}
			f, err := strconv.ParseFloat(normalized, 64)
			if err != nil {
				return conversionFailure[float64](message, "must be a number", "conversion.number", value)
			}
			return result.Ok(f)
		},
		func(value float64, locale language.Tag) string {
			return symbolsFor(locale).formatFloat(value)
		},
	)
}

// StringToBool accepts the strconv.ParseBool spellings. Empty text converts to false.
func StringToBool(message string) Converter[string, bool] {
	return New(
		func(value string, _ language.Tag) result.Result[bool] {
			value = strings.TrimSpace(value)
			if value == "" {
				return result.Ok(false)
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return conversionFailure[bool](message, "must be true or false", "conversion.bool", value)
			}
			return result.Ok(b)
		},
		func(value bool, _ language.Tag) string {
			return fmt.Sprint(value)
		},
	)
}
