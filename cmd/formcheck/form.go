package main

import (
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/binder"
	"github.com/dmitrymomot/databinder/pkg/converter"
	"github.com/dmitrymomot/databinder/pkg/field"
	"github.com/dmitrymomot/databinder/pkg/i18n"
	"github.com/dmitrymomot/databinder/pkg/validator"
)

// Account is the bean every submission is saved into.
type Account struct {
	Name     string
	Email    string
	Age      int
	Balance  float64
	Currency string
}

// Submission is one entry of the input file. Every value is text, the way a
// user would type it.
type Submission struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Age      string `yaml:"age"`
	Balance  string `yaml:"balance"`
	Currency string `yaml:"currency"`
}

var currencies = []string{"EUR", "USD", "GBP"}

// accountForm is the set of fields and the binder for Account.
type accountForm struct {
	binder   *binder.Binder[*Account]
	name     *field.Input[string]
	email    *field.Input[string]
	age      *field.Input[string]
	balance  *field.Input[string]
	currency *field.Input[string]
}

func newAccountForm(locale language.Tag, tr *i18n.Translator, log *slog.Logger) (*accountForm, error) {
	f := &accountForm{
		binder: binder.New[*Account](
			binder.WithLocale(locale),
			binder.WithTranslator(tr),
			binder.WithLogger(log),
		),
		name:     field.NewInput("name", ""),
		email:    field.NewInput("email", ""),
		age:      field.NewInput("age", ""),
		balance:  field.NewInput("balance", ""),
		currency: field.NewInput("currency", ""),
	}
	for _, in := range []*field.Input[string]{f.name, f.email, f.age, f.balance, f.currency} {
		in.SetLocale(locale)
	}

	if err := bindText(f.binder, f.name,
		validator.All(validator.Required(), validator.MaxLen(64)),
		func(a *Account) string { return a.Name },
		func(a *Account, v string) { a.Name = v },
	); err != nil {
		return nil, err
	}

	if err := bindText(f.binder, f.email,
		validator.All(validator.Required(), validator.Email()),
		func(a *Account) string { return a.Email },
		func(a *Account, v string) { a.Email = v },
	); err != nil {
		return nil, err
	}

	age, err := binder.ForField(f.binder, f.age)
	if err != nil {
		return nil, err
	}
	ageNumber, err := binder.WithConverter(age, converter.StringToInt(""))
	if err != nil {
		return nil, err
	}
	if ageNumber, err = ageNumber.WithValidator(validator.Between(0, 150)); err != nil {
		return nil, err
	}
	if err := ageNumber.Bind(
		func(a *Account) int { return a.Age },
		func(a *Account, v int) { a.Age = v },
	); err != nil {
		return nil, err
	}

	balance, err := binder.ForField(f.binder, f.balance)
	if err != nil {
		return nil, err
	}
	balanceNumber, err := binder.WithConverter(balance, converter.StringToFloat64(""))
	if err != nil {
		return nil, err
	}
	if err := balanceNumber.Bind(
		func(a *Account) float64 { return a.Balance },
		func(a *Account, v float64) { a.Balance = v },
	); err != nil {
		return nil, err
	}

	currency, err := binder.ForField(f.binder, f.currency)
	if err != nil {
		return nil, err
	}
	upper, err := binder.WithConverter(currency, converter.Chain(converter.Trim(), converter.CaseConverter(converter.Upper)))
	if err != nil {
		return nil, err
	}
	if upper, err = upper.WithValidator(validator.OneOf(currencies...)); err != nil {
		return nil, err
	}
	if err := upper.Bind(
		func(a *Account) string { return a.Currency },
		func(a *Account, v string) { a.Currency = v },
	); err != nil {
		return nil, err
	}

	f.binder.WithValidator(validator.FromKey(func(a *Account) bool {
		return a.Currency != "EUR" || a.Age >= 18 || a.Balance >= 0
	}, "accounts of minors cannot have a negative EUR balance", "account.minor_negative_balance", nil))

	return f, nil
}

func bindText(bd *binder.Binder[*Account], in *field.Input[string], v validator.Validator[string], getter func(*Account) string, setter func(*Account, string)) error {
	b, err := binder.ForField(bd, in)
	if err != nil {
		return err
	}
	trimmed, err := binder.WithConverter(b, converter.Trim())
	if err != nil {
		return err
	}
	if trimmed, err = trimmed.WithValidator(v); err != nil {
		return err
	}
	return trimmed.Bind(getter, setter)
}

func (f *accountForm) fill(s Submission) {
	f.name.SetValue(s.Name)
	f.email.SetValue(s.Email)
	f.age.SetValue(s.Age)
	f.balance.SetValue(s.Balance)
	f.currency.SetValue(s.Currency)
}

// check saves s into a fresh Account and returns the account and any errors.
func (f *accountForm) check(s Submission) (*Account, binder.ValidationErrors) {
	f.fill(s)

	account := &Account{}
	err := f.binder.Save(account)
	if errs, ok := binder.ExtractValidationErrors(err); ok {
		return account, errs
	}
	return account, nil
}

func describe(s Submission, index int) string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return "#" + strconv.Itoa(index)
}
