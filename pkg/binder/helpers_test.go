package binder_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/databinder/pkg/binder"
	"github.com/dmitrymomot/databinder/pkg/field"
)

type Person struct {
	Name  string
	Email string
	Age   int
}

func personName(p *Person) string { return p.Name }
func setPersonName(p *Person, v string) { p.Name = v }

type Account struct {
	Name     string
	Balance  int
	Currency string
}

func accountName(a *Account) string { return a.Name }
func accountBalance(a *Account) int { return a.Balance }
func setAccountBalance(a *Account, v int) { a.Balance = v }

// plainField is a Field with no optional capabilities.
type plainField struct {
	value string
}

func (f *plainField) Value() string { return f.value }

func (f *plainField) SetValue(v string) { f.value = v }

func (f *plainField) AddValueChangeListener(field.Listener[string]) field.Registration {
	return field.RegistrationFunc(nil)
}

type statusHandlerMock struct {
	mock.Mock
}

func (m *statusHandlerMock) Handle(results []binder.BindingResult) {
	m.Called(results)
}

type statusChangeHandlerMock struct {
	mock.Mock
}

func (m *statusChangeHandlerMock) Handle(event binder.StatusChangeEvent) {
	m.Called(event)
}
