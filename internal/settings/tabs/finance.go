package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Finance holds currency and installment defaults. Changing the currency
// requires a restart.
type Finance struct {
	currency         *form.Select
	defaultFrequency *form.Select
	installmentFee   *form.FloatInput
}

// NewFinance creates the Finance tab seeded from m.
func NewFinance(m settings.Model, onRestartRequired func()) *Finance {
	t := &Finance{
		currency:         form.NewChoice(settings.KeyCurrency, "Currency", Currencies, m.Currency),
		defaultFrequency: form.NewChoice(settings.KeyDefaultFrequency, "Default frequency", Frequencies, m.DefaultFrequency),
		installmentFee: form.NewFloat(
			settings.KeyInstallmentFee, "Installment percentage", 0, 1_000_000, 2, m.InstallmentFee,
		),
	}

	watch(onRestartRequired, t.currency)

	return t
}

// Name implements Tab.
func (t *Finance) Name() string { return "finance" }

// Title implements Tab.
func (t *Finance) Title() string { return "Finance" }

// Controls implements Tab.
func (t *Finance) Controls() []form.Control {
	return []form.Control{t.currency, t.defaultFrequency, t.installmentFee}
}

// Collect implements Tab.
func (t *Finance) Collect(m settings.Model) settings.Model {
	m.Currency = t.currency.Value()
	m.DefaultFrequency = t.defaultFrequency.Value()
	m.InstallmentFee = t.installmentFee.Value()

	return m
}

// Apply implements Tab.
func (t *Finance) Apply(m settings.Model) {
	t.currency.Set(m.Currency)
	t.defaultFrequency.Set(m.DefaultFrequency)
	t.installmentFee.Set(m.InstallmentFee)
}
