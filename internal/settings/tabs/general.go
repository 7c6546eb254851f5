package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// General holds the store identity fields.
type General struct {
	storeName    *form.TextInput
	logoPath     *form.TextInput
	contactPhone *form.TextInput
	address      *form.TextInput
}

// NewGeneral creates the General tab seeded from m.
func NewGeneral(m settings.Model) *General {
	return &General{
		storeName:    form.NewText(settings.KeyStoreName, "Store name", m.StoreName),
		logoPath:     form.NewText(settings.KeyLogoPath, "Logo path", m.LogoPath),
		contactPhone: form.NewText(settings.KeyContactPhone, "Contact phone", m.ContactPhone),
		address:      form.NewText(settings.KeyAddress, "Address", m.Address),
	}
}

// Name implements Tab.
func (t *General) Name() string { return "general" }

// Title implements Tab.
func (t *General) Title() string { return "General" }

// Controls implements Tab.
func (t *General) Controls() []form.Control {
	return []form.Control{t.storeName, t.logoPath, t.contactPhone, t.address}
}

// Collect implements Tab.
func (t *General) Collect(m settings.Model) settings.Model {
	m.StoreName = t.storeName.Value()
	m.LogoPath = t.logoPath.Value()
	m.ContactPhone = t.contactPhone.Value()
	m.Address = t.address.Value()

	return m
}

// Apply implements Tab.
func (t *General) Apply(m settings.Model) {
	t.storeName.Set(m.StoreName)
	t.logoPath.Set(m.LogoPath)
	t.contactPhone.Set(m.ContactPhone)
	t.address.Set(m.Address)
}
