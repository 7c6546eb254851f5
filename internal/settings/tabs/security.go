package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Security holds lock and refund policy settings.
type Security struct {
	autoLock      *form.IntInput
	pinForRefunds *form.Checkbox
}

// NewSecurity creates the Security tab seeded from m.
func NewSecurity(m settings.Model) *Security {
	return &Security{
		autoLock: form.NewInt(settings.KeyAutoLockMinutes, "Auto-lock after (minutes)", 0, 120, m.AutoLockMinutes),
		pinForRefunds: form.NewBool(
			settings.KeyRequirePINForRefunds, "Require PIN for refunds", m.RequirePINForRefunds,
		),
	}
}

// Name implements Tab.
func (t *Security) Name() string { return "security" }

// Title implements Tab.
func (t *Security) Title() string { return "Security" }

// Controls implements Tab.
func (t *Security) Controls() []form.Control {
	return []form.Control{t.autoLock, t.pinForRefunds}
}

// Collect implements Tab.
func (t *Security) Collect(m settings.Model) settings.Model {
	m.AutoLockMinutes = t.autoLock.Value()
	m.RequirePINForRefunds = t.pinForRefunds.Value()

	return m
}

// Apply implements Tab.
func (t *Security) Apply(m settings.Model) {
	t.autoLock.Set(m.AutoLockMinutes)
	t.pinForRefunds.Set(m.RequirePINForRefunds)
}
