package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Notifications holds reminder switches.
type Notifications struct {
	upcomingDue *form.Checkbox
	lowStock    *form.Checkbox
}

// NewNotifications creates the Notifications tab seeded from m.
func NewNotifications(m settings.Model) *Notifications {
	return &Notifications{
		upcomingDue: form.NewBool(
			settings.KeyNotifyUpcomingDue, "Upcoming installment reminders", m.NotifyUpcomingDue,
		),
		lowStock: form.NewBool(settings.KeyNotifyLowStock, "Low-stock notifications", m.NotifyLowStock),
	}
}

// Name implements Tab.
func (t *Notifications) Name() string { return "notifications" }

// Title implements Tab.
func (t *Notifications) Title() string { return "Notifications" }

// Controls implements Tab.
func (t *Notifications) Controls() []form.Control {
	return []form.Control{t.upcomingDue, t.lowStock}
}

// Collect implements Tab.
func (t *Notifications) Collect(m settings.Model) settings.Model {
	m.NotifyUpcomingDue = t.upcomingDue.Value()
	m.NotifyLowStock = t.lowStock.Value()

	return m
}

// Apply implements Tab.
func (t *Notifications) Apply(m settings.Model) {
	t.upcomingDue.Set(m.NotifyUpcomingDue)
	t.lowStock.Set(m.NotifyLowStock)
}
