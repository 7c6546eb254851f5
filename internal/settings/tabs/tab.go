// Package tabs implements one controller per settings category.
//
// A tab owns a disjoint set of settings keys. It is seeded from a model
// snapshot, collects a model from the live state of its controls and can be
// re-synced from a model after a reset.
package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Tab is the controller of one settings category.
type Tab interface {
	// Name is the stable identifier used in URLs and form field names.
	Name() string
	// Title is the human readable tab caption.
	Title() string
	Controls() []form.Control
	// Collect returns m with this tab's fields replaced by the current control values.
	Collect(m settings.Model) settings.Model
	// Apply pushes m's values into the controls without running change hooks.
	Apply(m settings.Model)
}

// Choice lists offered by the tabs.
var (
	Currencies    = []string{"USD", "EUR", "DZD"}
	Frequencies   = []string{"Weekly", "Biweekly", "Monthly"}
	ReportPeriods = []string{"Daily", "Weekly", "Monthly"}
	Languages     = []string{"English", "Français", "العربية"}
	Themes        = []string{"Light", "Dark", "System"}
	DateFormats   = []string{"DD/MM/YYYY", "MM/DD/YYYY", "YYYY-MM-DD"}
	StartupPages  = []string{"Dashboard", "Sales", "Inventory", "Reports"}
)

// All builds every tab in commit order. onRestartRequired runs when the user
// changes a field that only takes effect after a restart; it may be nil.
func All(m settings.Model, onRestartRequired func()) []Tab {
	return []Tab{
		NewGeneral(m),
		NewInventory(m),
		NewFinance(m, onRestartRequired),
		NewReports(m),
		NewNotifications(m),
		NewSecurity(m),
		NewUI(m, onRestartRequired),
		NewBackup(m),
	}
}

// Find returns the tab called name.
func Find(all []Tab, name string) (Tab, bool) {
	for _, t := range all {
		if t.Name() == name {
			return t, true
		}
	}

	return nil, false
}

func watch(onRestartRequired func(), controls ...form.Control) {
	if onRestartRequired == nil {
		return
	}

	for _, c := range controls {
		c.OnChange(onRestartRequired)
	}
}
