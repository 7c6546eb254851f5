package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Inventory holds stock alert settings.
type Inventory struct {
	lowStockAlerts    *form.Checkbox
	lowStockThreshold *form.IntInput
	barcodeEnabled    *form.Checkbox
}

// NewInventory creates the Inventory tab seeded from m.
func NewInventory(m settings.Model) *Inventory {
	return &Inventory{
		lowStockAlerts: form.NewBool(settings.KeyLowStockAlerts, "Low-stock alerts", m.LowStockAlerts),
		lowStockThreshold: form.NewInt(
			settings.KeyLowStockThreshold, "Low-stock threshold", 0, 100_000, m.LowStockThreshold,
		),
		barcodeEnabled: form.NewBool(settings.KeyBarcodeEnabled, "Enable barcode scanning", m.BarcodeEnabled),
	}
}

// Name implements Tab.
func (t *Inventory) Name() string { return "inventory" }

// Title implements Tab.
func (t *Inventory) Title() string { return "Inventory" }

// Controls implements Tab.
func (t *Inventory) Controls() []form.Control {
	return []form.Control{t.lowStockAlerts, t.lowStockThreshold, t.barcodeEnabled}
}

// Collect implements Tab.
func (t *Inventory) Collect(m settings.Model) settings.Model {
	m.LowStockAlerts = t.lowStockAlerts.Value()
	m.LowStockThreshold = t.lowStockThreshold.Value()
	m.BarcodeEnabled = t.barcodeEnabled.Value()

	return m
}

// Apply implements Tab.
func (t *Inventory) Apply(m settings.Model) {
	t.lowStockAlerts.Set(m.LowStockAlerts)
	t.lowStockThreshold.Set(m.LowStockThreshold)
	t.barcodeEnabled.Set(m.BarcodeEnabled)
}
