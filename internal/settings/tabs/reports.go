package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Reports holds report defaults.
type Reports struct {
	period          *form.Select
	showOutstanding *form.Checkbox
	showSalesTrend  *form.Checkbox
}

// NewReports creates the Reports tab seeded from m.
func NewReports(m settings.Model) *Reports {
	return &Reports{
		period: form.NewChoice(
			settings.KeyDefaultReportPeriod, "Default report period", ReportPeriods, m.DefaultReportPeriod,
		),
		showOutstanding: form.NewBool(
			settings.KeyShowOutstandingMetric, "Show Outstanding metric", m.ShowOutstandingMetric,
		),
		showSalesTrend: form.NewBool(settings.KeyShowSalesTrend, "Show Sales Trend graph", m.ShowSalesTrend),
	}
}

// Name implements Tab.
func (t *Reports) Name() string { return "reports" }

// Title implements Tab.
func (t *Reports) Title() string { return "Reports" }

// Controls implements Tab.
func (t *Reports) Controls() []form.Control {
	return []form.Control{t.period, t.showOutstanding, t.showSalesTrend}
}

// Collect implements Tab.
func (t *Reports) Collect(m settings.Model) settings.Model {
	m.DefaultReportPeriod = t.period.Value()
	m.ShowOutstandingMetric = t.showOutstanding.Value()
	m.ShowSalesTrend = t.showSalesTrend.Value()

	return m
}

// Apply implements Tab.
func (t *Reports) Apply(m settings.Model) {
	t.period.Set(m.DefaultReportPeriod)
	t.showOutstanding.Set(m.ShowOutstandingMetric)
	t.showSalesTrend.Set(m.ShowSalesTrend)
}
