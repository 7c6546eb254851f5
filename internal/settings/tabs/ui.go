package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// UI holds appearance settings. Language and date format require a restart.
type UI struct {
	language    *form.Select
	theme       *form.Select
	dateFormat  *form.Select
	startupPage *form.Select
}

// NewUI creates the UI tab seeded from m.
func NewUI(m settings.Model, onRestartRequired func()) *UI {
	t := &UI{
		language:    form.NewChoice(settings.KeyLanguage, "Language", Languages, m.Language),
		theme:       form.NewChoice(settings.KeyTheme, "Theme", Themes, m.Theme),
		dateFormat:  form.NewChoice(settings.KeyDateFormat, "Date format", DateFormats, m.DateFormat),
		startupPage: form.NewChoice(settings.KeyStartupPage, "Startup page", StartupPages, m.StartupPage),
	}

	watch(onRestartRequired, t.language, t.dateFormat)

	return t
}

// Name implements Tab.
func (t *UI) Name() string { return "ui" }

// Title implements Tab.
func (t *UI) Title() string { return "UI & App" }

// Controls implements Tab.
func (t *UI) Controls() []form.Control {
	return []form.Control{t.language, t.theme, t.dateFormat, t.startupPage}
}

// Collect implements Tab.
func (t *UI) Collect(m settings.Model) settings.Model {
	m.Language = t.language.Value()
	m.Theme = t.theme.Value()
	m.DateFormat = t.dateFormat.Value()
	m.StartupPage = t.startupPage.Value()

	return m
}

// Apply implements Tab.
func (t *UI) Apply(m settings.Model) {
	t.language.Set(m.Language)
	t.theme.Set(m.Theme)
	t.dateFormat.Set(m.DateFormat)
	t.startupPage.Set(m.StartupPage)
}
