// Package dashboard provides the landing pages that read the persisted settings.
package dashboard

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/dialog"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
	"github.com/storefront-admin/storefront-admin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// QueryNotice names a notice to show on top of the page.
	QueryNotice = "notice"

	// NoticeRestart shows the restart required notice.
	NoticeRestart = "restart"
)

// Pages maps the startup page choices to their paths.
var Pages = map[string]string{ //nolint:gochecknoglobals
	"Dashboard": Path,
	"Sales":     handler.RootPath + "sales",
	"Inventory": handler.RootPath + "inventory",
	"Reports":   handler.RootPath + "reports",
}

// PathOf returns the path of a startup page, the dashboard for unknown pages.
func PathOf(page string) string {
	if p, ok := Pages[page]; ok {
		return p
	}

	return Path
}

var dateTokens = strings.NewReplacer("YYYY", "2006", "MM", "01", "DD", "02") //nolint:gochecknoglobals

// DateLayout converts a date_format setting such as DD/MM/YYYY into a time layout.
func DateLayout(format string) string {
	return dateTokens.Replace(format)
}

// Data is the template data of a landing page.
type Data struct {
	Page     string
	Today    string
	Notice   string
	Settings settings.Model
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store *settings.Store
	now   func() time.Time
}

// Handler is the dashboard handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers one route per landing page.
func (s *Service) Init(app *fiber.App, cfg *config.Config, store *settings.Store) {
	if app == nil || cfg == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = store

	if s.now == nil {
		s.now = time.Now
	}

	for page, path := range Pages {
		app.Get(path, s.handler(page))
	}
}

func (s *Service) handler(page string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return s.Get(c, page)
	}
}

// Get renders the landing page called page from freshly loaded settings.
func (s *Service) Get(c *fiber.Ctx, page string) error {
	m := s.store.Load(settings.Default())

	nav := navigation.NewContext(page, strings.ToLower(page), strings.ToLower(page)).
		AddBreadcrumb("Home", Path, page == "Dashboard")

	if page != "Dashboard" {
		nav.AddBreadcrumb(page, PathOf(page), true)
	}

	data := Data{
		Page:     page,
		Today:    s.now().Format(DateLayout(m.DateFormat)),
		Settings: m,
	}

	if c.Query(QueryNotice) == NoticeRestart {
		data.Notice = dialog.RestartNotice
	}

	bind := handler.PageData(s.cfg, m, nav)
	bind["Data"] = data

	return c.Render(TemplateName, bind, handler.BaseLayout)
}
