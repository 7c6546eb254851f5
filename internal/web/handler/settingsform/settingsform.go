// Package settingsform serves the tabbed settings page that drives the
// settings dialog.
//
// Only one dialog exists at a time. Every request holds the handler's lock for
// its whole duration, so dialog events are processed one after the other.
package settingsform

import (
	"fmt"
	"net/url"
	"slices"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/dialog"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
	"github.com/storefront-admin/storefront-admin/internal/settings/tabs"
	"github.com/storefront-admin/storefront-admin/internal/uniuri"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
	"github.com/storefront-admin/storefront-admin/internal/web/handler/dashboard"
	"github.com/storefront-admin/storefront-admin/internal/web/navigation"
)

const (
	// Path is the path of the settings page.
	Path = handler.RootPath + "settings"

	// TemplateName is the name of the settings template.
	TemplateName = "settings/settings"

	// FieldToken carries the token of the dialog the form was rendered from.
	FieldToken = "token"

	// FieldAction selects the dialog operation.
	FieldAction = "action"

	// FieldConfirm must be "yes" for a restore to happen.
	FieldConfirm = "confirm"
)

// Actions.
const (
	ActionApply   = "apply"
	ActionOK      = "ok"
	ActionCancel  = "cancel"
	ActionRestore = "restore"
)

// TabView is the render data of one tab.
type TabView struct {
	Name     string
	Title    string
	Active   bool
	Controls []form.View
}

// Data is the template data of the settings page.
type Data struct {
	Token     string
	ActiveTab string
	Tabs      []TabView
	Flash     Flash
	Restart   bool
}

// Service is the settings page handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store *settings.Store

	mu      sync.Mutex
	dialog  *dialog.Dialog
	notices *notices
	token   string
}

// Handler is the settings page handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, store *settings.Store) {
	if app == nil || cfg == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = store

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// FieldName is the form field of control key on tab.
func FieldName(tab, key string) string {
	return tab + "." + key
}

// Get renders the settings page, opening a dialog when none is open.
func (s *Service) Get(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureOpen()

	return s.render(c, fiber.StatusOK)
}

// Post pushes the submitted values into the controls and runs the action.
func (s *Service) Post(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialog == nil || s.dialog.State() == dialog.Closed || c.FormValue(FieldToken) != s.token {
		log.Debug().Msg("settings form submitted for a stale dialog")

		return c.Status(fiber.StatusConflict).
			SendString("The settings dialog was closed or reopened elsewhere. Reload the settings page.")
	}

	action := c.FormValue(FieldAction, ActionApply)

	switch action {
	case ActionCancel:
		if err := s.dialog.Cancel(); err != nil {
			return err
		}

		return c.Redirect(dashboard.Path, fiber.StatusSeeOther)
	case ActionRestore:
		s.notices.confirmed = c.FormValue(FieldConfirm) == "yes"
		defer func() { s.notices.confirmed = false }()

		if _, err := s.dialog.RestoreDefaults(); err != nil {
			return s.render(c, fiber.StatusInternalServerError)
		}

		return s.render(c, fiber.StatusOK)
	case ActionApply, ActionOK:
	default:
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown action %q", action))
	}

	if errs := s.edit(c); len(errs) > 0 {
		s.notices.errors = append(s.notices.errors, errs...)

		return s.render(c, fiber.StatusBadRequest)
	}

	if action == ActionOK {
		if err := s.dialog.OK(); err != nil {
			return s.render(c, fiber.StatusInternalServerError)
		}

		target := dashboard.Path
		if slices.Contains(s.notices.drain().Infos, dialog.RestartNotice) {
			target += "?" + dashboard.QueryNotice + "=" + dashboard.NoticeRestart
		}

		return c.Redirect(target, fiber.StatusSeeOther)
	}

	if err := s.dialog.Apply(); err != nil {
		return s.render(c, fiber.StatusInternalServerError)
	}

	return s.render(c, fiber.StatusOK)
}

// edit applies the submitted values as user edits. Missing checkboxes are
// unchecked, other missing fields keep their value.
func (s *Service) edit(c *fiber.Ctx) []string {
	var errs []string

	for _, tab := range s.dialog.Tabs() {
		for _, ctl := range tab.Controls() {
			name := FieldName(tab.Name(), ctl.Key())
			if ctl.Kind() != form.KindBool && !submitted(c, name) {
				continue
			}

			if err := ctl.Edit(c.FormValue(name)); err != nil {
				errs = append(errs, err.Error())
			}
		}
	}

	return errs
}

func submitted(c *fiber.Ctx, name string) bool {
	if c.Request().PostArgs().Has(name) {
		return true
	}

	mf, err := c.MultipartForm()
	if err != nil {
		return false
	}

	_, ok := mf.Value[name]

	return ok
}

func (s *Service) ensureOpen() {
	if s.dialog != nil && s.dialog.State() != dialog.Closed {
		return
	}

	s.notices = &notices{}
	s.dialog = dialog.Open(s.store, s.notices)
	s.token = uniuri.New()

	log.Debug().Msg("settings dialog opened")
}

func (s *Service) render(c *fiber.Ctx, status int) error {
	all := s.dialog.Tabs()

	active := c.Query("tab")
	if _, ok := tabs.Find(all, active); !ok {
		active = all[0].Name()
	}

	nav := navigation.NewContext("Settings", "settings", active).
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb("Settings", Path, true)

	views := make([]TabView, 0, len(all))

	for _, t := range all {
		nav.AddTab(t.Name(), t.Title(), Path+"?tab="+url.QueryEscape(t.Name()))

		v := TabView{Name: t.Name(), Title: t.Title(), Active: t.Name() == active}
		for _, ctl := range t.Controls() {
			v.Controls = append(v.Controls, ctl.View())
		}

		views = append(views, v)
	}

	data := Data{
		Token:     s.token,
		ActiveTab: active,
		Tabs:      views,
		Flash:     s.notices.drain(),
		Restart:   s.dialog.RestartRequired(),
	}

	bind := handler.PageData(s.cfg, s.dialog.Model(), nav)
	bind["Data"] = data

	return c.Status(status).Render(TemplateName, bind, handler.BaseLayout)
}
