// Package entries lists every settings key with its type, default, current
// value and whether the backend holds an entry for it.
package entries

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
	"github.com/storefront-admin/storefront-admin/internal/web/handler/dashboard"
	"github.com/storefront-admin/storefront-admin/internal/web/navigation"
)

const (
	// Path is the path of the settings entries page.
	Path = handler.RootPath + "settings/entries"

	// TemplateName is the name of the settings entries template.
	TemplateName = "settings/entries"

	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 25

	maxPageSize = 100
)

// Entry is one row of the table.
type Entry struct {
	Key     string
	Type    string
	Default string
	Value   string
	Stored  bool
}

// Data represents the data passed to the template.
type Data struct {
	Entries     []Entry
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasPrevPage bool
	HasNextPage bool
	PrevPage    int
	NextPage    int
	SearchQuery string
	FilterType  string
	Types       []string
}

// Service is the settings entries handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store *settings.Store
}

// Handler is the settings entries handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, store *settings.Store) {
	if app == nil || cfg == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = store

	app.Get(Path, s.Get)
}

// Get renders one page of the filtered entries.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Stored settings", "settings", "entries").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb("Settings", "/settings", false).
		AddBreadcrumb("Stored settings", Path, true)

	page, pageSize := getPaginationParams(c)
	searchQuery, filterType := c.Query("search"), c.Query("type")

	m := s.store.Load(settings.Default())
	rows := make([]Entry, 0, len(settings.Fields()))

	stored, err := s.store.StoredKeys()
	if err != nil {
		log.Warn().Err(err).Msg("can't list stored settings keys")
	}

	for _, f := range settings.Fields() {
		current, _ := m.Value(f.Key)
		e := Entry{
			Key:     f.Key,
			Type:    f.Type.String(),
			Default: f.Default.String(),
			Value:   current.String(),
			Stored:  stored[f.Key],
		}

		if includeEntry(e, searchQuery, filterType) {
			rows = append(rows, e)
		}
	}

	totalItems := len(rows)
	totalPages, page := computeTotalPagesAndAdjust(totalItems, pageSize, page)
	startIdx, endIdx := pageSliceBounds(totalItems, pageSize, page)

	data := buildData(rows[startIdx:endIdx], page, pageSize, totalItems, totalPages, searchQuery, filterType)

	log.Debug().
		Int("total_entries", totalItems).
		Int("page", page).
		Str("search", searchQuery).
		Str("filter_type", filterType).
		Msg("settings entries listed")

	bind := handler.PageData(s.cfg, m, nav)
	bind["Data"] = data

	return c.Render(TemplateName, bind, handler.BaseLayout)
}

// getPaginationParams parses and normalizes page and pageSize query parameters.
func getPaginationParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// includeEntry returns true if the entry matches search and type filter.
func includeEntry(e Entry, searchQuery, filterType string) bool {
	if searchQuery != "" && !containsFold(e.Key, searchQuery) && !containsFold(e.Value, searchQuery) {
		return false
	}

	return filterType == "" || strings.EqualFold(e.Type, filterType)
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// computeTotalPagesAndAdjust computes total pages and adjusts the page into range.
func computeTotalPagesAndAdjust(totalItems, pageSize, page int) (int, int) {
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	return totalPages, page
}

// pageSliceBounds calculates start and end indices for slicing a page.
func pageSliceBounds(totalItems, pageSize, page int) (int, int) {
	startIdx := max((page-1)*pageSize, 0)
	endIdx := min(startIdx+pageSize, totalItems)

	return min(startIdx, endIdx), endIdx
}

func buildData(rows []Entry, page, pageSize, totalItems, totalPages int, searchQuery, filterType string) Data {
	return Data{
		Entries:     rows,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
		SearchQuery: searchQuery,
		FilterType:  filterType,
		Types: []string{
			settings.Text.String(), settings.Integer.String(), settings.Float.String(), settings.Boolean.String(),
		},
	}
}
