// Package navigation provides utilities for managing navigation state, breadcrumbs and page tabs.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// TabItem represents one tab of a tabbed page.
type TabItem struct {
	Name   string
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	Tabs          []TabItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
		Tabs:          make([]TabItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// AddTab adds a tab to the context. The tab is active when name is the active page.
func (c *Context) AddTab(name, title, url string) *Context {
	c.Tabs = append(c.Tabs, TabItem{
		Name:   name,
		Title:  title,
		URL:    url,
		Active: name == c.ActivePage,
	})

	return c
}

// ActiveTab returns the active tab, if any.
func (c *Context) ActiveTab() (TabItem, bool) {
	for _, t := range c.Tabs {
		if t.Active {
			return t, true
		}
	}

	return TabItem{}, false
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
