package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/web/navigation"
)

// PageData returns the bindings every page shares with the base layout.
func PageData(cfg *config.Config, m settings.Model, nav *navigation.Context) fiber.Map {
	return fiber.Map{
		"Title":      cfg.Title,
		"StoreName":  m.StoreName,
		"Theme":      m.Theme,
		"Navigation": nav,
	}
}
