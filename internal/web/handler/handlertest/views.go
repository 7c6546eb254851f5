// Package handlertest provides a fiber view engine for handler tests.
package handlertest

import (
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Views records the last rendered template instead of executing it.
type Views struct {
	mu      sync.Mutex
	name    string
	layout  string
	binding fiber.Map
}

var _ fiber.Views = (*Views)(nil)

// Load implements fiber.Views.
func (v *Views) Load() error { return nil }

// Render implements fiber.Views. It writes the template name as the body.
func (v *Views) Render(w io.Writer, name string, binding any, layout ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.name = name
	v.layout = ""

	if len(layout) > 0 {
		v.layout = layout[0]
	}

	v.binding, _ = binding.(fiber.Map)

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the template name, layout and bindings of the last render.
func (v *Views) Last() (name, layout string, binding fiber.Map) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.name, v.layout, v.binding
}

// NewApp creates a fiber app rendering through views.
func NewApp(views *Views) *fiber.App {
	return fiber.New(fiber.Config{
		Views:                 views,
		DisableStartupMessage: true,
	})
}
