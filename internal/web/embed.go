package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"

	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/storefront-admin/storefront-admin/internal/web/handler/settingsform"
)

const (
	templateDir = "templates"
	templateExt = ".gohtml"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS serves the embedded templates directory as the root.
type templateEmbedFS struct {
	content embed.FS
}

// Open opens name below templates/.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join(templateDir, name))
}

// newTemplateEngine loads the embedded templates, or the ones in the source
// tree with reloading in dev mode.
func newTemplateEngine(devMode bool) *html.Engine {
	var engine *html.Engine

	if devMode {
		engine = html.New("./internal/web/"+templateDir, templateExt)
		engine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	} else {
		engine = html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), templateExt)
	}

	engine.AddFunc("fieldName", settingsform.FieldName)

	return engine
}
