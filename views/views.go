// Package views embeds the portal's html templates so the app (and its
// tests) can render without a working directory dependency.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html partials/*.html
var files embed.FS

// Engine builds the template engine over the embedded files.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
