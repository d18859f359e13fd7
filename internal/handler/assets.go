package handler

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages and the stylesheet ship inside the binary.
//
//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates panics on a broken template; they are embedded, so that is a build defect.
func parseTemplates() *template.Template {
	return template.Must(template.New("console").ParseFS(templatesFS, "templates/*.html"))
}

// RegisterAssets mounts the embedded stylesheet under AssetsPrefix.
func RegisterAssets(r *gin.Engine) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS(AssetsPrefix, http.FS(sub))
}
