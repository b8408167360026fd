package finder

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplateName = "page.html"

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/"+pageTemplateName))
