package api

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"coord": func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		},
		"inc": func(i int) int { return i + 1 },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
