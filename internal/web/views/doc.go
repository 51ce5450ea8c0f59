// Package views holds the compiled HTML components of the web interface.
//
// Every component is a templ.Component. The layout and the static pages are
// templ sources (*.templ) compiled into *_templ.go; the entity pages and editors
// are written in Go against htmlWriter. Index pages render one row per entity,
// and editors render the create and edit forms. All entity values are written
// through templ.EscapeString, and every href passes templ.URL.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.906 generate -path .
