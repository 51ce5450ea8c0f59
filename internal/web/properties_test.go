//go:build property

package web_test

import (
	"html"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCRUDProperties checks the round-trip laws of the controllers for
// arbitrary names.
func TestCRUDProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	properties := gopter.NewProperties(parameters)

	name := gen.RegexMatch(`^[A-Za-z0-9<>&'"]([A-Za-z0-9<>&'" ]{0,38}[A-Za-z0-9<>&'"])?$`)

	properties.Property("create then index lists the author exactly once", prop.ForAll(
		func(label string) bool {
			app := newTestApp(t)
			app.signIn("prop")
			rec := app.post("/blog/authors", url.Values{"name": {label}})
			if rec.Code != http.StatusSeeOther {
				return false
			}
			index := app.get("/blog/authors").Body.String()
			return linkCount(index, "/blog/authors", html.EscapeString(label)) == 1
		},
		name,
	))

	properties.Property("update then show reflects the new name", prop.ForAll(
		func(first, second string) bool {
			app := newTestApp(t)
			app.signIn("prop")
			app.post("/survey/forms", url.Values{"name": {first}})
			id := linkID(t, app.get("/survey/forms").Body.String(), "/survey/forms", html.EscapeString(first))

			rec := app.post("/survey/forms/"+id, url.Values{"name": {second}})
			if rec.Code != http.StatusSeeOther {
				return false
			}
			show := app.get("/survey/forms/" + id).Body.String()
			return strings.Contains(show, "<h1>"+html.EscapeString(second)+"</h1>")
		},
		name, name,
	))

	properties.Property("delete then index omits the category", prop.ForAll(
		func(label string) bool {
			app := newTestApp(t)
			app.signIn("prop")
			app.post("/blog/categories", url.Values{"title": {label}})
			id := linkID(t, app.get("/blog/categories").Body.String(), "/blog/categories", html.EscapeString(label))

			app.post("/blog/categories/"+id+"/delete", nil)
			index := app.get("/blog/categories").Body.String()
			return linkCount(index, "/blog/categories", html.EscapeString(label)) == 0 &&
				app.get("/blog/categories/"+id).Code == http.StatusNotFound
		},
		name,
	))

	properties.TestingRun(t)
}
