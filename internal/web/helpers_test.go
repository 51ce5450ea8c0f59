package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/quire/internal/config"
	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/service/auth"
	"github.com/phrazzld/quire/internal/store/memstore"
	"github.com/phrazzld/quire/internal/web"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testApp drives the web handlers over an in-memory store and keeps the
// session cookie between requests like a browser.
type testApp struct {
	t       *testing.T
	handler http.Handler
	stores  *memstore.Stores
	users   service.UserService
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	stores := memstore.NewStores()
	l, _ := logger.NewTestLogger()
	verifier := auth.NewBcryptVerifier(bcrypt.MinCost)
	users := service.NewUserService(stores.Users, stores.Tx, verifier, verifier, l)
	posts := service.NewPostService(stores.Posts, stores.Categories, stores.Authors, stores.Tx, l)

	h := web.New(web.Deps{
		Posts:      posts,
		Users:      users,
		Categories: stores.Categories,
		Authors:    stores.Authors,
		Forms:      stores.Forms,
		Questions:  stores.Questions,
		Answers:    stores.Answers,
		Sessions:   web.NewSessionManager(config.SessionConfig{LifetimeHours: 1, CookieName: "quire"}),
		Logger:     l,
	})
	r := chi.NewRouter()
	h.Routes(r)

	return &testApp{
		t:       t,
		handler: r,
		stores:  stores,
		users:   users,
		cookies: map[string]*http.Cookie{},
	}
}

func (a *testApp) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(a.cookies, c.Name)
			continue
		}
		a.cookies[c.Name] = c
	}
	return rec
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, path, nil)
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return a.do(http.MethodPost, path, form)
}

// follow requests the Location of a 303 response.
func (a *testApp) follow(rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	a.t.Helper()
	require.Equal(a.t, http.StatusSeeOther, rec.Code, rec.Body.String())
	return a.get(rec.Header().Get("Location"))
}

// signIn registers an account and logs it in.
func (a *testApp) signIn(name string) {
	a.t.Helper()
	_, err := a.users.Register(context.Background(), name, name+"@example.com", "password123")
	require.NoError(a.t, err)

	rec := a.post("/login", url.Values{"identifier": {name}, "password": {"password123"}})
	require.Equal(a.t, http.StatusSeeOther, rec.Code)
	require.Equal(a.t, "/", rec.Header().Get("Location"))
}

var idPattern = `([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})`

// linkID finds the id of the entity linked as label in an index page.
func linkID(t *testing.T, html, collection, label string) string {
	t.Helper()
	re := regexp.MustCompile(`href="` + regexp.QuoteMeta(collection) + `/` + idPattern + `">` + regexp.QuoteMeta(label) + `</a>`)
	m := re.FindStringSubmatch(html)
	require.NotNil(t, m, "no link to %q in page", label)
	return m[1]
}

// linkCount counts index links labelled label.
func linkCount(html, collection, label string) int {
	re := regexp.MustCompile(`href="` + regexp.QuoteMeta(collection) + `/` + idPattern + `">` + regexp.QuoteMeta(label) + `</a>`)
	return len(re.FindAllString(html, -1))
}
