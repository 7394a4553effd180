package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shiptrack/internal/config"
	"shiptrack/internal/database"
	"shiptrack/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestMain moves to the module root so LoadHTMLGlob finds web/templates.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := os.Chdir("../.."); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testApp struct {
	router  *gin.Engine
	db      *gorm.DB
	export  string
	cookies []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.SeedUser(db, "admin", "admin123", models.RoleAdmin))
	require.NoError(t, database.SeedUser(db, "colaborador", "colab123", models.RoleCollaborator))

	exportPath := filepath.Join(t.TempDir(), "records.xlsx")
	cfg := &config.Config{
		SessionSecret: "test-secret",
		ExportPath:    exportPath,
	}

	return &testApp{
		router: NewRouter(cfg, db),
		db:     db,
		export: exportPath,
	}
}

func (a *testApp) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		a.cookies = set
	}
	return w
}

func (a *testApp) login(t *testing.T, username, password string) {
	t.Helper()

	w := a.do(t, http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, w.Code, "login should redirect: %s", w.Body.String())
}

func recordForm(date, note, invoice, supplier, qty string) url.Values {
	return url.Values{
		"date":              {date},
		"delivery_note":     {note},
		"invoice_reference": {invoice},
		"supplier":          {supplier},
		"quantity":          {qty},
	}
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/history", "/export"} {
		w := app.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Result().Header.Get("Location"), path)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/login", url.Values{
		"username": {"ghost"},
		"password": {"admin123"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLifecycleScenario(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "admin", "admin123")

	// create
	w := app.do(t, http.MethodPost, "/new", recordForm("2024-01-15", "A1", "F1", "Acme", "12.5"))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	w = app.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
	assert.Contains(t, w.Body.String(), "A1")

	// edit
	w = app.do(t, http.MethodGet, "/edit/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/edit/1", recordForm("2024-02-01", "A1", "F1", "Globex", "3"))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	w = app.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), "Globex")
	assert.NotContains(t, w.Body.String(), "Acme")

	// delete
	w = app.do(t, http.MethodGet, "/delete/1", nil)
	require.Equal(t, http.StatusFound, w.Code)

	// full trail, newest first
	w = app.do(t, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "create")
	assert.Contains(t, body, "edit")
	assert.Contains(t, body, "delete")
	assert.Less(t, strings.Index(body, "delete"), strings.Index(body, "create"))

	// export writes the configured file
	w = app.do(t, http.MethodGet, "/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spreadsheet updated")
	_, err := os.Stat(app.export)
	assert.NoError(t, err)
}

func TestCollaboratorCanCreateButNotMutate(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "colaborador", "colab123")

	w := app.do(t, http.MethodPost, "/new", recordForm("2024-01-15", "A1", "F1", "Acme", "12.5"))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	// role-gated routes answer 403, not a redirect
	for _, path := range []string{"/edit/1", "/delete/1"} {
		w = app.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
	w = app.do(t, http.MethodPost, "/edit/1", recordForm("2024-02-01", "", "", "Evil", "1"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// record untouched
	w = app.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), "Acme")
	assert.NotContains(t, w.Body.String(), "Evil")
}

func TestMalformedInputIsRejected(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "admin", "admin123")

	w := app.do(t, http.MethodPost, "/new", recordForm("not-a-date", "A1", "F1", "Acme", "1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/new", recordForm("2024-01-15", "A1", "F1", "Acme", "a lot"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing was stored
	var count int64
	require.NoError(t, app.db.Model(&models.Record{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingRecordReports404AndKeepsHistoryClean(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "admin", "admin123")

	w := app.do(t, http.MethodGet, "/delete/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, app.db.Model(&models.AuditEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "admin", "admin123")

	w := app.do(t, http.MethodGet, "/logout", nil)
	require.Equal(t, http.StatusFound, w.Code)

	w = app.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Result().Header.Get("Location"))
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
