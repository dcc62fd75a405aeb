package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "sessioncookie"

func serve(app *iris.Application, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

// sessionCookie returns the last live session cookie the response sets.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.Value != "" && c.MaxAge >= 0 {
			found = c
		}
	}
	return found
}

func TestSession_OneCookiePerRequest(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Build())

	rec := serve(app, "GET", "/IsLogin", "")
	assert.Len(t, rec.Result().Cookies(), 1)
	assert.Len(t, rec.Header()["Set-Cookie"], 1)

	rec = serve(app, "POST", "/register", `{"username":"ada","password":"lovelace"}`)
	require.Equal(t, iris.StatusCreated, rec.Code)
	assert.Len(t, rec.Header()["Set-Cookie"], 1)
}

func TestSession_LoginRotatesID(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Build())

	require.Equal(t, iris.StatusCreated,
		serve(app, "POST", "/register", `{"username":"ada","password":"lovelace"}`).Code)

	before := sessionCookie(serve(app, "GET", "/IsLogin", ""))
	require.NotNil(t, before)

	rec := serve(app, "POST", "/login", `{"username":"ada","password":"lovelace"}`, before)
	require.Equal(t, iris.StatusOK, rec.Code)
	after := sessionCookie(rec)
	require.NotNil(t, after)
	assert.NotEqual(t, before.Value, after.Value)

	assert.Contains(t, serve(app, "GET", "/IsLogin", "", before).Body.String(), `"status":"failure"`)
	assert.Contains(t, serve(app, "GET", "/IsLogin", "", after).Body.String(), `"status":"success"`)

	question := `{"text":"Balance this equation","exam_year_id":1,"exam_type_id":1}`
	assert.Equal(t, iris.StatusForbidden, serve(app, "POST", "/question", question, before).Code)
	assert.Equal(t, iris.StatusCreated, serve(app, "POST", "/question", question, after).Code)
}

func TestSession_FailedLoginKeepsID(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Build())

	before := sessionCookie(serve(app, "GET", "/IsLogin", ""))
	require.NotNil(t, before)

	rec := serve(app, "POST", "/login", `{"username":"ada","password":"wrong"}`, before)
	require.Equal(t, iris.StatusUnauthorized, rec.Code)
	if c := sessionCookie(rec); c != nil {
		assert.Equal(t, before.Value, c.Value)
	}
}
