package stubapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("stub-secret")

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success_IssuesExpiringToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := New(secret, WithClock(func() time.Time { return now })).Router()

	rec := do(t, h, http.MethodPost, "/auth/login", `{"username":"emilys","password":"emilyspass","expiresInMins":30}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "emilys", out["username"])
	assert.EqualValues(t, 1, out["id"])
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "address")

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(out["accessToken"].(string), claims, func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*time.Minute).Unix(), exp.Unix())
}

func TestLogin_Failures(t *testing.T) {
	h := New(secret).Router()

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"bad body", `{`, "Invalid request body"},
		{"missing password", `{"username":"emilys"}`, "Username and password required"},
		{"wrong password", `{"username":"emilys","password":"nope"}`, "Invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.msg+`"}`, rec.Body.String())
		})
	}
}

func TestListUsers_LimitZeroReturnsAllWithoutPasswords(t *testing.T) {
	h := New(secret).Router()

	rec := do(t, h, http.MethodGet, "/users?limit=0&skip=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Users []map[string]any `json:"users"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 4, out.Total)
	require.Len(t, out.Users, 4)
	for _, u := range out.Users {
		assert.NotContains(t, u, "password")
		assert.Contains(t, u, "address")
	}
}

func TestListUsers_PagingAndSelect(t *testing.T) {
	h := New(secret).Router()

	rec := do(t, h, http.MethodGet, "/users?limit=2&skip=1&select=firstName,email", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Users, 2)
	assert.EqualValues(t, 2, out.Users[0]["id"])
	assert.Equal(t, "Michael", out.Users[0]["firstName"])
	assert.Len(t, out.Users[0], 3)

	rec = do(t, h, http.MethodGet, "/users?skip=100", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users":[]`)
}

func TestListUsers_BadParams(t *testing.T) {
	h := New(secret).Router()

	rec := do(t, h, http.MethodGet, "/users?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/users?skip=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
