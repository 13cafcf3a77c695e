// Package stubapi serves a small offline stand-in for the directory API:
// POST /auth/login and GET /users, with the same request and response
// shapes as the public demo service. cmd/stubapi runs it for local
// development; the client tests run it under httptest.
package stubapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTokenTTL = 60 * time.Minute

type Server struct {
	users  []map[string]any
	secret []byte
	now    func() time.Time
	log    logging.Logger
}

type Option func(*Server)

// WithClock overrides the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger sets the logger for request logs. The default discards them.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New loads the fixture users. It panics if the embedded fixtures are not
// valid JSON.
func New(secret []byte, opts ...Option) *Server {
	s := &Server{secret: secret, now: time.Now, log: logging.Nop()}
	if err := json.Unmarshal([]byte(fixtureUsers), &s.users); err != nil {
		panic(err)
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Router returns the chi router serving both endpoints. Every request is
// logged with its chi request id.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Post("/auth/login", s.login)
	r.Get("/users", s.listUsers)
	return r
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info(r.Context(), "request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", s.now().Sub(start))
	})
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"`
}

var publicLoginFields = []string{"id", "username", "email", "firstName", "lastName", "gender", "image"}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password required")
		return
	}

	var found map[string]any
	for _, u := range s.users {
		if u["username"] == req.Username && u["password"] == req.Password {
			found = u
			break
		}
	}
	if found == nil {
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	ttl := defaultTokenTTL
	if req.ExpiresInMins > 0 {
		ttl = time.Duration(req.ExpiresInMins) * time.Minute
	}
	access, err := s.token(found, ttl)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	refresh, err := s.token(found, 30*24*time.Hour)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := project(found, publicLoginFields)
	out["accessToken"] = access
	out["refreshToken"] = refresh
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) token(u map[string]any, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"id":       u["id"],
		"username": u["username"],
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q.Get("limit"), 30)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	skip, err := intParam(q.Get("skip"), 0)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid skip")
		return
	}

	total := len(s.users)
	start := min(skip, total)
	end := total
	if limit > 0 {
		end = min(start+limit, total)
	}

	var fields []string
	if sel := q.Get("select"); sel != "" {
		fields = append([]string{"id"}, strings.Split(sel, ",")...)
	}

	users := make([]map[string]any, 0, end-start)
	for _, u := range s.users[start:end] {
		if fields != nil {
			users = append(users, project(u, fields))
			continue
		}
		full := project(u, nil)
		delete(full, "password")
		users = append(users, full)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"total": total,
		"skip":  skip,
		"limit": end - start,
	})
}

// project copies the named top-level fields; nil fields copies everything.
func project(u map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(u))
	if fields == nil {
		for k, v := range u {
			out[k] = v
		}
		return out
	}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if v, ok := u[f]; ok {
			out[f] = v
		}
	}
	return out
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
