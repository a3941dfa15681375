package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"contactbook/src/core/domain"
	"contactbook/src/core/ports"
	"contactbook/src/core/ports/mocks"
	"contactbook/src/infra/config"
	"contactbook/src/infra/db"
	"contactbook/src/infra/hasher"
	"contactbook/src/infra/logger"
	"contactbook/src/infra/repo"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSOrigin: "*"},
		Log:    config.LogConfig{Level: "error"},
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Field     string `json:"field"`
		RequestID string `json:"request_id"`
		Fields    []struct {
			Field string `json:"field"`
			Tag   string `json:"tag"`
		} `json:"fields"`
	} `json:"error"`
	Count int `json:"count"`
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func newMockServer() (*Server, *mocks.ContactRepository, *mocks.UserRepository) {
	srv, contacts, users, _ := newMockServerWithProbe()
	return srv, contacts, users
}

func newMockServerWithProbe() (*Server, *mocks.ContactRepository, *mocks.UserRepository, *mocks.ExternalService) {
	contacts := new(mocks.ContactRepository)
	users := new(mocks.UserRepository)
	database := new(mocks.ExternalService)
	srv := New(testConfig(), logger.Nop(), Deps{
		Contacts: contacts,
		Users:    users,
		Hasher:   hasher.NewBcrypt(bcrypt.MinCost),
		Probes:   map[string]ports.ExternalService{"database": database},
	})
	return srv, contacts, users, database
}

func TestServer_Health(t *testing.T) {
	srv, _, _, database := newMockServerWithProbe()
	database.On("Health", mock.Anything).Return(nil).Once()
	database.On("Health", mock.Anything).Return(errors.New("down")).Once()

	w, _ := do(t, srv.Router(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = do(t, srv.Router(), http.MethodGet, "/health/detailed", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, srv.Router(), http.MethodGet, "/health/detailed", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestServer_ListContactsPaging(t *testing.T) {
	srv, contacts, _ := newMockServer()
	contacts.On("List", mock.Anything, domain.DefaultListLimit, 0).Return([]domain.Contact{{ID: 1, FirstName: "John"}}, nil)
	contacts.On("List", mock.Anything, 2, 4).Return([]domain.Contact{}, nil)

	w, env := do(t, srv.Router(), http.MethodGet, "/api/contacts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Count)

	w, env = do(t, srv.Router(), http.MethodGet, "/api/contacts?limit=2&offset=4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = do(t, srv.Router(), http.MethodGet, "/api/contacts?limit=501", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, srv.Router(), http.MethodGet, "/api/contacts?offset=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	contacts.AssertExpectations(t)
}

func TestServer_GetContactErrors(t *testing.T) {
	srv, contacts, _ := newMockServer()
	contacts.On("Get", mock.Anything, int64(7)).Return(nil, nil)
	contacts.On("Get", mock.Anything, int64(8)).Return(nil, errors.New("connection reset"))

	w, env := do(t, srv.Router(), http.MethodGet, "/api/contacts/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	w, env = do(t, srv.Router(), http.MethodGet, "/api/contacts/8", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "connection reset")
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.Error.RequestID)

	w, _ = do(t, srv.Router(), http.MethodGet, "/api/contacts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_CreateContactValidation(t *testing.T) {
	srv, contacts, _ := newMockServer()

	w, env := do(t, srv.Router(), http.MethodPost, "/api/contacts", map[string]any{
		"first_name":   "",
		"last_name":    "Doe",
		"email":        "nope",
		"phone_number": "1234567890",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	require.Len(t, env.Error.Fields, 2)
	assert.Equal(t, "first_name", env.Error.Fields[0].Field)
	assert.Equal(t, "email", env.Error.Fields[1].Field)

	w, _ = do(t, srv.Router(), http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "John", "last_name": "Doe", "email": "john@example.com",
		"phone_number": "1234567890", "birthday": "17.05.1990",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	contacts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServer_SignupConflict(t *testing.T) {
	srv, _, users := newMockServer()
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{ID: 1}, nil)

	w, env := do(t, srv.Router(), http.MethodPost, "/api/users", map[string]any{
		"username": "testuser", "email": "test@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email", env.Error.Field)
	assert.Equal(t, "Email already registered", env.Error.Message)
}

func TestServer_SignupPasswordOverBcryptByteLimit(t *testing.T) {
	srv, _, users := newMockServer()

	// 40 runes pass max=72 but encode to 80 bytes.
	w, env := do(t, srv.Router(), http.MethodPost, "/api/users", map[string]any{
		"username": "testuser", "email": "test@example.com", "password": strings.Repeat("é", 40),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	require.Len(t, env.Error.Fields, 1)
	assert.Equal(t, "password", env.Error.Fields[0].Field)
	assert.Equal(t, "maxbytes", env.Error.Fields[0].Tag)
	users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestServer_SignupMultibytePasswordWithinLimit(t *testing.T) {
	h := newStoreServer(t).Router()

	w, _ := do(t, h, http.MethodPost, "/api/users", map[string]any{
		"username": "testuser", "email": "test@example.com", "password": strings.Repeat("é", 36),
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _, _ := newMockServer()

	w, env := do(t, srv.Router(), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _, _ := newMockServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/contacts", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// newStoreServer wires the real repositories on a throwaway SQLite file.
func newStoreServer(t *testing.T) *Server {
	t.Helper()

	store, err := db.New(context.Background(), config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "api.db"),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.Migrate(context.Background()))

	return New(testConfig(), logger.Nop(), Deps{
		Contacts: repo.NewContactRepository(store, logger.Nop()),
		Users:    repo.NewUserRepository(store, logger.Nop()),
		Hasher:   hasher.NewBcrypt(bcrypt.MinCost),
		Probes:   map[string]ports.ExternalService{"database": store},
	})
}

func TestServer_ContactLifecycle(t *testing.T) {
	h := newStoreServer(t).Router()

	w, env := do(t, h, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "John", "last_name": "Doe", "email": "john@example.com",
		"phone_number": "1234567890", "birthday": "1990-05-17",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID             int64   `json:"id"`
		Birthday       *string `json:"birthday"`
		AdditionalData *string `json:"additional_data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Positive(t, created.ID)
	require.NotNil(t, created.Birthday)
	assert.Equal(t, "1990-05-17", *created.Birthday)
	assert.Nil(t, created.AdditionalData)

	path := "/api/contacts/" + jsonInt(created.ID)

	w, _ = do(t, h, http.MethodPut, path, map[string]any{
		"first_name": "Johnny", "last_name": "Doe", "email": "johnny@example.com",
		"phone_number": "555-0100", "additional_data": "2024-12-31",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = do(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `null`, field(t, env.Data, "birthday"))
	assert.JSONEq(t, `"2024-12-31"`, field(t, env.Data, "additional_data"))
	assert.JSONEq(t, `"Johnny"`, field(t, env.Data, "first_name"))

	w, env = do(t, h, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Johnny"`, field(t, env.Data, "first_name"))

	w, _ = do(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, h, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_UserLifecycle(t *testing.T) {
	h := newStoreServer(t).Router()

	w, env := do(t, h, http.MethodPost, "/api/users", map[string]any{
		"username": "testuser", "email": "test@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, string(env.Data), "password")
	assert.JSONEq(t, `false`, field(t, env.Data, "confirmed"))

	w, _ = do(t, h, http.MethodPost, "/api/users", map[string]any{
		"username": "other", "email": "test@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = do(t, h, http.MethodPost, "/api/users/confirm", map[string]any{"email": "test@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `true`, field(t, env.Data, "confirmed"))

	w, env = do(t, h, http.MethodPatch, "/api/users/avatar", map[string]any{
		"email": "test@example.com", "url": "https://cdn.example.com/a.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"https://cdn.example.com/a.png"`, field(t, env.Data, "avatar"))

	w, env = do(t, h, http.MethodGet, "/api/users?email=test@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"testuser"`, field(t, env.Data, "username"))

	w, _ = do(t, h, http.MethodPost, "/api/users/confirm", map[string]any{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func field(t *testing.T, raw json.RawMessage, name string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	v, ok := m[name]
	require.True(t, ok, "missing field %s", name)
	return string(v)
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
