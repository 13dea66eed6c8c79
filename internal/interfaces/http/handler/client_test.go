package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apppartner "github.com/inteligent/dashboard/internal/application/partner"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[uuid.UUID]partner.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]partner.Client)}
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]partner.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]partner.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Save(_ context.Context, c *partner.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *partner.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[c.ID]; !ok {
		return shared.ErrNotFound
	}
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.clients)), nil
}

func setupClientAPI(t *testing.T) (*gin.Engine, *fakeClientRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeClientRepo()
	service := apppartner.NewService(repo, nil)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewClientHandler(service)).
		Setup()
	return engine, repo
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestClientAPI_Create(t *testing.T) {
	engine, repo := setupClientAPI(t)

	w := postJSON(t, engine, "/api/v1/clients", gin.H{
		"name":      "Janez Novak",
		"company":   "Novak d.o.o.",
		"type":      "podjetje",
		"taxNumber": "SI12345678",
		"email":     "janez@novak.si",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Janez Novak", resp.Data.Name)
	assert.Equal(t, "aktivna", resp.Data.Status)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestClientAPI_CreateValidation(t *testing.T) {
	engine, _ := setupClientAPI(t)

	t.Run("missing required fields", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/clients", gin.H{"name": "No Email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "BAD_REQUEST")
	})

	t.Run("company without tax number", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/clients", gin.H{
			"name":  "Brez Davcne",
			"type":  "podjetje",
			"email": "x@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestClientAPI_GetNotFound(t *testing.T) {
	engine, _ := setupClientAPI(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestClientAPI_GetInvalidID(t *testing.T) {
	engine, _ := setupClientAPI(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/not-a-uuid", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientAPI_Update(t *testing.T) {
	engine, repo := setupClientAPI(t)

	client, err := partner.NewClient("Ana", "", partner.ClientTypePerson, "", "ana@example.com", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), client))

	raw, err := json.Marshal(gin.H{
		"name":   "Ana Kovač",
		"type":   "oseba",
		"email":  "ana.kovac@example.com",
		"status": "v obdelavi",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/clients/"+client.ID.String(), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	stored, err := repo.FindByID(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Kovač", stored.Name)
	assert.Equal(t, partner.ClientStatusInProgress, stored.Status)
}

func TestClientAPI_List(t *testing.T) {
	engine, repo := setupClientAPI(t)

	for _, name := range []string{"Prvi", "Drugi"} {
		c, err := partner.NewClient(name, "", partner.ClientTypePerson, "", name+"@example.com", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), c))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}
