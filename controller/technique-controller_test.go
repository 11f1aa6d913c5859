package controller

import (
	"dojo/catalog"
	"dojo/repository"
	"dojo/service"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "sensei"

type testServer struct {
	engine *gin.Engine
	repo   *repository.TechniqueRepository
	// swapped in by tests to change what the next reload sees
	techniques []*catalog.Technique
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ts := &testServer{techniques: catalog.Techniques()}
	repo, err := repository.NewTechniqueRepositoryWithLoader("test", func() ([]*catalog.Technique, error) {
		return ts.techniques, nil
	}, nil)
	require.NoError(t, err)
	schedule, err := service.NewScheduleService()
	require.NoError(t, err)

	ts.repo = repo
	ts.engine = gin.New()
	SetRoutes(ts.engine, Dependencies{
		TechniqueService: service.NewTechniqueService(repo),
		ScheduleService:  schedule,
		CacheStore:       persistence.NewInMemoryStore(time.Minute),
		CacheTTL:         time.Minute,
		AdminToken:       testAdminToken,
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestGetTechniques(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques?q=choke&category=submission&difficulty=all", nil)
	require.Equal(t, 200, w.Code)

	techniques := decode[[]catalog.Technique](t, w)
	require.NotEmpty(t, techniques)
	for _, tech := range techniques {
		assert.Equal(t, catalog.CategorySubmission, tech.Category)
	}
}

func TestGetTechniquesInvalidFilter(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques?difficulty=expert", nil)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Error, "invalid filter")
}

func TestGetTechnique(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques/armbar", nil)
	require.Equal(t, 200, w.Code)
	armbar := decode[catalog.Technique](t, w)
	assert.Equal(t, "Armbar", armbar.Name)
	assert.Contains(t, w.Body.String(), `"points":0`)

	w = ts.do(t, "GET", "/api/techniques/does-not-exist", nil)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "technique not found", decode[ErrorResponse](t, w).Error)
}

func TestGetRelatedTechniques(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques/mount/related", nil)
	require.Equal(t, 200, w.Code)
	resp := decode[RelatedTechniquesResponse](t, w)
	assert.Equal(t, "mount", resp.ID)
	assert.Len(t, resp.Related, 3)
	assert.Empty(t, resp.Dangling)
}

func TestGetGroupedTechniques(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques/grouped?difficulty=advanced", nil)
	require.Equal(t, 200, w.Code)
	groups := decode[[]catalog.Group](t, w)
	require.NotEmpty(t, groups)
	assert.Equal(t, catalog.CategorySubmission, groups[0].Category)
}

func TestGetStats(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques/stats", nil)
	require.Equal(t, 200, w.Code)
	stats := decode[catalog.Stats](t, w)
	assert.Equal(t, len(catalog.Techniques()), stats.Total)
	assert.Len(t, stats.ByDifficulty, 3)
}

func TestGetMeta(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques/meta", nil)
	require.Equal(t, 200, w.Code)
	meta := decode[CatalogMetaResponse](t, w)
	assert.Equal(t, catalog.Categories, meta.Categories)
	assert.Equal(t, int64(1), meta.Version)
}

func TestReloadRequiresToken(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "POST", "/api/techniques/reload", nil)
	assert.Equal(t, 401, w.Code)

	w = ts.do(t, "POST", "/api/techniques/reload", http.Header{"X-Admin-Token": {"wrong"}})
	assert.Equal(t, 401, w.Code)
}

func TestReloadFlushesCache(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, "GET", "/api/techniques/stats", nil)
	require.Equal(t, 200, w.Code)

	ts.techniques = catalog.Techniques()[:3]
	w = ts.do(t, "POST", "/api/techniques/reload", http.Header{"X-Admin-Token": {testAdminToken}})
	require.Equal(t, 200, w.Code)
	reload := decode[ReloadResponse](t, w)
	assert.True(t, reload.Accepted)
	assert.Equal(t, int64(2), reload.Version)

	w = ts.do(t, "GET", "/api/techniques/stats", nil)
	assert.Equal(t, 3, decode[catalog.Stats](t, w).Total)
}

func TestReloadRejectedKeepsCatalog(t *testing.T) {
	ts := newTestServer(t)
	dup := catalog.Techniques()[0]
	ts.techniques = []*catalog.Technique{dup, dup}

	w := ts.do(t, "POST", "/api/techniques/reload", http.Header{"X-Admin-Token": {testAdminToken}})
	assert.Equal(t, 422, w.Code)
	reload := decode[ReloadResponse](t, w)
	assert.False(t, reload.Accepted)
	assert.Equal(t, int64(1), reload.Version)
	assert.NotEmpty(t, reload.Errors)
	assert.Len(t, ts.repo.Techniques(), len(catalog.Techniques()))
}

func TestCatalogWebSocket(t *testing.T) {
	ts := newTestServer(t)
	server := httptest.NewServer(ts.engine)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/techniques/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var update CatalogUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, int64(1), update.Version)
	assert.Equal(t, len(catalog.Techniques()), update.Total)

	ts.techniques = catalog.Techniques()[:5]
	_, err = ts.repo.Reload()
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, int64(2), update.Version)
	assert.Equal(t, 5, update.Total)
}
