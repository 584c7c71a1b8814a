package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/api"
	"github.com/Oussamaberchi/Quickkt/internal/auth"
	"github.com/Oussamaberchi/Quickkt/internal/coach"
	"github.com/Oussamaberchi/Quickkt/internal/config"
	"github.com/Oussamaberchi/Quickkt/internal/quit"
	"github.com/Oussamaberchi/Quickkt/internal/storage"
)

type fakeCoach struct {
	reply string
	err   error
}

func (f *fakeCoach) Reply(ctx context.Context, history []internal.ChatMessage, lang string) (string, error) {
	return f.reply, f.err
}

type testApp struct {
	logger internal.Logger
	store  storage.StateStore
	coach  coach.Client
	engine *quit.Engine
}

func (a *testApp) Logger() internal.Logger   { return a.logger }
func (a *testApp) Store() storage.StateStore { return a.store }
func (a *testApp) Coach() coach.Client       { return a.coach }
func (a *testApp) Engine() *quit.Engine      { return a.engine }
func (a *testApp) Calendar() quit.Calendar   { return quit.DefaultCalendar() }

func setupRouter(t *testing.T) (*gin.Engine, *testApp) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store, err := storage.NewFileStore(t.TempDir()+"/snapshot.json", logger)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// an hour-period ticker never fires during a test; handlers fall back to
	// computing stats on demand
	ticker := quit.NewTicker(time.Hour)
	engine := quit.NewEngine(storage.NewTickSource(store, logger), ticker, logger)
	t.Cleanup(engine.Stop)

	app := &testApp{
		logger: logger,
		store:  store,
		coach:  &fakeCoach{reply: "Tiens bon."},
		engine: engine,
	}

	cfg := config.Load()
	r := gin.New()
	r.Use(api.RequestIDMiddleware())
	r.Use(auth.AuthMiddleware(auth.NewLocalAuthProvider(cfg.AuthToken, logger), cfg))
	api.RegisterRoutes(r, app)
	return r, app
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer MOCK-TOKEN")
	return performRequest(r, rec, req)
}

func performRequest(r *gin.Engine, rec *httptest.ResponseRecorder, req *http.Request) *httptest.ResponseRecorder {
	r.ServeHTTP(rec, req)
	return rec
}

const validProfileBody = `{
	"quit_instant": "2025-06-15T10:00:00Z",
	"cigarettes_per_day": 20,
	"price_per_pack": 350,
	"cigarettes_per_pack": 20,
	"currency": "DZD"
}`

func TestPostProfile_ValidAndInvalid(t *testing.T) {
	r, _ := setupRouter(t)

	rec := doRequest(r, "POST", "/profile", validProfileBody)
	assert.Equal(t, 200, rec.Code)

	// zero cigarettes per pack would make cost-per-cigarette undefined
	rec = doRequest(r, "POST", "/profile", `{
		"quit_instant": "2025-06-15T10:00:00Z",
		"cigarettes_per_day": 20,
		"price_per_pack": 350,
		"cigarettes_per_pack": 0,
		"currency": "DZD"
	}`)
	assert.Equal(t, 400, rec.Code)

	// negative price
	rec = doRequest(r, "POST", "/profile", `{
		"quit_instant": "2025-06-15T10:00:00Z",
		"cigarettes_per_day": 20,
		"price_per_pack": -5,
		"cigarettes_per_pack": 20,
		"currency": "DZD"
	}`)
	assert.Equal(t, 400, rec.Code)
}

func TestGetStats_RequiresProfile(t *testing.T) {
	r, _ := setupRouter(t)
	rec := doRequest(r, "GET", "/stats", "")
	assert.Equal(t, 404, rec.Code)
}

func TestGetStats_At48Hours(t *testing.T) {
	r, _ := setupRouter(t)
	assert.Equal(t, 200, doRequest(r, "POST", "/profile", validProfileBody).Code)

	rec := doRequest(r, "GET", "/stats?at=2025-06-17T10:00:00Z", "")
	assert.Equal(t, 200, rec.Code)

	var resp struct {
		Data quit.StatsSnapshot `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(40), resp.Data.CigarettesAvoided)
	assert.Equal(t, "700.00", resp.Data.MoneySavedDisplay)
}

func TestGetStats_InvalidAtInstant(t *testing.T) {
	r, _ := setupRouter(t)
	assert.Equal(t, 200, doRequest(r, "POST", "/profile", validProfileBody).Code)
	assert.Equal(t, 400, doRequest(r, "GET", "/stats?at=yesterday", "").Code)
}

func TestCravings_PostListAnalytics(t *testing.T) {
	r, _ := setupRouter(t)

	for _, body := range []string{
		`{"intensity": 2, "trigger": "stress"}`,
		`{"intensity": 5, "trigger": "coffee"}`,
		`{"intensity": 8}`,
	} {
		assert.Equal(t, 200, doRequest(r, "POST", "/cravings", body).Code)
	}

	// out of range and unknown trigger are rejected
	assert.Equal(t, 400, doRequest(r, "POST", "/cravings", `{"intensity": 11}`).Code)
	assert.Equal(t, 400, doRequest(r, "POST", "/cravings", `{"intensity": 5, "trigger": "banana"}`).Code)

	rec := doRequest(r, "GET", "/cravings", "")
	assert.Equal(t, 200, rec.Code)

	rec = doRequest(r, "GET", "/cravings/analytics", "")
	assert.Equal(t, 200, rec.Code)
	var resp struct {
		Data quit.CravingAnalytics `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Total)
	assert.InDelta(t, 5.0, resp.Data.AverageIntensity, 1e-9)
}

func TestCravingAnalytics_EmptyLog(t *testing.T) {
	r, _ := setupRouter(t)
	rec := doRequest(r, "GET", "/cravings/analytics", "")
	assert.Equal(t, 200, rec.Code)

	var resp struct {
		Data quit.CravingAnalytics `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Total)
	assert.Equal(t, 0.0, resp.Data.AverageIntensity)
}

func TestChat_RoundTripAndHistory(t *testing.T) {
	r, _ := setupRouter(t)

	rec := doRequest(r, "POST", "/chat", `{"text": "J'ai envie de fumer"}`)
	assert.Equal(t, 200, rec.Code)

	rec = doRequest(r, "GET", "/chat", "")
	assert.Equal(t, 200, rec.Code)
	var resp struct {
		Data []internal.ChatMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, internal.RoleModel, resp.Data[1].Role)
	assert.Equal(t, "Tiens bon.", resp.Data[1].Text)
}

func TestReset_RequiresConfirmation(t *testing.T) {
	r, _ := setupRouter(t)
	assert.Equal(t, 200, doRequest(r, "POST", "/profile", validProfileBody).Code)

	assert.Equal(t, 400, doRequest(r, "POST", "/reset", `{}`).Code)
	assert.Equal(t, 400, doRequest(r, "POST", "/reset", `{"confirm": false}`).Code)
	assert.Equal(t, 200, doRequest(r, "POST", "/reset", `{"confirm": true}`).Code)

	// profile is gone after a confirmed reset
	assert.Equal(t, 404, doRequest(r, "GET", "/profile", "").Code)
}

func TestExport_FaithfulSnapshot(t *testing.T) {
	r, _ := setupRouter(t)
	assert.Equal(t, 200, doRequest(r, "POST", "/profile", validProfileBody).Code)
	assert.Equal(t, 200, doRequest(r, "POST", "/cravings", `{"intensity": 4}`).Code)

	rec := doRequest(r, "GET", "/export", "")
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "quickkt-export.json")

	var snap internal.Snapshot
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.NotNil(t, snap.Profile)
	assert.Len(t, snap.Cravings, 1)
}

func TestSettings_UpdateAndRead(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Equal(t, 200, doRequest(r, "PUT", "/settings", `{"theme": "dark", "language": "fr"}`).Code)
	assert.Equal(t, 400, doRequest(r, "PUT", "/settings", `{"theme": "sepia", "language": "fr"}`).Code)

	rec := doRequest(r, "GET", "/settings", "")
	assert.Equal(t, 200, rec.Code)
	var resp struct {
		Data internal.Settings `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dark", resp.Data.Theme)
	assert.Equal(t, "fr", resp.Data.Language)
}

func TestSupportContent(t *testing.T) {
	r, _ := setupRouter(t)
	assert.Equal(t, 200, doRequest(r, "GET", "/support/quotes", "").Code)
	assert.Equal(t, 200, doRequest(r, "GET", "/support/tips", "").Code)
	assert.Equal(t, 200, doRequest(r, "GET", "/brands", "").Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	r, _ := setupRouter(t)
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stats", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
