package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"poi-logistics-service/internal/adapters/repositories"
	"poi-logistics-service/internal/api/dto"
	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/logistics"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	colosseumID = uuid.MustParse("6f1c2b1e-3a5d-4c7e-9b2f-1d0a8e4c5b6a")
	treviID     = uuid.MustParse("0b7e4d2a-8c1f-4e3b-a5d6-9f2c7b1e3a4d")
)

func newTestRouter(t *testing.T, withRepo bool) http.Handler {
	t.Helper()

	if !withRepo {
		return NewRouter(logistics.Default(), nil)
	}

	repo := repositories.NewStaticPOIRepository([]domain.POI{
		{ID: colosseumID, Name: "Colosseum", Coordinate: domain.Coordinate{Lat: 41.8902, Lon: 12.4922}},
		{ID: treviID, Name: "Trevi Fountain", Coordinate: domain.Coordinate{Lat: 41.9009, Lon: 12.4833}},
	})
	return NewRouter(logistics.Default(), repo)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, false), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	newTestRouter(t, false).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestDistance(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, http.MethodGet, "/distance?lat1=41.8902&lon1=12.4922&lat2=41.9009&lon2=12.4833", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.DistanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 1.3994, res.DistanceKm, 0.001)
	assert.True(t, res.Walkable)

	rec = do(t, h, http.MethodGet, "/distance?lat1=95&lon1=0&lat2=0&lon2=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/distance?lat1=1&lon1=0&lat2=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/distance", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestWalkingTime(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, http.MethodGet, "/walking-time?distance_km=0.3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"distance_km":0.3,"duration_minutes":5}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/walking-time?distance_km=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTravel(t *testing.T) {
	h := newTestRouter(t, false)

	body := `{"from":{"lat":41.8902,"lon":12.4922},"to":{"lat":41.9009,"lon":12.4833}}`
	rec := do(t, h, http.MethodPost, "/travel", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"distance_km":1.82,"duration_minutes":15,"mode":"transit"}`, rec.Body.String())

	body = `{"from":{"lat":41.8902,"lon":12.4922},"to":{"lat":41.9009,"lon":12.4833},"mode":"Walk"}`
	rec = do(t, h, http.MethodPost, "/travel", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"distance_km":1.82,"duration_minutes":26,"mode":"walk"}`, rec.Body.String())
}

func TestTravelRejectsBadInput(t *testing.T) {
	h := newTestRouter(t, false)

	tests := []struct {
		name string
		body string
	}{
		{"unknown mode", `{"from":{"lat":1,"lon":1},"to":{"lat":2,"lon":2},"mode":"boat"}`},
		{"missing lon", `{"from":{"lat":1},"to":{"lat":2,"lon":2}}`},
		{"out of range", `{"from":{"lat":1,"lon":200},"to":{"lat":2,"lon":2}}`},
		{"unknown field", `{"from":{"lat":1,"lon":1},"to":{"lat":2,"lon":2},"speed":3}`},
		{"trailing data", `{"from":{"lat":1,"lon":1},"to":{"lat":2,"lon":2}} {}`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/travel", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRoute(t *testing.T) {
	h := newTestRouter(t, false)

	body := `{"coordinates":[{"lat":0,"lon":0},{"lat":0,"lon":0.05},{"lat":0,"lon":0.01}]}`
	rec := do(t, h, http.MethodPost, "/route", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order":[0,2,1]}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/route", `{"coordinates":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order":[]}`, rec.Body.String())
}

func TestPlanByPOIIDs(t *testing.T) {
	h := newTestRouter(t, true)

	body := `{"poi_ids":["` + treviID.String() + `","` + colosseumID.String() + `"],"depart_at":"2026-01-01T09:00:00Z"}`
	rec := do(t, h, http.MethodPost, "/plans", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Stops, 2)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, treviID.String(), res.Stops[0].POIID)
	assert.Nil(t, res.Stops[0].FromPrevious)
	require.NotNil(t, res.Stops[1].FromPrevious)
	assert.Equal(t, "transit", res.Stops[1].FromPrevious.Mode)
	assert.Equal(t, 15, res.TotalDurationMinutes)
	assert.Equal(t, "2026-01-01T09:15:00Z", res.Stops[1].ArriveAt.Format("2006-01-02T15:04:05Z07:00"))
}

func TestPlanErrors(t *testing.T) {
	tests := []struct {
		name     string
		withRepo bool
		body     string
		want     int
	}{
		{"unknown poi", true, `{"poi_ids":["` + uuid.NewString() + `"]}`, http.StatusNotFound},
		{"bad uuid", true, `{"poi_ids":["x"]}`, http.StatusBadRequest},
		{"no repository", false, `{"poi_ids":["` + colosseumID.String() + `"]}`, http.StatusServiceUnavailable},
		{"neither ids nor stops", true, `{}`, http.StatusBadRequest},
		{"both ids and stops", true, `{"poi_ids":["` + colosseumID.String() + `"],"stops":[{"lat":1,"lon":1}]}`, http.StatusBadRequest},
		{"bad stop coordinate", false, `{"stops":[{"lat":100,"lon":1}]}`, http.StatusBadRequest},
		{"negative dwell", false, `{"stops":[{"lat":1,"lon":1}],"dwell_minutes":-5}`, http.StatusBadRequest},
		{"unknown mode", false, `{"stops":[{"lat":1,"lon":1}],"mode":"teleport"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(t, tt.withRepo), http.MethodPost, "/plans", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestPlanInlineStops(t *testing.T) {
	h := newTestRouter(t, false)

	body := `{"stops":[{"name":"A","lat":0,"lon":0},{"name":"C","lat":0,"lon":0.05},{"name":"B","lat":0,"lon":0.01}],"mode":"walk","dwell_minutes":10}`
	rec := do(t, h, http.MethodPost, "/plans", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []int{0, 2, 1}, res.Order)
	require.Len(t, res.Stops, 3)
	assert.Equal(t, "B", res.Stops[1].Name)
	assert.Empty(t, res.Stops[0].POIID)
	for _, s := range res.Stops[1:] {
		require.NotNil(t, s.FromPrevious)
		assert.Equal(t, "walk", s.FromPrevious.Mode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, false)
	do(t, h, http.MethodGet, "/health", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "poi_logistics_http_requests_total")
}
