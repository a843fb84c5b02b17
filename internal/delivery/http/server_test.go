package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/loopi-routing/internal/config"
	httpdelivery "github.com/loopi-routing/internal/delivery/http"
	"github.com/loopi-routing/internal/delivery/http/handler"
	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/infrastructure/osrm"
	"github.com/loopi-routing/internal/repository/cache"
	"github.com/loopi-routing/internal/repository/memory"
	"github.com/loopi-routing/internal/usecase"
	"github.com/loopi-routing/internal/usecase/dto"
)

const osrmOK = `{"code":"Ok","routes":[{"geometry":{"type":"LineString","coordinates":[[0,0],[1,0],[2,0],[10,0]]},"distance":1120000,"duration":100800}]}`

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T, osrmStatus int) *httpdelivery.Server {
	t.Helper()

	osrmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(osrmStatus)
		if osrmStatus == http.StatusOK {
			w.Write([]byte(osrmOK))
		}
	}))
	t.Cleanup(osrmServer.Close)

	logger := zap.NewNop()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSOrigins: "*"},
		OSRM:   config.OSRMConfig{BaseURL: osrmServer.URL, RequestTimeout: 2, MaxWaypoints: 100, MaxParallel: 2},
	}

	routing := osrm.NewOSRMClient(&cfg.OSRM, logger)
	memCache := cache.NewMemoryCacheRepository(time.Hour, time.Minute, logger)

	routeUC := usecase.NewRouteUseCase(routing, memCache, usecase.NewRouteGuard(), logger, time.Hour, cfg.OSRM.MaxParallel)
	landmarkUC := usecase.NewLandmarkUseCase(memory.NewLandmarkRepository(), logger, domain.DefaultClusterRadiusM)
	savedUC := usecase.NewSavedLocationUseCase(memory.NewSavedLocationRepository(), logger)

	return httpdelivery.NewServer(
		cfg,
		logger,
		handler.NewRouteHandler(routeUC, logger),
		handler.NewLandmarkHandler(landmarkUC, logger),
		handler.NewSavedLocationHandler(savedUC, logger),
	)
}

func doJSON(t *testing.T, s *httpdelivery.Server, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func workedExample() []dto.PointInput {
	return []dto.PointInput{
		{ID: "a", Name: "A", Lat: 0, Lng: 0},
		{ID: "b", Name: "B", Lat: 0, Lng: 1},
		{ID: "c", Name: "C", Lat: 0, Lng: 10},
		{ID: "d", Name: "D", Lat: 0, Lng: 2},
	}
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, http.StatusOK)

	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_NotFound(t *testing.T) {
	s := newTestServer(t, http.StatusOK)

	status, env := doJSON(t, s, "GET", "/api/v1/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestServer_Sequence(t *testing.T) {
	s := newTestServer(t, http.StatusOK)

	t.Run("worked example", func(t *testing.T) {
		status, env := doJSON(t, s, "POST", "/api/v1/routes/sequence",
			dto.SequenceRequest{Mode: "driving", Points: workedExample()})
		require.Equal(t, http.StatusOK, status)

		var data dto.SequenceResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Steps, 3)
		assert.Equal(t, "B", data.Steps[0].To)
		assert.Equal(t, "D", data.Steps[1].To)
		assert.Equal(t, "C", data.Steps[2].To)
		assert.Equal(t, 167, data.Steps[0].DurationMin)
	})

	t.Run("zero coordinates are valid", func(t *testing.T) {
		status, _ := doJSON(t, s, "POST", "/api/v1/routes/sequence",
			dto.SequenceRequest{Mode: "walking", Points: []dto.PointInput{{ID: "origin", Lat: 0, Lng: 0}}})
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("unknown mode", func(t *testing.T) {
		status, env := doJSON(t, s, "POST", "/api/v1/routes/sequence",
			dto.SequenceRequest{Mode: "cycling", Points: workedExample()})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	})

	t.Run("duplicate id", func(t *testing.T) {
		points := workedExample()
		points[1].ID = "a"
		status, env := doJSON(t, s, "POST", "/api/v1/routes/sequence",
			dto.SequenceRequest{Mode: "driving", Points: points})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "DUPLICATE_POINT_ID", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		status, env := doJSON(t, s, "POST", "/api/v1/routes/sequence", `{"mode":`)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	})
}

func TestServer_Plan(t *testing.T) {
	t.Run("road route from osrm", func(t *testing.T) {
		s := newTestServer(t, http.StatusOK)

		status, env := doJSON(t, s, "POST", "/api/v1/routes/plan",
			dto.PlanRequest{SessionID: "map-1", Mode: "driving", Points: workedExample()})
		require.Equal(t, http.StatusOK, status)

		var data dto.PlanResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.NotNil(t, data.Road)
		assert.Equal(t, domain.RouteSourceOSRM, data.Road.Source)
		assert.Equal(t, 1120000.0, data.Road.DistanceM)
		assert.NotZero(t, data.Generation)
	})

	t.Run("osrm failure falls back to straight line", func(t *testing.T) {
		s := newTestServer(t, http.StatusServiceUnavailable)

		status, env := doJSON(t, s, "POST", "/api/v1/routes/plan",
			dto.PlanRequest{Mode: "walking", Points: workedExample()})
		require.Equal(t, http.StatusOK, status)

		var data dto.PlanResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.NotNil(t, data.Road)
		assert.Equal(t, domain.RouteSourceStraightLine, data.Road.Source)
		assert.Len(t, data.Road.Geometry, 4)
	})
}

func TestServer_Segments(t *testing.T) {
	s := newTestServer(t, http.StatusOK)

	status, env := doJSON(t, s, "POST", "/api/v1/routes/segments", dto.SegmentsRequest{
		Mode: "walking",
		Segments: []dto.SegmentInput{
			{From: workedExample()[0], To: workedExample()[1]},
			{From: workedExample()[1], To: workedExample()[3], Mode: "driving"},
		},
	})
	require.Equal(t, http.StatusOK, status)

	var data dto.SegmentsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Segments, 2)
	assert.Zero(t, data.Fallbacks)

	status, _ = doJSON(t, s, "POST", "/api/v1/routes/segments", dto.SegmentsRequest{Mode: "walking"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_Landmarks(t *testing.T) {
	s := newTestServer(t, http.StatusOK)

	t.Run("list by type", func(t *testing.T) {
		status, env := doJSON(t, s, "GET", "/api/v1/landmarks?type=hotel", nil)
		require.Equal(t, http.StatusOK, status)

		var data dto.LandmarksResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 2, data.Total)
	})

	t.Run("unknown type", func(t *testing.T) {
		status, env := doJSON(t, s, "GET", "/api/v1/landmarks?type=zoo", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_LANDMARK_TYPE", env.Error.Code)
	})

	t.Run("get by id", func(t *testing.T) {
		status, env := doJSON(t, s, "GET", "/api/v1/landmarks/burj-al-arab", nil)
		require.Equal(t, http.StatusOK, status)

		var data domain.Landmark
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Burj Al Arab", data.Name)

		status, env = doJSON(t, s, "GET", "/api/v1/landmarks/nope", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "LANDMARK_NOT_FOUND", env.Error.Code)
	})

	t.Run("clusters", func(t *testing.T) {
		status, env := doJSON(t, s, "POST", "/api/v1/landmarks/clusters",
			dto.ClusterRequest{Lat: 25.1972, Lng: 55.2744, Type: "photo"})
		require.Equal(t, http.StatusOK, status)

		var data dto.ClusterResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.NotEmpty(t, data.Clusters)
		assert.Equal(t, "dubai-fountain", data.Clusters[0].ID)
	})

	t.Run("extract", func(t *testing.T) {
		status, env := doJSON(t, s, "POST", "/api/v1/landmarks/extract",
			dto.ExtractRequest{Text: "Morning at Global Village, evening at La Mer"})
		require.Equal(t, http.StatusOK, status)

		var data dto.LandmarksResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Equal(t, 2, data.Total)
		assert.Equal(t, "la-mer", data.Landmarks[0].ID)
		assert.Equal(t, "global-village", data.Landmarks[1].ID)

		status, _ = doJSON(t, s, "POST", "/api/v1/landmarks/extract", dto.ExtractRequest{})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestServer_SavedLocations(t *testing.T) {
	s := newTestServer(t, http.StatusOK)

	status, _ := doJSON(t, s, "POST", "/api/v1/saved/user-1",
		dto.SavedLocationInput{ID: "la-mer", Name: "La Mer", Lat: 25.2317, Lng: 55.2633})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, s, "POST", "/api/v1/saved/user-1",
		dto.SavedLocationInput{ID: "atlantis", Name: "Atlantis", Lat: 25.1304, Lng: 55.1174})
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, s, "GET", "/api/v1/saved/user-1", nil)
	require.Equal(t, http.StatusOK, status)
	var data dto.SavedLocationsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "user-1", data.OwnerID)
	assert.Equal(t, 2, data.Total)

	status, env = doJSON(t, s, "DELETE", "/api/v1/saved/user-1/la-mer", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, 1, data.Total)
	assert.Equal(t, "atlantis", data.Locations[0].ID)

	status, env = doJSON(t, s, "PUT", "/api/v1/saved/user-1", dto.ReplaceSavedLocationsRequest{
		Locations: []dto.SavedLocationInput{{ID: "x", Name: "X"}, {ID: "x", Name: "X"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)

	status, _ = doJSON(t, s, "POST", "/api/v1/saved/user-1", dto.SavedLocationInput{Name: "no id"})
	assert.Equal(t, http.StatusBadRequest, status)
}
