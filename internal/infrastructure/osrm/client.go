package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/loopi-routing/internal/config"
	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// routeResponse - ответ OSRM route service
type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Routes  []struct {
		Geometry *geojson.Geometry `json:"geometry"`
		Distance float64           `json:"distance"`
		Duration float64           `json:"duration"`
	} `json:"routes"`
}

type client struct {
	httpClient   *http.Client
	baseURL      string
	maxWaypoints int
	logger       *zap.Logger
}

// NewOSRMClient создает новый клиент для OSRM HTTP API
func NewOSRMClient(cfg *config.OSRMConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		maxWaypoints: cfg.MaxWaypoints,
		logger:       logger,
	}
}

// GetRoute запрашивает маршрут по дорогам через точки в заданном порядке.
// OSRM не переупорядочивает точки.
func (c *client) GetRoute(
	ctx context.Context,
	mode domain.TravelMode,
	points []domain.Point,
) (*domain.RoadRoute, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("at least 2 points are required, got %d", len(points))
	}

	if c.maxWaypoints > 0 && len(points) > c.maxWaypoints {
		return nil, fmt.Errorf("total coordinates exceed OSRM limit of %d points", c.maxWaypoints)
	}

	// OSRM ждёт координаты в порядке lng,lat
	coordinates := make([]string, len(points))
	for i, p := range points {
		coordinates[i] = fmt.Sprintf("%f,%f", p.Lng, p.Lat)
	}

	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson",
		c.baseURL,
		mode.Profile(),
		strings.Join(coordinates, ";"),
	)

	c.logger.Debug("Calling OSRM Route API",
		zap.String("url", url),
		zap.String("profile", mode.Profile()),
		zap.Int("points_count", len(points)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("OSRM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("osrm API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var routeResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if routeResp.Code != "Ok" {
		c.logger.Warn("OSRM API returned non-OK code",
			zap.String("code", routeResp.Code),
			zap.String("message", routeResp.Message))
		return nil, fmt.Errorf("osrm API returned code: %s", routeResp.Code)
	}

	if len(routeResp.Routes) == 0 || routeResp.Routes[0].Geometry == nil {
		return nil, fmt.Errorf("osrm API returned no routes")
	}

	best := routeResp.Routes[0]
	line, ok := best.Geometry.Geometry().(orb.LineString)
	if !ok || len(line) == 0 {
		return nil, fmt.Errorf("osrm API returned unexpected geometry %q", best.Geometry.Type)
	}

	c.logger.Debug("OSRM Route API call successful",
		zap.Int("geometry_points", len(line)),
		zap.Float64("distance_m", best.Distance),
		zap.Float64("duration_s", best.Duration))

	return &domain.RoadRoute{
		Geometry:  line,
		DistanceM: best.Distance,
		DurationS: best.Duration,
		Source:    domain.RouteSourceOSRM,
		Bounds:    domain.BoundingBoxFromBound(line.Bound()),
	}, nil
}
