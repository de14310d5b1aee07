package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	aqiURL     = "https://airquality.googleapis.com/v1/currentConditions:lookup"
	weatherURL = "https://weather.googleapis.com/v1/currentConditions:lookup"

	// Environmental readings are stable for roughly 15-30 minutes.
	environmentCacheTTL = 20 * time.Minute

	environmentCallTimeout = 10 * time.Second
)

var ErrEnvironmentUnavailable = errors.New("environmental data currently unavailable")

// EnvironmentConditions is the joined AQI + weather reading for a point.
type EnvironmentConditions struct {
	AQI         int     `json:"aqi"`
	AQICategory string  `json:"aqi_category"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// EnvironmentService fetches air-quality and weather data from the Google
// environment APIs, joining two concurrent outbound calls and caching the
// combined result per rounded coordinate.
type EnvironmentService struct {
	apiKey     string
	cache      *CacheManager
	httpClient *http.Client
	log        *logrus.Logger
}

func NewEnvironmentService(apiKey string, cache *CacheManager, log *logrus.Logger) *EnvironmentService {
	return &EnvironmentService{
		apiKey:     apiKey,
		cache:      cache,
		httpClient: &http.Client{Timeout: environmentCallTimeout},
		log:        log,
	}
}

// EnvironmentCacheKey rounds to 3 decimal places (~110m) so nearby users
// share cache entries.
func EnvironmentCacheKey(lat, lng float64) string {
	return fmt.Sprintf("env:data:%.3f:%.3f", lat, lng)
}

func (s *EnvironmentService) GetLocalConditions(ctx context.Context, lat, lng float64) (*EnvironmentConditions, error) {
	cacheKey := EnvironmentCacheKey(lat, lng)

	var cached EnvironmentConditions
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	var aqiData struct {
		Indexes []struct {
			AQI      int    `json:"aqi"`
			Category string `json:"category"`
		} `json:"indexes"`
	}
	var weatherData struct {
		Temperature struct {
			Degrees float64 `json:"degrees"`
		} `json:"temperature"`
		WeatherCondition struct {
			Description struct {
				Text string `json:"text"`
			} `json:"description"`
		} `json:"weatherCondition"`
	}

	// Two independent in-flight calls joined before responding.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		body, err := json.Marshal(map[string]interface{}{
			"location": map[string]float64{"latitude": lat, "longitude": lng},
		})
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(gctx, http.MethodPost, aqiURL+"?key="+url.QueryEscape(s.apiKey), bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		return s.doJSON(req, &aqiData)
	})

	g.Go(func() error {
		params := url.Values{}
		params.Set("key", s.apiKey)
		params.Set("location.latitude", fmt.Sprintf("%f", lat))
		params.Set("location.longitude", fmt.Sprintf("%f", lng))
		req, err := http.NewRequestWithContext(gctx, http.MethodGet, weatherURL+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		return s.doJSON(req, &weatherData)
	})

	if err := g.Wait(); err != nil {
		s.log.Warnf("Environment API fetch failed: %+v", err)
		return nil, ErrEnvironmentUnavailable
	}

	if len(aqiData.Indexes) == 0 {
		return nil, ErrEnvironmentUnavailable
	}

	conditions := &EnvironmentConditions{
		AQI:         aqiData.Indexes[0].AQI,
		AQICategory: aqiData.Indexes[0].Category,
		Temperature: weatherData.Temperature.Degrees,
		Condition:   weatherData.WeatherCondition.Description.Text,
	}

	s.cache.SetJSON(ctx, cacheKey, conditions, environmentCacheTTL)

	return conditions, nil
}

func (s *EnvironmentService) doJSON(req *http.Request, dest interface{}) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
