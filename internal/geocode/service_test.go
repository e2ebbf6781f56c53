package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishnuKaku/workshipai/internal/common"
	"github.com/VishnuKaku/workshipai/internal/entity"
)

func testClient(baseURL string) *Client {
	return NewClient(common.GeocoderConfig{
		BaseURL:        baseURL,
		UserAgent:      "test",
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: 10 * time.Millisecond,
	}, nil)
}

func testService(client *Client, durable DurableCache) *Service {
	return NewService(client, durable, nil, WithBatchDelay(5*time.Millisecond))
}

func geocodeHandler(calls *int32, byName map[string][2]float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		name := r.URL.Query().Get("q")
		coords, ok := byName[name]
		if !ok {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprintf(w, `[{"lat":"%f","lon":"%f"}]`, coords[0], coords[1])
	}
}

func TestResolveCachesResult(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(geocodeHandler(&calls, map[string][2]float64{
		"Zurich Airport": {47.4647, 8.5492},
	}))
	defer srv.Close()

	s := testService(testClient(srv.URL), nil)

	res := s.Resolve(context.Background(), "Zurich Airport")
	require.NotNil(t, res)
	assert.InDelta(t, 47.4647, res.Latitude, 1e-4)
	assert.InDelta(t, 8.5492, res.Longitude, 1e-4)

	// Second call is served from the fast tier.
	res2 := s.Resolve(context.Background(), "Zurich Airport")
	require.NotNil(t, res2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResolveDedupsConcurrentCallers(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(geocodeHandler(&calls, map[string][2]float64{
		"Zurich Airport": {47.4647, 8.5492},
	}))
	defer srv.Close()

	s := testService(testClient(srv.URL), nil)

	const n = 8
	results := make([]*entity.GeocodeResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Resolve(context.Background(), "Zurich Airport")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent callers share one upstream call")
	for i := 0; i < n; i++ {
		require.NotNil(t, results[i])
		assert.InDelta(t, 47.4647, results[i].Latitude, 1e-4)
	}
}

func TestResolveRetriesOnRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `[{"lat":"45.7429","lon":"16.0688"}]`)
	}))
	defer srv.Close()

	durable := newMemDurable()
	s := testService(testClient(srv.URL), durable)

	res := s.Resolve(context.Background(), "Zagreb Airport")
	require.NotNil(t, res)
	assert.InDelta(t, 45.7429, res.Latitude, 1e-4)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "two 429s then success")

	// Both tiers were populated.
	got, err := durable.Get(context.Background(), "Zagreb Airport")
	require.NoError(t, err)
	require.NotNil(t, got)
	s.mu.Lock()
	_, inFast := s.fast["Zagreb Airport"]
	s.mu.Unlock()
	assert.True(t, inFast)
}

func TestResolveUnresolvedReturnsNil(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(geocodeHandler(&calls, nil))
	defer srv.Close()

	s := testService(testClient(srv.URL), nil)

	assert.Nil(t, s.Resolve(context.Background(), "Nowhere Airport"))
}

func TestBatchGeocodeAlignsResults(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(geocodeHandler(&calls, map[string][2]float64{
		"Zurich Airport": {47.4647, 8.5492},
		"Split Airport":  {43.5389, 16.2981},
	}))
	defer srv.Close()

	s := testService(testClient(srv.URL), nil)

	names := []string{"Zurich Airport", "Nowhere Airport", "Split Airport"}
	results := s.BatchGeocode(context.Background(), names)
	require.Len(t, results, 3)

	require.NotNil(t, results[0])
	assert.InDelta(t, 47.4647, results[0].Latitude, 1e-4)
	assert.Nil(t, results[1], "a failed name never aborts its siblings")
	require.NotNil(t, results[2])
	assert.InDelta(t, 43.5389, results[2].Latitude, 1e-4)
}

func TestBatchGeocodeDrainsInBatches(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		inFlight--
		mu.Unlock()
		fmt.Fprint(w, `[{"lat":"1.0","lon":"2.0"}]`)
	}))
	defer srv.Close()

	s := NewService(testClient(srv.URL), nil, nil,
		WithBatchSize(2), WithBatchDelay(time.Millisecond))

	names := []string{"A", "B", "C", "D", "E"}
	results := s.BatchGeocode(context.Background(), names)

	for _, r := range results {
		require.NotNil(t, r)
	}
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, maxInFlight, 2, "no more than one batch in flight at a time")
}

// memDurable is an in-memory DurableCache for tests.
type memDurable struct {
	mu sync.Mutex
	m  map[string]entity.GeocodeResult
}

func newMemDurable() *memDurable {
	return &memDurable{m: make(map[string]entity.GeocodeResult)}
}

func (c *memDurable) Get(_ context.Context, name string) (*entity.GeocodeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if res, ok := c.m[name]; ok {
		return &res, nil
	}
	return nil, nil
}

func (c *memDurable) Put(_ context.Context, name string, res entity.GeocodeResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[name] = res
	return nil
}
