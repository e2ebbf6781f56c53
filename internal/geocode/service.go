package geocode

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/VishnuKaku/workshipai/internal/entity"
)

// Service resolves airport display names to coordinates with a fast
// in-process cache, an optional durable cache tier, in-flight request dedup,
// and a batched drain loop over the upstream client. Construct one instance
// and share it by handle; it is safe for concurrent use.
type Service struct {
	client  *Client
	durable DurableCache
	logger  *slog.Logger

	batchSize  int
	batchDelay time.Duration

	mu       sync.Mutex
	fast     map[string]entity.GeocodeResult
	inflight map[string][]chan *entity.GeocodeResult
	queue    []string
	draining bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithBatchSize sets how many names one drain batch resolves concurrently.
func WithBatchSize(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithBatchDelay sets the pause between successive drain batches.
func WithBatchDelay(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d >= 0 {
			s.batchDelay = d
		}
	}
}

// NewService builds a geocoding service. durable may be nil, leaving only the
// in-process tier.
func NewService(client *Client, durable DurableCache, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		client:     client,
		durable:    durable,
		logger:     logger,
		batchSize:  5,
		batchDelay: time.Second,
		fast:       make(map[string]entity.GeocodeResult),
		inflight:   make(map[string][]chan *entity.GeocodeResult),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Resolve returns coordinates for an airport name, or nil when resolution
// fails. Concurrent calls for the same name share one upstream lookup. The
// call blocks until its batch resolves; ctx only abandons the wait, it does
// not cancel the shared lookup.
func (s *Service) Resolve(ctx context.Context, name string) *entity.GeocodeResult {
	s.mu.Lock()
	if res, ok := s.fast[name]; ok {
		s.mu.Unlock()
		return &res
	}
	s.mu.Unlock()

	// Durable tier; a hit is promoted into the fast tier.
	if s.durable != nil {
		res, err := s.durable.Get(ctx, name)
		if err != nil {
			s.logger.Warn("durable geocode cache read failed", "name", name, "error", err)
		} else if res != nil {
			s.mu.Lock()
			s.fast[name] = *res
			s.mu.Unlock()
			return res
		}
	}

	ch := make(chan *entity.GeocodeResult, 1)
	s.mu.Lock()
	// Re-check under the lock: the name may have resolved while we were
	// looking at the durable tier.
	if res, ok := s.fast[name]; ok {
		s.mu.Unlock()
		return &res
	}
	if waiters, ok := s.inflight[name]; ok {
		// Already queued: join the existing in-flight entry.
		s.inflight[name] = append(waiters, ch)
	} else {
		s.inflight[name] = []chan *entity.GeocodeResult{ch}
		s.queue = append(s.queue, name)
	}
	startDrain := !s.draining
	if startDrain {
		s.draining = true
	}
	s.mu.Unlock()

	if startDrain {
		go s.drain()
	}

	select {
	case res := <-ch:
		return res
	case <-ctx.Done():
		return nil
	}
}

// BatchGeocode resolves every name through the same cache/dedup/queue
// machinery. Output positions align with input positions; a failed name
// yields nil, never an error.
func (s *Service) BatchGeocode(ctx context.Context, names []string) []*entity.GeocodeResult {
	results := make([]*entity.GeocodeResult, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = s.Resolve(ctx, name)
		}(i, name)
	}
	wg.Wait()
	return results
}

// drain consumes the pending queue in batches. At most one drain runs at a
// time; the flag is cleared and the loop exited under the same lock, so names
// queued afterwards always get a fresh drain.
func (s *Service) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		n := s.batchSize
		if n > len(s.queue) {
			n = len(s.queue)
		}
		batch := make([]string, n)
		copy(batch, s.queue[:n])
		s.queue = s.queue[n:]
		s.mu.Unlock()

		results := make([]*entity.GeocodeResult, len(batch))
		var wg sync.WaitGroup
		for i, name := range batch {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				results[i] = s.lookupAndCache(name)
			}(i, name)
		}
		wg.Wait()

		s.mu.Lock()
		for i, name := range batch {
			for _, ch := range s.inflight[name] {
				ch <- results[i]
			}
			delete(s.inflight, name)
		}
		more := len(s.queue) > 0
		s.mu.Unlock()

		if more {
			time.Sleep(s.batchDelay)
		}
	}
}

// lookupAndCache performs one upstream lookup and populates both cache tiers.
// Every failure mode degrades to nil so a bad name never aborts its batch.
func (s *Service) lookupAndCache(name string) *entity.GeocodeResult {
	ctx := context.Background()
	res, err := s.client.Lookup(ctx, name)
	if err != nil {
		s.logger.Warn("geocode lookup failed", "name", name, "error", err)
		return nil
	}
	if res == nil {
		s.logger.Info("geocode lookup returned no results", "name", name)
		return nil
	}

	s.mu.Lock()
	s.fast[name] = *res
	s.mu.Unlock()
	if s.durable != nil {
		if err := s.durable.Put(ctx, name, *res); err != nil {
			s.logger.Warn("durable geocode cache write failed", "name", name, "error", err)
		}
	}
	return res
}
