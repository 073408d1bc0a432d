package configs

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ProbeTimeout bounds the startup reachability check of the primary base.
const ProbeTimeout = 2 * time.Second

// HealthResolver decides which upstream base URL the process talks to.
// It probes the primary once; if the probe fails or times out, the fallback
// becomes the active base. Components that issue upstream requests wait on
// Ready before reading ActiveBase.
type HealthResolver struct {
	primary  string
	fallback string
	client   *http.Client

	once  sync.Once
	ready chan struct{}

	mu     sync.RWMutex
	active string
}

func NewHealthResolver(primary, fallback string) *HealthResolver {
	return &HealthResolver{
		primary:  primary,
		fallback: fallback,
		client:   &http.Client{},
		ready:    make(chan struct{}),
		active:   primary,
	}
}

// Resolve runs the probe (once) and returns the chosen base. Safe to call
// from multiple goroutines; later calls return the already-chosen base.
func (r *HealthResolver) Resolve(ctx context.Context) string {
	r.once.Do(func() {
		defer close(r.ready)
		if err := r.probe(ctx); err != nil {
			log.Warn().Err(err).Str("fallback", r.fallback).Msg("primary unreachable, switching base")
			r.mu.Lock()
			r.active = r.fallback
			r.mu.Unlock()
			return
		}
		log.Info().Str("base", r.primary).Msg("primary upstream is online")
	})
	<-r.ready
	return r.ActiveBase()
}

// Ready is closed once the base has been decided.
func (r *HealthResolver) Ready() <-chan struct{} { return r.ready }

// ActiveBase returns the currently active base. Before Resolve completes it
// reports the primary.
func (r *HealthResolver) ActiveBase() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *HealthResolver) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.primary+"/api/hero", nil)
	if err != nil {
		return err
	}
	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("probe status %d", res.StatusCode)
	}
	return nil
}
