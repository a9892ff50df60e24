package store

import (
	"context"
	"sync"

	"github.com/PithLimb/StreamingServices/pkg/catalog"
)

// syncGateway serializes access to a backend so a signal-driven Close never
// lands in the middle of a Save.
type syncGateway struct {
	mu     sync.Mutex
	gw     Gateway
	closed bool
}

func newSyncGateway(gw Gateway) *syncGateway {
	return &syncGateway{gw: gw}
}

func (s *syncGateway) Load(ctx context.Context) (*catalog.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.gw.Load(ctx)
}

func (s *syncGateway) Save(ctx context.Context, registry *catalog.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.gw.Save(ctx, registry)
}

func (s *syncGateway) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.gw.Close()
}
