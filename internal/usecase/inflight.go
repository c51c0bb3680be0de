package usecase

import "sync"

// inflightGuard rejects a second mutation of an order while one is outstanding.
type inflightGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{running: make(map[string]struct{})}
}

func (g *inflightGuard) acquire(orderID string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[orderID]; busy {
		return nil, ErrSaveInProgress
	}
	g.running[orderID] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.running, orderID)
		g.mu.Unlock()
	}, nil
}
