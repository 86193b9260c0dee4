package services

import (
	"context"
	"errors"
	"sync"
)

// LocationResolver is the resolver contract QueryTracker wraps. *Geocoder
// satisfies it.
type LocationResolver interface {
	Resolve(ctx context.Context, query string) (GeoLocation, error)
}

// ErrQuerySuperseded means a newer query was issued for the same slot while
// this one was in flight; its result must be discarded.
var ErrQuerySuperseded = errors.New("query superseded by a newer one")

// QueryTracker enforces last-query-wins per display slot: issuing a new
// query for a slot aborts the in-flight one, and a completion whose
// generation no longer matches the slot's latest is discarded. This keeps a
// slow first resolution from overwriting a fast second one.
type QueryTracker struct {
	resolver LocationResolver

	mu    sync.Mutex
	slots map[string]*slotState
}

type slotState struct {
	gen    uint64
	cancel context.CancelFunc
}

func NewQueryTracker(resolver LocationResolver) *QueryTracker {
	return &QueryTracker{
		resolver: resolver,
		slots:    make(map[string]*slotState),
	}
}

// Resolve runs the query for the given slot. If a newer Resolve for the
// same slot starts before this one finishes, this call returns
// ErrQuerySuperseded and its result is dropped.
func (t *QueryTracker) Resolve(ctx context.Context, slot, query string) (GeoLocation, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.mu.Lock()
	st, ok := t.slots[slot]
	if !ok {
		st = &slotState{}
		t.slots[slot] = st
	}
	if st.cancel != nil {
		st.cancel()
	}
	st.gen++
	gen := st.gen
	st.cancel = cancel
	t.mu.Unlock()

	loc, err := t.resolver.Resolve(ctx, query)

	t.mu.Lock()
	stale := st.gen != gen
	if !stale {
		st.cancel = nil
	}
	t.mu.Unlock()

	if stale {
		return GeoLocation{}, ErrQuerySuperseded
	}
	return loc, err
}
