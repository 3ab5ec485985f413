package plugin

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/clarin-dspace/handle-resolver/internal/config"
	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/usecase"
	"github.com/clarin-dspace/handle-resolver/internal/kernel"
)

// memStore is an in-memory identifier and metadata store.
type memStore struct {
	mu       sync.Mutex
	handles  map[string]domain.Handle
	metadata map[uuid.UUID]map[string][]string
	fail     error
}

func newMemStore() *memStore {
	return &memStore{
		handles:  map[string]domain.Handle{},
		metadata: map[uuid.UUID]map[string][]string{},
	}
}

func (s *memStore) addURL(handle, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles[handle] = domain.Handle{Handle: handle, URL: &url}
}

func (s *memStore) addItem(handle string, fields map[string][]string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	item := domain.ResourceItem
	s.handles[handle] = domain.Handle{Handle: handle, ResourceType: &item, ResourceID: &id}
	s.metadata[id] = fields
	return id
}

func (s *memStore) GetByHandle(_ context.Context, handle string) (*domain.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	h, ok := s.handles[handle]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &h, nil
}

func (s *memStore) ListByPrefix(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	var out []string
	for h := range s.handles {
		if strings.HasPrefix(h, prefix+"/") {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *memStore) HasPrefix(_ context.Context, prefix string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}
	for h := range s.handles {
		if strings.HasPrefix(h, prefix+"/") {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) GetValues(_ context.Context, id uuid.UUID, field string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	return s.metadata[id][field], nil
}

// snapshot returns a copy of every stored handle, keyed by handle.
func (s *memStore) snapshot() map[string]domain.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.handles)
}

// countingTx records opened and released sessions.
type countingTx struct {
	opened   atomic.Int32
	released atomic.Int32
}

func (c *countingTx) WithReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	c.opened.Inc()
	defer c.released.Inc()
	return fn(ctx)
}

type testKernel struct {
	handles  usecase.HandleUseCase
	startErr error
	pingErr  error
	running  atomic.Bool
}

func (k *testKernel) Start(context.Context) error {
	if k.startErr != nil {
		return k.startErr
	}
	k.running.Store(true)
	return nil
}

func (k *testKernel) Destroy(context.Context) error {
	k.running.Store(false)
	return nil
}

func (k *testKernel) IsRunning() bool { return k.running.Load() }

func (k *testKernel) Ping(context.Context) error { return k.pingErr }

func (k *testKernel) Handles() usecase.HandleUseCase { return k.handles }

type harness struct {
	store   *memStore
	tx      *countingTx
	kernel  *testKernel
	built   atomic.Int32
	logs    *bytes.Buffer
	manager *kernel.Manager
	plugin  *Plugin
}

func newHarness(t *testing.T, props map[string]string) *harness {
	t.Helper()

	h := &harness{
		store: newMemStore(),
		tx:    &countingTx{},
		logs:  &bytes.Buffer{},
	}
	h.kernel = &testKernel{
		handles: usecase.NewHandleUseCase(h.tx, h.store, h.store, config.NewProperties(props)),
	}

	logger := slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h.manager = kernel.NewManager(func() (kernel.Kernel, error) {
		h.built.Inc()
		return h.kernel, nil
	}, logger)
	h.plugin = New(h.manager, logger)

	t.Cleanup(func() { _ = h.plugin.Shutdown(context.Background()) })
	return h
}

// sessionsBalanced reports whether every opened session was released.
func (h *harness) sessionsBalanced() bool {
	return h.tx.opened.Load() == h.tx.released.Load()
}
