package panel

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	storeKeyPrefix = "panel"

	otelAttrStoreKey = "store.key"
)

// Store keeps one panel State per session and resource. Saves are last-write-wins.
type Store interface {
	// Load returns a fresh State when nothing was saved yet.
	Load(ctx context.Context, session, resourceName string) (State, error)
	Save(ctx context.Context, session, resourceName string, state State) error
}

func storeKey(session, resourceName string) string {
	return fmt.Sprintf("%s:%s:%s", storeKeyPrefix, session, resourceName)
}

// NewStore picks the store named by APP_SESSION_STORE.
func NewStore(cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Store {
	if cfg.App.Session.Store == config.SessionStoreRedis {
		log.Info().Msg("Panel state is kept in redis")

		return NewRedisStore(redisCache, ot, cfg.Cache.TTL)
	}

	log.Info().Msg("Panel state is kept in memory")

	return NewMemoryStore()
}

type memoryStore struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemoryStore() Store {
	return &memoryStore{states: make(map[string]State)}
}

func (m *memoryStore) Load(_ context.Context, session, resourceName string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[storeKey(session, resourceName)]
	if !ok {
		return NewState(), nil
	}

	return state.Clone(), nil
}

func (m *memoryStore) Save(_ context.Context, session, resourceName string, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[storeKey(session, resourceName)] = state.Clone()

	return nil
}

type redisStore struct {
	cache cache.RedisCache
	otel  otel.Otel
	ttl   int
}

func NewRedisStore(redisCache cache.RedisCache, ot otel.Otel, ttl int) Store {
	return &redisStore{
		cache: redisCache,
		otel:  ot,
		ttl:   ttl,
	}
}

func (r *redisStore) Load(ctx context.Context, session, resourceName string) (state State, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := storeKey(session, resourceName)
	scope.SetAttribute(otelAttrStoreKey, key)

	err = r.cache.Get(ctx, key, &state)
	if errors.Is(err, cache.Nil) {
		return NewState(), nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to load panel state")

		return NewState(), fmt.Errorf("failed to load panel state: %w", err)
	}

	return state, nil
}

func (r *redisStore) Save(ctx context.Context, session, resourceName string, state State) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := storeKey(session, resourceName)
	scope.SetAttribute(otelAttrStoreKey, key)

	if err = r.cache.Save(ctx, key, state, r.ttl); err != nil {
		return fmt.Errorf("failed to save panel state: %w", err)
	}

	return nil
}
