package panel_test

import (
	"context"
	"encoding/json"
	"errors"
	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/panel"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/cache"
	cacheMocks "hoteladmin/shared/cache/mocks"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func editingState() panel.State {
	state := panel.NewState()
	state.Form = panel.Editing(grandHotel())
	state.Records = []resource.Record{grandHotel()}
	state.Loaded = true

	return state
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := panel.NewMemoryStore()

	state, err := store.Load(ctx, "s1", "hotel")
	require.NoError(t, err)
	assert.Equal(t, panel.ModeIdle, state.Form.Mode())
	assert.False(t, state.Loaded)

	require.NoError(t, store.Save(ctx, "s1", "hotel", editingState()))

	state, err = store.Load(ctx, "s1", "hotel")
	require.NoError(t, err)
	assert.Equal(t, panel.ModeEditing, state.Form.Mode())

	other, err := store.Load(ctx, "s2", "hotel")
	require.NoError(t, err)
	assert.False(t, other.Form.Open())

	room, err := store.Load(ctx, "s1", "room")
	require.NoError(t, err)
	assert.False(t, room.Form.Open())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := panel.NewMemoryStore()

	state := editingState()
	require.NoError(t, store.Save(ctx, "s1", "hotel", state))

	state.Records[0]["hotelName"] = "Plaza"

	loaded, err := store.Load(ctx, "s1", "hotel")
	require.NoError(t, err)
	assert.Equal(t, "Grand", loaded.Records[0]["hotelName"])
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := panel.NewMemoryStore()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			state, err := store.Load(ctx, "s1", "hotel")
			assert.NoError(t, err)
			assert.NoError(t, store.Save(ctx, "s1", "hotel", state))
		}()
	}

	wg.Wait()
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ot := otelMocks.NewOtel()
	store := panel.NewRedisStore(cache.NewRedisCache(client, ot), ot, 60)

	state, err := store.Load(ctx, "s1", "hotel")
	require.NoError(t, err)
	assert.False(t, state.Form.Open())

	require.NoError(t, store.Save(ctx, "s1", "hotel", editingState()))
	assert.True(t, mr.Exists("panel:s1:hotel"))

	state, err = store.Load(ctx, "s1", "hotel")
	require.NoError(t, err)
	assert.Equal(t, panel.ModeEditing, state.Form.Mode())
	assert.Equal(t, json.Number("1"), state.Form.Draft()["hotelId"])
	assert.Equal(t, []resource.Record{grandHotel()}, state.Records)

	mr.FastForward(61 * time.Second)

	state, err = store.Load(ctx, "s1", "hotel")
	require.NoError(t, err)
	assert.False(t, state.Loaded)
}

func TestRedisStore_CacheFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	store := panel.NewRedisStore(redisCache, otelMocks.NewOtel(), 60)

	redisCache.EXPECT().Get(gomock.Any(), "panel:s1:hotel", gomock.Any()).Return(errors.New("connection reset"))
	redisCache.EXPECT().Save(gomock.Any(), "panel:s1:hotel", gomock.Any(), 60).Return(errors.New("connection reset"))

	_, err := store.Load(context.Background(), "s1", "hotel")
	assert.Error(t, err)

	err = store.Save(context.Background(), "s1", "hotel", panel.NewState())
	assert.Error(t, err)
}
