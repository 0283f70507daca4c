package cache

import (
	"context"
	"testing"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *SessionRedisStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewSessionRedisStore(client, ttl)
}

func testSession(id string) *evaluation.Session {
	now := time.Date(2026, time.April, 10, 14, 0, 0, 0, time.UTC)
	profile := entities.UserProfile{UID: "u-7", Name: "Bruno", Unit: "Sede", Role: entities.RoleTitular}
	return evaluation.NewSession(id, profile, entities.FinancialDetails{}, now)
}

func TestSessionRedisStore_SaveGet(t *testing.T) {
	mr, store := setupTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s-10")))

	assert.True(t, mr.Exists("session:s-10"))
	assert.Equal(t, time.Hour, mr.TTL("session:s-10"))

	got, err := store.Get(ctx, "s-10")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u-7", got.OwnerUID)
	assert.Equal(t, "Sede", got.Profile.Unit)
}

func TestSessionRedisStore_GetMissing(t *testing.T) {
	_, store := setupTestStore(t, time.Hour)

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRedisStore_Expires(t *testing.T) {
	mr, store := setupTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s-11")))
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "s-11")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRedisStore_SaveRefreshesTTL(t *testing.T) {
	mr, store := setupTestStore(t, time.Minute)
	ctx := context.Background()
	sess := testSession("s-12")

	require.NoError(t, store.Save(ctx, sess))
	mr.FastForward(40 * time.Second)
	require.NoError(t, store.Save(ctx, sess))
	mr.FastForward(40 * time.Second)

	got, err := store.Get(ctx, "s-12")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestSessionRedisStore_Delete(t *testing.T) {
	mr, store := setupTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s-13")))
	require.NoError(t, store.Delete(ctx, "s-13"))
	assert.False(t, mr.Exists("session:s-13"))

	require.NoError(t, store.Delete(ctx, "s-13"))
}

func TestSessionRedisStore_Errors(t *testing.T) {
	mr, store := setupTestStore(t, time.Hour)
	ctx := context.Background()
	mr.SetError("LOADING")

	assert.Error(t, store.Save(ctx, testSession("s-14")))
	_, err := store.Get(ctx, "s-14")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, "s-14"))
}

func TestSessionRedisStore_CorruptValue(t *testing.T) {
	mr, store := setupTestStore(t, time.Hour)
	require.NoError(t, mr.Set("session:bad", "not json"))

	_, err := store.Get(context.Background(), "bad")
	assert.Error(t, err)
}
