package authstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisKV(t *testing.T) *RedisKV {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisKVFromClient(client)
}

func TestRedisStore(t *testing.T) {
	runStoreContract(t, setupRedisKV(t))
}

func TestRedisKeysAreNamespaced(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	kv := NewRedisKVFromClient(client)
	require.NoError(t, kv.Set(ctx, KeyAccessToken, "token"))

	got, err := mr.Get("fairsplit:admin:accessToken")
	require.NoError(t, err)
	assert.Equal(t, "token", got)
}
