package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapterGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectGet("exam:snapshot:1").SetVal(`{"exam":null}`)

	value, err := cacheAdapter.Get(context.Background(), "exam:snapshot:1")
	require.NoError(t, err)
	assert.Equal(t, `{"exam":null}`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterGetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectGet("missing").RedisNil()

	_, err := cacheAdapter.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectSet("key", "value", time.Minute).SetVal("OK")

	err := cacheAdapter.Set(context.Background(), "key", "value", time.Minute)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)

	mock.ExpectDel("key").SetVal(1)

	err := cacheAdapter.Delete(context.Background(), "key")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
