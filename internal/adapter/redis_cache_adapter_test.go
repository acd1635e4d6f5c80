package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"notesquiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapterGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("notesquiz:quiz:record:quiz-abc").SetVal(`{"id":"quiz-abc"}`)

		val, err := cache.Get(ctx, "notesquiz:quiz:record:quiz-abc")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"quiz-abc"}`, val)
	})

	t.Run("miss maps to ErrCacheMiss", func(t *testing.T) {
		mock.ExpectGet("notesquiz:quiz:record:quiz-nope").RedisNil()

		_, err := cache.Get(ctx, "notesquiz:quiz:record:quiz-nope")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("transport error passes through", func(t *testing.T) {
		mock.ExpectGet("notesquiz:quiz:record:quiz-err").SetErr(errors.New("connection refused"))

		_, err := cache.Get(ctx, "notesquiz:quiz:record:quiz-err")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectSet("notesquiz:quiz:record:quiz-abc", `{"id":"quiz-abc"}`, time.Hour).SetVal("OK")

	err := cache.Set(context.Background(), "notesquiz:quiz:record:quiz-abc", `{"id":"quiz-abc"}`, time.Hour)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectDel("notesquiz:quiz:record:quiz-abc").SetVal(1)

	err := cache.Delete(context.Background(), "notesquiz:quiz:record:quiz-abc")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterPing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
