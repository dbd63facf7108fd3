package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_RoundTrip(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()

	cache.Set(ctx, "genres", map[int]string{18: "Drama"}, time.Hour)

	var got map[int]string
	require.True(t, cache.Get(ctx, "genres", &got))
	assert.Equal(t, map[int]string{18: "Drama"}, got)

	mr.FastForward(2 * time.Hour)
	assert.False(t, cache.Get(ctx, "genres", &got))
}

func TestCache_UndecodableEntryMisses(t *testing.T) {
	cache, mr := newRedisCache(t)
	require.NoError(t, mr.Set("bad", "{not json"))

	var got map[string]int
	assert.False(t, cache.Get(context.Background(), "bad", &got))
}

func TestCache_Invalidate(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()
	cache.Set(ctx, "recommendations:top:5", []int{1}, time.Hour)
	cache.Set(ctx, "recommendations:top:10", []int{1}, time.Hour)
	cache.Set(ctx, "tmdb:genres:tv", []int{1}, time.Hour)

	cache.Invalidate(ctx, "recommendations:*")

	assert.False(t, mr.Exists("recommendations:top:5"))
	assert.False(t, mr.Exists("recommendations:top:10"))
	assert.True(t, mr.Exists("tmdb:genres:tv"))
}

func TestCache_DisabledWithoutRedis(t *testing.T) {
	cache := NewCache(nil)
	ctx := context.Background()

	cache.Set(ctx, "k", 1, time.Minute)
	cache.Invalidate(ctx, "*")

	var got int
	assert.False(t, cache.Get(ctx, "k", &got))
}
