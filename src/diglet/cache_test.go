// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjt263/diglet/src/diglet"
)

func TestMemoryCacheSetGet(t *testing.T) {
	cache := diglet.NewMemoryCache(time.Minute)

	want := diglet.Outcome{
		Status:  diglet.StatusSuccess,
		Records: []string{"192.0.2.1"},
	}
	cache.Set("example.com|A", want)

	got, ok := cache.Get("example.com|A")
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = cache.Get("example.com|MX")
	assert.False(t, ok, "miss for an unknown key")
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := diglet.NewMemoryCache(30 * time.Millisecond)

	cache.Set("example.com|A", diglet.Outcome{Status: diglet.StatusSuccess})

	_, ok := cache.Get("example.com|A")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = cache.Get("example.com|A")
	assert.False(t, ok, "expired entry must not be returned")
}

func TestMemoryCacheFlush(t *testing.T) {
	cache := diglet.NewMemoryCache(time.Minute)

	cache.Set("a|A", diglet.Outcome{})
	cache.Set("b|A", diglet.Outcome{})
	cache.Flush()

	_, ok := cache.Get("a|A")
	assert.False(t, ok)
	_, ok = cache.Get("b|A")
	assert.False(t, ok)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	cache := diglet.NewMemoryCache(time.Minute)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			cache.Set("example.com|A", diglet.Outcome{Status: diglet.StatusSuccess})
		}
	}()
	for i := 0; i < 500; i++ {
		cache.Get("example.com|A")
	}
	<-done
}
