package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCredentials(t *testing.T) {
	key := hashCredentials("agent@estate.local", "hunter22")

	assert.True(t, strings.HasPrefix(key, "auth:"))
	assert.Len(t, key, len("auth:")+32)

	// Deterministic for the same credentials, different otherwise
	assert.Equal(t, key, hashCredentials("agent@estate.local", "hunter22"))
	assert.NotEqual(t, key, hashCredentials("agent@estate.local", "hunter23"))
	assert.NotEqual(t, key, hashCredentials("other@estate.local", "hunter22"))
}

func TestHelpersNoOpWithoutClient(t *testing.T) {
	// Without Init the client is nil; every helper must degrade silently
	ctx := context.Background()

	_, ok := GetCachedAuth(ctx, "a@b.c", "pw")
	assert.False(t, ok)
	CacheAuth(ctx, "a@b.c", "pw", 1)
	InvalidateAuth(ctx, "a@b.c", "pw")

	_, ok = GetCachedListings(ctx)
	assert.False(t, ok)
	CacheListings(ctx, []byte("[]"))
	InvalidateListings(ctx)
	InvalidateProperty(ctx, 1)
}
