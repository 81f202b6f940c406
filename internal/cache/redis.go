package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Listing cache keys
const (
	PublicListingsKey = "properties:public"
	PropertyKeyFmt    = "properties:%d"
	listingTTL        = 5 * time.Minute
	authTTL           = 15 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: on failure
// the client stays nil and every helper becomes a no-op.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "redis"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client (nil when the cache is unavailable)
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials so repeat logins skip bcrypt
func CacheAuth(ctx context.Context, email, password string, userID int) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(email, password), userID, authTTL)
}

// InvalidateAuth removes cached auth for a user (on password change/logout)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	client.Del(ctx, hashCredentials(email, password))
}

// GetCachedListings returns the cached public property listing JSON
func GetCachedListings(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, PublicListingsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheListings stores the public property listing JSON
func CacheListings(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, PublicListingsKey, data, listingTTL)
}

// InvalidateListings drops the listing cache after any property write
func InvalidateListings(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, PublicListingsKey)
}

// InvalidateProperty drops a single cached property
func InvalidateProperty(ctx context.Context, propertyID int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(PropertyKeyFmt, propertyID))
}
