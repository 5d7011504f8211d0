package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/staynest/staynest-backend/internal/models"
)

var RedisClient *redis.Client

const (
	listingCacheTTL       = time.Hour
	listingSearchCacheTTL = 5 * time.Minute
)

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CacheListing stores a listing by id with a one hour TTL.
func CacheListing(ctx context.Context, listing *models.Listing) error {
	if RedisClient == nil {
		return nil
	}

	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("listing:%d", listing.ID)
	return RedisClient.Set(ctx, key, data, listingCacheTTL).Err()
}

// GetCachedListing retrieves a cached listing by id. Returns redis.Nil on
// a miss or when redis is not configured.
func GetCachedListing(ctx context.Context, id uint) (*models.Listing, error) {
	if RedisClient == nil {
		return nil, redis.Nil
	}

	key := fmt.Sprintf("listing:%d", id)
	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var listing models.Listing
	if err := json.Unmarshal([]byte(data), &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// InvalidateListing drops the cached listing after a mutation.
func InvalidateListing(ctx context.Context, id uint) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Del(ctx, fmt.Sprintf("listing:%d", id)).Err()
}

// CacheListingSearch stores a search result set for a filter combination
// with a short TTL.
func CacheListingSearch(ctx context.Context, filterKey string, listings []models.Listing) error {
	if RedisClient == nil {
		return nil
	}

	data, err := json.Marshal(listings)
	if err != nil {
		return err
	}

	key := "listings:search:" + filterKey
	return RedisClient.Set(ctx, key, data, listingSearchCacheTTL).Err()
}

// GetCachedListingSearch retrieves a cached search result set. Returns
// redis.Nil on a miss or when redis is not configured.
func GetCachedListingSearch(ctx context.Context, filterKey string) ([]models.Listing, error) {
	if RedisClient == nil {
		return nil, redis.Nil
	}

	data, err := RedisClient.Get(ctx, "listings:search:"+filterKey).Result()
	if err != nil {
		return nil, err
	}

	var listings []models.Listing
	if err := json.Unmarshal([]byte(data), &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// InvalidateListingSearches drops all cached search result sets. Called
// after listing mutations so stale results don't outlive their TTL.
func InvalidateListingSearches(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}

	iter := RedisClient.Scan(ctx, 0, "listings:search:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
