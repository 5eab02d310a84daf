package ratelimit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// setupTestRedis creates an in-memory Redis server for testing
func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
		DB:   0,
	})

	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Failed to connect to test Redis: %v", err)
	}

	cleanup := func() {
		redisClient.Close()
		mr.Close()
	}

	return redisClient, cleanup
}

func TestTokenBucket_Allow(t *testing.T) {
	redisClient, cleanup := setupTestRedis(t)
	defer cleanup()

	// 5 tokens, refill 5 per minute
	bucket := NewTokenBucket(redisClient, 5, 5)

	ctx := context.Background()
	userID := "42"
	action := "shoutouts"

	for i := 0; i < 5; i++ {
		allowed, err := bucket.Allow(ctx, userID, action)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
	}

	// The 6th request exhausts the bucket
	allowed, err := bucket.Allow(ctx, userID, action)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("Expected request to be denied after limit reached")
	}

	remaining, err := bucket.GetRemaining(ctx, userID, action)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("Expected 0 remaining tokens, got %d", remaining)
	}
}

func TestTokenBucket_IsolatedPerAction(t *testing.T) {
	redisClient, cleanup := setupTestRedis(t)
	defer cleanup()

	bucket := NewTokenBucket(redisClient, 2, 2)
	ctx := context.Background()

	// Draining the shoutouts budget leaves the reactions budget untouched.
	bucket.Allow(ctx, "42", "shoutouts")
	bucket.Allow(ctx, "42", "shoutouts")

	allowed, err := bucket.Allow(ctx, "42", "reactions")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Fatal("Expected a different action to have its own budget")
	}

	allowed, err = bucket.Allow(ctx, "7", "shoutouts")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Fatal("Expected a different user to have their own budget")
	}
}

func TestTokenBucket_Reset(t *testing.T) {
	redisClient, cleanup := setupTestRedis(t)
	defer cleanup()

	bucket := NewTokenBucket(redisClient, 5, 5)

	ctx := context.Background()
	userID := "42"
	action := "comments"

	for i := 0; i < 5; i++ {
		bucket.Allow(ctx, userID, action)
	}

	err := bucket.Reset(ctx, userID, action)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	remaining, err := bucket.GetRemaining(ctx, userID, action)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if remaining != 5 {
		t.Fatalf("Expected 5 remaining tokens after reset, got %d", remaining)
	}
}
