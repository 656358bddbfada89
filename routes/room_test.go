package routes

import (
	"context"
	"testing"

	"hotel-management-server/storage"

	"github.com/go-redis/redis/v8"
)

func TestInvalidateAvailableRoomsCacheWithoutRedis(t *testing.T) {
	prev := storage.Redis
	storage.Redis = nil
	defer func() { storage.Redis = prev }()

	// Cache invalidation is best effort; with no client configured it is a
	// no-op rather than a panic.
	invalidateAvailableRoomsCache(context.Background())
}

func TestInvalidateAvailableRoomsCacheHonoursContext(t *testing.T) {
	prev := storage.Redis
	storage.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer func() {
		storage.Redis.Close()
		storage.Redis = prev
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An already-cancelled request context must make the round-trip return
	// promptly instead of blocking the handler on a dead client.
	invalidateAvailableRoomsCache(ctx)
}
