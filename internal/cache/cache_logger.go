package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateProfileCache invalidates every cache entry touched by a profile
// mutation: the row itself, existence checks and the health-check row count.
func InvalidateProfileCache(ctx context.Context, cm *CacheManager, userID uint) {
	SafeDelete(ctx, cm.Profile, fmt.Sprintf("id:%d", userID))
	SafeInvalidatePattern(ctx, cm.Exists, fmt.Sprintf("user:%d*", userID))
	SafeInvalidatePattern(ctx, cm.Exists, "email:*")
	SafeDelete(ctx, cm.Stats, "user_count")
}
