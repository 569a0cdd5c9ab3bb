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

// InvalidateOpportunityCache drops cached listings after an import or
// create changes the opportunity table.
func InvalidateOpportunityCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Opportunity, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, "opportunities:*")
}

// InvalidateUserRecommendations drops cached results for one user after
// a fresh generation run persists new records.
func InvalidateUserRecommendations(ctx context.Context, cm *CacheManager, userID string) {
	SafeDelete(ctx, cm.Recommendation,
		fmt.Sprintf("internships:%s", userID),
		fmt.Sprintf("projects:%s", userID),
		fmt.Sprintf("skills:%s", userID))
	SafeInvalidatePattern(ctx, cm.Profile, fmt.Sprintf("%s:*", userID))
}
