package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix          = "user:%d"
	PostKeyPrefix          = "post:%d"
	ConversationsKeyPrefix = "conversations:%d"
	GuideKeyPrefix         = "guide:%d:%s"
	ProductsVersionKey     = "products:version"
	PostsVersionKey        = "posts:version"
)

const (
	UserTTL          = 5 * time.Minute
	PostTTL          = 30 * time.Minute
	ListTTL          = 2 * time.Minute
	ConversationsTTL = 1 * time.Minute
	ProductsTTL      = 10 * time.Minute
	GuideTTL         = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// ConversationsKey is the cached conversation index for one user.
func ConversationsKey(userID uint) string {
	return fmt.Sprintf(ConversationsKeyPrefix, userID)
}

// GuideKey caches the built guide for a user and achievement type.
func GuideKey(userID uint, achievementType string) string {
	return fmt.Sprintf(GuideKeyPrefix, userID, achievementType)
}

// versionedKey builds a list key that embeds a monotonically increasing
// version. Bumping the version invalidates every reader at once without
// scanning for stale keys.
func versionedKey(ctx context.Context, versionKey, prefix string) string {
	version := int64(0)
	if client != nil {
		if v, err := client.Get(ctx, versionKey).Int64(); err == nil {
			version = v
		}
	}
	return fmt.Sprintf("%s:v%d", prefix, version)
}

func bumpVersion(ctx context.Context, versionKey string) {
	if client != nil {
		client.Incr(ctx, versionKey)
	}
}

// PostsListKey is the versioned key for the first page of the global feed.
func PostsListKey(ctx context.Context) string {
	return versionedKey(ctx, PostsVersionKey, "posts:list")
}

// ProductsListKey is the versioned key for the full product catalog.
func ProductsListKey(ctx context.Context) string {
	return versionedKey(ctx, ProductsVersionKey, "products:list")
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateConversations drops the cached conversation index for both
// parties of a message.
func InvalidateConversations(ctx context.Context, userIDs ...uint) {
	for _, id := range userIDs {
		Invalidate(ctx, ConversationsKey(id))
	}
}

func InvalidateGuide(ctx context.Context, userID uint, achievementType string) {
	Invalidate(ctx, GuideKey(userID, achievementType))
}

func InvalidatePostsList(ctx context.Context) {
	bumpVersion(ctx, PostsVersionKey)
}

func InvalidateProductsList(ctx context.Context) {
	bumpVersion(ctx, ProductsVersionKey)
}
