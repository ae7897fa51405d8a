package database

import (
	"testing"

	modelspkg "glowup/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesMessagingAndAchievements(t *testing.T) {
	var hasMessage, hasAchievement bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.Message:
			hasMessage = true
		case *modelspkg.UserAchievement:
			hasAchievement = true
		}
	}
	require.True(t, hasMessage, "PersistentModels should include Message")
	require.True(t, hasAchievement, "PersistentModels should include UserAchievement")
}
