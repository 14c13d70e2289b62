package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownEventType(t *testing.T) {
	known := []EventType{
		EventVideoFetched,
		EventVideoUpdated,
		EventCommentAdded,
		EventCommentDeleted,
		EventReplyAdded,
		EventNoteAdded,
		EventNoteDeleted,
	}

	for _, typ := range known {
		require.True(t, KnownEventType(typ), "type %s must be known", typ)
	}

	require.False(t, KnownEventType(""))
	require.False(t, KnownEventType("MODERATION_CHANGED"))
	require.False(t, KnownEventType("video_fetched")) // регистр имеет значение
}
