package models

import "time"

// EventType — закрытое перечисление доменных событий аудита.
// Неизвестный тип отклоняется хранилищем на этапе append.
type EventType string

const (
	EventVideoFetched   EventType = "VIDEO_FETCHED"
	EventVideoUpdated   EventType = "VIDEO_UPDATED"
	EventCommentAdded   EventType = "COMMENT_ADDED"
	EventCommentDeleted EventType = "COMMENT_DELETED"
	EventReplyAdded     EventType = "REPLY_ADDED"
	EventNoteAdded      EventType = "NOTE_ADDED"
	EventNoteDeleted    EventType = "NOTE_DELETED"
)

// KnownEventType сообщает, входит ли тип в перечисление.
func KnownEventType(t EventType) bool {
	switch t {
	case EventVideoFetched, EventVideoUpdated,
		EventCommentAdded, EventCommentDeleted, EventReplyAdded,
		EventNoteAdded, EventNoteDeleted:
		return true
	default:
		return false
	}
}

// Event — неизменяемый факт аудита.
// Важно:
//   - журнал append-only: записи никогда не изменяются и не удаляются;
//   - канонический порядок чтения — Timestamp по убыванию;
//   - VideoID/CommentID/NoteID — опциональные корреляционные поля;
//   - Metadata — произвольные детали события (title, content и т.п.).
type Event struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	Type      EventType      `bson:"event_type" json:"eventType"`
	VideoID   string         `bson:"video_id,omitempty" json:"videoId,omitempty"`
	CommentID string         `bson:"comment_id,omitempty" json:"commentId,omitempty"`
	NoteID    string         `bson:"note_id,omitempty" json:"noteId,omitempty"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
}
