package models

import "time"

// Note — приватная заметка владельца; на платформу никогда не уходит.
// NoteID — UUID, генерируется хранилищем при создании.
type Note struct {
	NoteID    string    `bson:"note_id" json:"noteId"`
	VideoID   string    `bson:"video_id" json:"videoId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
