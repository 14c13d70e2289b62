package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateNote создаёт заметку: генерирует note_id (UUID), проставляет времена.
// Входной Note должен содержать VideoID и Content; остальное вычисляется здесь.
func (m *Mongo) CreateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	const op = "storage/mongo/CreateNote"

	now := toMS(time.Now())

	note.NoteID = uuid.NewString()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := m.notes.InsertOne(ctx, note); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return &note, nil
}

// DeleteNote удаляет заметку по note_id.
// При отсутствии записи — storage.ErrNotFound.
func (m *Mongo) DeleteNote(ctx context.Context, noteID string) error {
	const op = "storage/mongo/DeleteNote"

	res, err := m.notes.DeleteOne(ctx, bson.D{{Key: "note_id", Value: strings.TrimSpace(noteID)}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// NotesByVideo возвращает заметки видео, created_at DESC, _id DESC.
func (m *Mongo) NotesByVideo(ctx context.Context, videoID string) ([]models.Note, error) {
	const op = "storage/mongo/NotesByVideo"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := m.notes.Find(ctx, bson.D{{Key: "video_id", Value: videoID}}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := make([]models.Note, 0)
	for cur.Next(ctx) {
		var note models.Note
		if err := cur.Decode(&note); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		note.CreatedAt = note.CreatedAt.UTC()
		note.UpdatedAt = note.UpdatedAt.UTC()
		items = append(items, note)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}
