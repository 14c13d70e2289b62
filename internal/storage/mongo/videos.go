package mongo

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// toMS усекает время до миллисекунд: MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// UpsertVideo создаёт или обновляет кэш-запись видео по video_id.
// Merge-семантика: перезаписываются только платформенные поля, last_fetched
// выставляется в now и потому монотонно не убывает. Повторный вызов с тем же
// содержимым не порождает дубликатов (уникальный индекс по video_id).
func (m *Mongo) UpsertVideo(ctx context.Context, video models.Video) (*models.Video, error) {
	const op = "storage/mongo/UpsertVideo"

	now := toMS(time.Now())

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "title", Value: video.Title},
			{Key: "description", Value: video.Description},
			{Key: "thumbnail_url", Value: video.ThumbnailURL},
			{Key: "view_count", Value: video.ViewCount},
			{Key: "like_count", Value: video.LikeCount},
			{Key: "comment_count", Value: video.CommentCount},
			{Key: "last_fetched", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "video_id", Value: video.VideoID},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Video
	err := m.videos.FindOneAndUpdate(ctx, bson.D{{Key: "video_id", Value: video.VideoID}}, update, opts).Decode(&out)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.LastFetched = out.LastFetched.UTC()
	return &out, nil
}

// UpdateVideoMeta обновляет только title/description (локальная правка).
// Счётчики и last_fetched не трогаются; отсутствующая запись создаётся.
func (m *Mongo) UpdateVideoMeta(ctx context.Context, videoID, title, description string) (*models.Video, error) {
	const op = "storage/mongo/UpdateVideoMeta"

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "title", Value: title},
			{Key: "description", Value: description},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "video_id", Value: videoID},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Video
	err := m.videos.FindOneAndUpdate(ctx, bson.D{{Key: "video_id", Value: videoID}}, update, opts).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.LastFetched = out.LastFetched.UTC()
	return &out, nil
}

// VideoByID возвращает кэш-запись видео; если её нет — storage.ErrNotFound.
func (m *Mongo) VideoByID(ctx context.Context, videoID string) (*models.Video, error) {
	const op = "storage/mongo/VideoByID"

	var out models.Video
	if err := m.videos.FindOne(ctx, bson.D{{Key: "video_id", Value: videoID}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.LastFetched = out.LastFetched.UTC()
	return &out, nil
}
