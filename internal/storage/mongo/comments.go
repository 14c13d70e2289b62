package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// limitOrDefault приводит запрошенный лимит к (0, Max].
func limitOrDefault(def, max, limit int32) int64 {
	lim := limit
	if lim <= 0 {
		lim = def
	}

	if lim > max {
		lim = max
	}

	return int64(lim)
}

// UpsertComment создаёт или обновляет кэш-запись комментария по comment_id.
// Merge-семантика: $set затрагивает только платформенные поля; локальные
// is_hidden/is_pinned/user_note задаются через $setOnInsert и последующими
// re-fetch не затираются.
func (m *Mongo) UpsertComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/UpsertComment"

	id := strings.TrimSpace(comment.CommentID)
	if id == "" {
		return nil, fmt.Errorf("%s: empty comment_id", op)
	}

	now := toMS(time.Now())

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "video_id", Value: comment.VideoID},
			{Key: "author_name", Value: comment.AuthorName},
			{Key: "author_profile_image", Value: comment.AuthorProfileImage},
			{Key: "text", Value: comment.Text},
			{Key: "like_count", Value: comment.LikeCount},
			{Key: "published_at", Value: toMS(comment.PublishedAt)},
			{Key: "reply_count", Value: comment.ReplyCount},
			{Key: "last_fetched", Value: now},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "comment_id", Value: id},
			{Key: "is_hidden", Value: false},
			{Key: "is_pinned", Value: false},
			{Key: "user_note", Value: ""},
			{Key: "created_at", Value: now},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Comment
	err := m.comments.FindOneAndUpdate(ctx, bson.D{{Key: "comment_id", Value: id}}, update, opts).Decode(&out)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizeComment(&out)
	return &out, nil
}

// SetModeration выставляет локальные флаги модерации.
// Платформа об этих полях не знает; запись должна уже существовать в кэше.
func (m *Mongo) SetModeration(ctx context.Context, commentID string, mod models.Moderation) (*models.Comment, error) {
	const op = "storage/mongo/SetModeration"

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "is_hidden", Value: mod.IsHidden},
			{Key: "is_pinned", Value: mod.IsPinned},
			{Key: "user_note", Value: mod.UserNote},
			{Key: "updated_at", Value: toMS(time.Now())},
		}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.Comment
	err := m.comments.FindOneAndUpdate(ctx, bson.D{{Key: "comment_id", Value: strings.TrimSpace(commentID)}}, update, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizeComment(&out)
	return &out, nil
}

// IncReplyCount инкрементирует reply_count у кэш-записи комментария.
func (m *Mongo) IncReplyCount(ctx context.Context, commentID string) error {
	const op = "storage/mongo/IncReplyCount"

	res, err := m.comments.UpdateOne(ctx, bson.D{{Key: "comment_id", Value: strings.TrimSpace(commentID)}}, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "reply_count", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteComment удаляет кэш-запись комментария.
// При отсутствии записи — storage.ErrNotFound.
func (m *Mongo) DeleteComment(ctx context.Context, commentID string) error {
	const op = "storage/mongo/DeleteComment"

	res, err := m.comments.DeleteOne(ctx, bson.D{{Key: "comment_id", Value: strings.TrimSpace(commentID)}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// CommentsByVideo возвращает кэшированные комментарии видео.
// Сортировка: published_at DESC, _id DESC. Пустая выдача — пустой срез.
func (m *Mongo) CommentsByVideo(ctx context.Context, videoID string, limit int32) ([]models.Comment, error) {
	const op = "storage/mongo/CommentsByVideo"

	lim := limitOrDefault(m.cfg.Limits.Default, m.cfg.Limits.Max, limit)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(lim)

	cur, err := m.comments.Find(ctx, bson.D{{Key: "video_id", Value: videoID}}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := make([]models.Comment, 0, lim)
	for cur.Next(ctx) {
		var comm models.Comment
		if err := cur.Decode(&comm); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		normalizeComment(&comm)
		items = append(items, comm)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// normalizeComment приводит временные поля к UTC после декодирования.
func normalizeComment(c *models.Comment) {
	c.PublishedAt = c.PublishedAt.UTC()
	c.LastFetched = c.LastFetched.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
}
