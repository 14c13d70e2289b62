// Package models содержит доменные сущности dashboard-сервиса.
package models

import "time"

// Video — локальная проекция метаданных видео с платформы (MongoDB).
// Важно:
//   - VideoID — идентификатор, выданный платформой; уникальный ключ кэша.
//   - Title/Description/ThumbnailURL и счётчики — «последнее известное»
//     состояние с платформы, обновляется при каждом успешном чтении.
//   - LastFetched — момент последнего успешного чтения с платформы;
//     монотонно не убывает для одной записи.
//
// Запись создаётся при первом успешном fetch (upsert) и никогда не удаляется:
// дашборд работает с одним видео.
type Video struct {
	VideoID      string    `bson:"video_id" json:"videoId"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	ThumbnailURL string    `bson:"thumbnail_url" json:"thumbnailUrl"`
	ViewCount    uint64    `bson:"view_count" json:"viewCount"`
	LikeCount    uint64    `bson:"like_count" json:"likeCount"`
	CommentCount uint64    `bson:"comment_count" json:"commentCount"`
	LastFetched  time.Time `bson:"last_fetched" json:"lastFetched"`
}
