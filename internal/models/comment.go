package models

import "time"

// Comment — кэш-проекция корневого комментария треда на платформе.
// Важно:
//   - CommentID — идентификатор треда на платформе; уникальный ключ.
//   - Поля автора/текста/счётчиков приходят с платформы и перезаписываются
//     при каждом re-fetch.
//   - IsHidden/IsPinned/UserNote — локальные поля модерации; платформа о них
//     не знает, и merge-upsert обязан их сохранять при перезаписи
//     платформенных полей.
//   - LastFetched — момент последнего успешного чтения с платформы.
type Comment struct {
	CommentID          string    `bson:"comment_id" json:"commentId"`
	VideoID            string    `bson:"video_id" json:"videoId"`
	AuthorName         string    `bson:"author_name" json:"authorName"`
	AuthorProfileImage string    `bson:"author_profile_image" json:"authorProfileImage"`
	Text               string    `bson:"text" json:"text"`
	LikeCount          uint64    `bson:"like_count" json:"likeCount"`
	PublishedAt        time.Time `bson:"published_at" json:"publishedAt"`
	ReplyCount         int64     `bson:"reply_count" json:"replyCount"`
	IsHidden           bool      `bson:"is_hidden" json:"isHidden"`
	IsPinned           bool      `bson:"is_pinned" json:"isPinned"`
	UserNote           string    `bson:"user_note" json:"userNote"`
	LastFetched        time.Time `bson:"last_fetched" json:"lastFetched"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}

// Reply — опубликованный ответ на комментарий. В кэше не хранится
// (кэш держит только корневые треды), возвращается вызывающему как есть.
type Reply struct {
	ReplyID     string    `json:"replyId"`
	ParentID    string    `json:"parentId"`
	AuthorName  string    `json:"authorName"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Moderation — локальные флаги модерации комментария.
type Moderation struct {
	IsHidden bool
	IsPinned bool
	UserNote string
}
