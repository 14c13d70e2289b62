// Package youtube — граница с платформой: канонические структуры ответа
// и контракт клиента YouTube Data API v3.
//
// Платформа — источник истины для данных видео/комментариев; пакеты выше
// (service) работают только с каноническими структурами и не видят wire-формат.
package youtube

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound — платформа сообщает, что ресурса не существует.
	ErrNotFound = errors.New("resource not found")
	// ErrQuotaExceeded — исчерпана квота/лимит частоты Data API.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

// Video — каноническое представление метаданных видео.
type Video struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ViewCount    uint64
	LikeCount    uint64
	CommentCount uint64
}

// Comment — каноническое представление корневого комментария треда.
type Comment struct {
	ID                 string
	AuthorName         string
	AuthorProfileImage string
	Text               string
	LikeCount          uint64
	PublishedAt        time.Time
	ReplyCount         int64
}

// Reply — каноническое представление ответа на комментарий.
type Reply struct {
	ID          string
	AuthorName  string
	Text        string
	PublishedAt time.Time
}

// Client описывает операции платформы, которые потребляет сервис.
// Реализация — API (Data API v3); в тестах подменяется моком.
type Client interface {
	// VideoByID возвращает метаданные видео.
	// Если видео не существует — ErrNotFound.
	VideoByID(ctx context.Context, videoID string) (*Video, error)

	// UpdateVideo обновляет title/description видео на платформе.
	// Категория и теги берутся из текущего snippet (платформа требует
	// полный snippet при update).
	UpdateVideo(ctx context.Context, videoID, title, description string) error

	// ListThreads возвращает до maxResults корневых комментариев видео,
	// новые первыми.
	ListThreads(ctx context.Context, videoID string, maxResults int64) ([]Comment, error)

	// InsertThread публикует новый корневой комментарий.
	InsertThread(ctx context.Context, videoID, text string) (*Comment, error)

	// InsertReply публикует ответ на существующий комментарий.
	InsertReply(ctx context.Context, parentID, text string) (*Reply, error)

	// DeleteComment удаляет комментарий на платформе.
	// Если комментария нет — ErrNotFound.
	DeleteComment(ctx context.Context, commentID string) error
}
