package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
	// ErrInvalidEvent — тип события не входит в закрытое перечисление.
	ErrInvalidEvent = errors.New("invalid event type")
)

// Storage описывает операции над локальным кэшем (видео/комментарии/заметки)
// и append-only журналом аудита.
//
// Семантика upsert — merge, а не полная замена документа: обновляются только
// переданные платформенные поля, локальные поля (флаги модерации, user_note)
// при re-fetch сохраняются. Повторный upsert с тем же содержимым идемпотентен:
// дубликатов не возникает, итоговое состояние не меняется.
type Storage interface {
	// UpsertVideo создаёт или обновляет кэш-запись видео по VideoID.
	// Платформенные поля перезаписываются, last_fetched выставляется в now.
	UpsertVideo(ctx context.Context, video models.Video) (*models.Video, error)

	// UpdateVideoMeta обновляет только title/description кэш-записи
	// (локальная правка метаданных). Счётчики и last_fetched не трогает.
	// Отсутствующая запись создаётся (upsert).
	UpdateVideoMeta(ctx context.Context, videoID, title, description string) (*models.Video, error)

	// VideoByID возвращает кэш-запись видео.
	// Если записи нет — ErrNotFound.
	VideoByID(ctx context.Context, videoID string) (*models.Video, error)

	// UpsertComment создаёт или обновляет кэш-запись комментария по CommentID.
	// Перезаписываются только платформенные поля; is_hidden/is_pinned/user_note
	// задаются при первом создании и последующими upsert не затираются.
	UpsertComment(ctx context.Context, comment models.Comment) (*models.Comment, error)

	// SetModeration выставляет локальные флаги модерации.
	// Если записи нет — ErrNotFound.
	SetModeration(ctx context.Context, commentID string, mod models.Moderation) (*models.Comment, error)

	// IncReplyCount инкрементирует reply_count кэш-записи комментария.
	// Если записи нет — ErrNotFound.
	IncReplyCount(ctx context.Context, commentID string) error

	// DeleteComment удаляет кэш-запись комментария.
	// Если записи нет — ErrNotFound.
	DeleteComment(ctx context.Context, commentID string) error

	// CommentsByVideo возвращает кэшированные комментарии видео,
	// published_at DESC, не более limit (limit<=0 — лимит по конфигу).
	// Отсутствие записей — пустой срез, не ошибка.
	CommentsByVideo(ctx context.Context, videoID string, limit int32) ([]models.Comment, error)

	// CreateNote создаёт заметку: генерирует NoteID, проставляет времена.
	CreateNote(ctx context.Context, note models.Note) (*models.Note, error)

	// DeleteNote удаляет заметку по NoteID.
	// Если записи нет — ErrNotFound.
	DeleteNote(ctx context.Context, noteID string) error

	// NotesByVideo возвращает заметки видео, created_at DESC.
	NotesByVideo(ctx context.Context, videoID string) ([]models.Note, error)

	// AppendEvent добавляет запись в журнал аудита.
	// Журнал append-only; существующие записи никогда не изменяются.
	// Неизвестный Type — ErrInvalidEvent, запись не создаётся.
	AppendEvent(ctx context.Context, event models.Event) error

	// EventsByTime возвращает записи журнала, timestamp DESC, не более limit
	// (limit<=0 — лимит по конфигу, верхняя граница — Limits.Max).
	EventsByTime(ctx context.Context, limit int32) ([]models.Event, error)

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}
