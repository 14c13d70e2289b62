package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"
	"github.com/pribylovaa/go-video-dashboard/pkg/log"
)

// Заметки — чисто локальный путь: платформа не вызывается вовсе.
// Порядок тот же, что и у reconcile-операций: валидация -> мутация
// хранилища -> аудит; если мутация хранилища не удалась, аудита нет.

// Notes возвращает заметки сконфигурированного видео, новые первыми.
func (s *Service) Notes(ctx context.Context) ([]models.Note, error) {
	const op = "service/notes/Notes"

	videoID, err := s.videoID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.storage.NotesByVideo(ctx, videoID)
	if err != nil {
		log.From(ctx).Error("storage error on NotesByVideo", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return items, nil
}

// AddNote создаёт заметку.
//
// Валидация: content после TrimSpace не пуст.
// Порядок: хранилище -> аудит NOTE_ADDED.
func (s *Service) AddNote(ctx context.Context, content string) (*models.Note, error) {
	const op = "service/notes/AddNote"

	videoID, err := s.videoID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "video_id", videoID)

	content = strings.TrimSpace(content)
	if content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	note, err := s.storage.CreateNote(ctx, models.Note{
		VideoID: videoID,
		Content: content,
	})
	if err != nil {
		lg.Error("storage error on CreateNote", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.appendEvent(ctx, models.Event{
		Type:     models.EventNoteAdded,
		VideoID:  videoID,
		NoteID:   note.NoteID,
		Metadata: map[string]any{"content": content},
	})

	return note, nil
}

// DeleteNote удаляет заметку по идентификатору.
//
// Порядок: хранилище -> аудит NOTE_DELETED; если заметки нет — ErrNotFound,
// аудита нет.
func (s *Service) DeleteNote(ctx context.Context, noteID string) error {
	const op = "service/notes/DeleteNote"

	noteID = strings.TrimSpace(noteID)
	lg := log.From(ctx).With("op", op, "note_id", noteID)

	if noteID == "" {
		lg.Warn("invalid argument: empty note_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteNote(ctx, noteID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("note not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteNote", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.appendEvent(ctx, models.Event{
		Type:    models.EventNoteDeleted,
		VideoID: s.cfg.YouTube.VideoID,
		NoteID:  noteID,
	})

	return nil
}
