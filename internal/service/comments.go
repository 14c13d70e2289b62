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

// ModerateInput — локальные флаги модерации комментария.
type ModerateInput struct {
	IsHidden bool
	IsPinned bool
	UserNote string
}

// Comments — живое чтение корневых комментариев видео.
//
// Каждый полученный тред merge-upsert-ится в кэш: платформенные поля
// перезаписываются, локальные флаги модерации сохраняются. Записи аудита
// нет — перечисление событий не содержит fetch-события для комментариев.
// Ответ собирается из кэша, чтобы выдача содержала локальные флаги.
func (s *Service) Comments(ctx context.Context) ([]models.Comment, error) {
	const op = "service/comments/Comments"

	videoID, err := s.videoID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "video_id", videoID)

	threads, err := s.yt.ListThreads(ctx, videoID, s.cfg.Limits.CommentsMax)
	if err != nil {
		return nil, s.platformErr(ctx, op, err)
	}

	out := make([]models.Comment, 0, len(threads))
	for _, th := range threads {
		stored, err := s.storage.UpsertComment(ctx, models.Comment{
			CommentID:          th.ID,
			VideoID:            videoID,
			AuthorName:         th.AuthorName,
			AuthorProfileImage: th.AuthorProfileImage,
			Text:               th.Text,
			LikeCount:          th.LikeCount,
			PublishedAt:        th.PublishedAt,
			ReplyCount:         th.ReplyCount,
		})
		if err != nil {
			lg.Error("cache upsert failed after platform read", "comment_id", th.ID, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		out = append(out, *stored)
	}

	return out, nil
}

// PostComment — write-reconcile публикации корневого комментария.
//
// Валидация: text после TrimSpace не пуст — иначе ErrInvalidArgument без
// вызова платформы и без записи аудита.
// Порядок: платформа -> upsert в кэш -> аудит COMMENT_ADDED.
func (s *Service) PostComment(ctx context.Context, text string) (*models.Comment, error) {
	const op = "service/comments/PostComment"

	videoID, err := s.videoID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "video_id", videoID)

	text = strings.TrimSpace(text)
	if text == "" {
		lg.Warn("invalid argument: empty text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	posted, err := s.yt.InsertThread(ctx, videoID, text)
	if err != nil {
		return nil, s.platformErr(ctx, op, err)
	}

	stored, err := s.storage.UpsertComment(ctx, models.Comment{
		CommentID:          posted.ID,
		VideoID:            videoID,
		AuthorName:         posted.AuthorName,
		AuthorProfileImage: posted.AuthorProfileImage,
		Text:               posted.Text,
		LikeCount:          posted.LikeCount,
		PublishedAt:        posted.PublishedAt,
		ReplyCount:         posted.ReplyCount,
	})
	if err != nil {
		// Платформенная мутация уже случилась и откату не подлежит —
		// окно рассинхрона фиксируем в логе и отдаём ошибку.
		lg.Error("cache upsert failed after platform insert", "comment_id", posted.ID, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.appendEvent(ctx, models.Event{
		Type:      models.EventCommentAdded,
		VideoID:   videoID,
		CommentID: posted.ID,
		Metadata:  map[string]any{"text": text},
	})

	return stored, nil
}

// PostReply — write-reconcile ответа на комментарий parentID.
//
// Кэш хранит только корневые треды, поэтому локальная мутация — инкремент
// reply_count у родителя (best-effort: родителя может не быть в кэше).
// Аудит — REPLY_ADDED.
func (s *Service) PostReply(ctx context.Context, parentID, text string) (*models.Reply, error) {
	const op = "service/comments/PostReply"

	parentID = strings.TrimSpace(parentID)
	text = strings.TrimSpace(text)

	lg := log.From(ctx).With("op", op, "parent_id", parentID)

	if parentID == "" || text == "" {
		lg.Warn("invalid argument: empty parent_id or text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	posted, err := s.yt.InsertReply(ctx, parentID, text)
	if err != nil {
		return nil, s.platformErr(ctx, op, err)
	}

	if err := s.storage.IncReplyCount(ctx, parentID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		lg.Error("cache reply_count bump failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.appendEvent(ctx, models.Event{
		Type:      models.EventReplyAdded,
		CommentID: parentID,
		Metadata:  map[string]any{"text": text, "reply_id": posted.ID},
	})

	return &models.Reply{
		ReplyID:     posted.ID,
		ParentID:    parentID,
		AuthorName:  posted.AuthorName,
		Text:        posted.Text,
		PublishedAt: posted.PublishedAt,
	}, nil
}

// DeleteComment — write-reconcile удаления комментария.
//
// Порядок: платформа -> удаление из кэша -> аудит COMMENT_DELETED.
// Кэш комментариев best-effort: отсутствие записи в кэше после успешного
// удаления на платформе ошибкой не считается.
func (s *Service) DeleteComment(ctx context.Context, commentID string) error {
	const op = "service/comments/DeleteComment"

	commentID = strings.TrimSpace(commentID)
	lg := log.From(ctx).With("op", op, "comment_id", commentID)

	if commentID == "" {
		lg.Warn("invalid argument: empty comment_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.yt.DeleteComment(ctx, commentID); err != nil {
		return s.platformErr(ctx, op, err)
	}

	if err := s.storage.DeleteComment(ctx, commentID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		lg.Error("cache delete failed after platform delete", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.appendEvent(ctx, models.Event{
		Type:      models.EventCommentDeleted,
		CommentID: commentID,
	})

	return nil
}

// Moderate — локальная операция над кэшем: скрыть/закрепить комментарий,
// приложить заметку модератора. Платформа не вызывается; записи аудита нет
// (закрытое перечисление событий не содержит модерационного типа).
func (s *Service) Moderate(ctx context.Context, commentID string, in ModerateInput) (*models.Comment, error) {
	const op = "service/comments/Moderate"

	commentID = strings.TrimSpace(commentID)
	lg := log.From(ctx).With("op", op, "comment_id", commentID)

	if commentID == "" {
		lg.Warn("invalid argument: empty comment_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	stored, err := s.storage.SetModeration(ctx, commentID, models.Moderation{
		IsHidden: in.IsHidden,
		IsPinned: in.IsPinned,
		UserNote: strings.TrimSpace(in.UserNote),
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not cached")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetModeration", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return stored, nil
}
