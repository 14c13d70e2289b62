package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/youtube"
	"github.com/pribylovaa/go-video-dashboard/pkg/log"
)

// UpdateVideoInput — правка метаданных видео.
type UpdateVideoInput struct {
	Title       string
	Description string
}

// VideoState — живое чтение состояния видео с платформы.
//
// Протокол read-reconcile:
//  1. запрос к платформе (кэш никогда не используется как fallback:
//     каждое чтение — passthrough, кэш — только приёмник побочного эффекта);
//  2. успех -> merge-upsert в кэш -> аудит VIDEO_FETCHED -> ответ вызывающему;
//  3. ошибка платформы -> кэш и журнал не тронуты, ошибка наружу.
//
// Ошибки: ErrNotConfigured, ErrNotFound, ErrQuotaExceeded, ErrUnavailable,
// ErrInternal (отказ кэша после успешного чтения платформы).
func (s *Service) VideoState(ctx context.Context) (*models.Video, error) {
	const op = "service/video/VideoState"

	videoID, err := s.videoID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "video_id", videoID)

	fetched, err := s.yt.VideoByID(ctx, videoID)
	if err != nil {
		return nil, s.platformErr(ctx, op, err)
	}

	stored, err := s.storage.UpsertVideo(ctx, models.Video{
		VideoID:      videoID,
		Title:        fetched.Title,
		Description:  fetched.Description,
		ThumbnailURL: fetched.ThumbnailURL,
		ViewCount:    fetched.ViewCount,
		LikeCount:    fetched.LikeCount,
		CommentCount: fetched.CommentCount,
	})
	if err != nil {
		lg.Error("cache upsert failed after platform read", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.appendEvent(ctx, models.Event{
		Type:     models.EventVideoFetched,
		VideoID:  videoID,
		Metadata: map[string]any{"title": fetched.Title},
	})

	return stored, nil
}

// UpdateVideo — write-reconcile правки title/description.
//
// Валидация: title после TrimSpace не пуст.
//
// Мутация платформы выполняется только при включённом
// youtube.enable_video_write; по умолчанию флаг выключен и операция работает
// в явном режиме local-cache-only (кэш и аудит обновляются, платформа — нет).
// При включённом флаге порядок строгий: платформа -> кэш -> аудит.
func (s *Service) UpdateVideo(ctx context.Context, in UpdateVideoInput) (*models.Video, error) {
	const op = "service/video/UpdateVideo"

	videoID, err := s.videoID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "video_id", videoID)

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Description = strings.TrimSpace(in.Description)

	if s.cfg.YouTube.EnableVideoWrite {
		if err := s.yt.UpdateVideo(ctx, videoID, in.Title, in.Description); err != nil {
			return nil, s.platformErr(ctx, op, err)
		}
	} else {
		lg.Debug("platform write disabled, updating local cache only")
	}

	stored, err := s.storage.UpdateVideoMeta(ctx, videoID, in.Title, in.Description)
	if err != nil {
		lg.Error("cache update failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.appendEvent(ctx, models.Event{
		Type:    models.EventVideoUpdated,
		VideoID: videoID,
		Metadata: map[string]any{
			"title":       in.Title,
			"description": in.Description,
		},
	})

	return stored, nil
}

// platformErr — единый маппинг ошибок платформы в сервисные.
// Кэш и журнал к этому моменту гарантированно не тронуты.
func (s *Service) platformErr(ctx context.Context, op string, err error) error {
	lg := log.From(ctx)

	switch {
	case errors.Is(err, youtube.ErrNotFound):
		lg.Warn("platform resource not found", "op", op)
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, youtube.ErrQuotaExceeded):
		lg.Warn("platform quota exceeded", "op", op)
		return fmt.Errorf("%s: %w", op, ErrQuotaExceeded)
	default:
		lg.Error("platform call failed", "op", op, "err", err.Error())
		return fmt.Errorf("%s: %s: %w", op, err.Error(), ErrUnavailable)
	}
}
