package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/pkg/log"
)

// Events возвращает журнал аудита, новые первыми.
// limit<=0 — дефолт по конфигу; верхнюю границу ограничивает хранилище.
func (s *Service) Events(ctx context.Context, limit int32) ([]models.Event, error) {
	const op = "service/events/Events"

	items, err := s.storage.EventsByTime(ctx, limit)
	if err != nil {
		log.From(ctx).Error("storage error on EventsByTime", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return items, nil
}
