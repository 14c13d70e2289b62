// service содержит бизнес-логику dashboard-сервиса: каждая операция —
// один цикл «платформа -> кэш -> аудит» со строгим порядком шагов.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pribylovaa/go-video-dashboard/internal/config"
	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"
	"github.com/pribylovaa/go-video-dashboard/internal/youtube"
	"github.com/pribylovaa/go-video-dashboard/pkg/log"
)

var (
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotConfigured — не задан обязательный внешний идентификатор (VIDEO_ID).
	ErrNotConfigured = errors.New("not configured")
	// ErrNotFound — платформа или хранилище не знают такого ресурса.
	ErrNotFound = errors.New("not found")
	// ErrQuotaExceeded — исчерпана квота платформы.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrUnavailable — платформа недоступна или вернула ошибку.
	ErrUnavailable = errors.New("platform unavailable")
	// ErrInternal — внутренняя ошибка (хранилище/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — точка оркестрации reconcile-циклов.
//
// Инварианты каждого вызова:
//   - валидация входа до любого I/O; при отказе нет ни вызова платформы,
//     ни записи аудита;
//   - мутация кэша и запись аудита происходят только после подтверждённого
//     успеха платформы, никогда до;
//   - при ошибке платформы кэш и журнал не меняются;
//   - ошибка записи аудита не валит операцию (warn в лог), но и не
//     проглатывается молча.
//
// Межвызовного состояния нет: одновременные операции над одним ключом
// упорядочиваются только атомарным upsert-ом хранилища («последний ответ
// платформы выигрывает» — принятая гонка для дашборда одного редактора).
type Service struct {
	storage storage.Storage
	yt      youtube.Client
	cfg     config.Config
}

// New создаёт новый экземпляр Service.
// Клиент платформы и хранилище передаются явно — жизненным циклом владеет
// точка входа процесса, в тестах подставляются моки.
func New(storage storage.Storage, yt youtube.Client, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		yt:      yt,
		cfg:     cfg,
	}
}

// videoID возвращает сконфигурированный идентификатор видео.
// Пустое значение — ErrNotConfigured: поверхность API отдаст 400.
func (s *Service) videoID() (string, error) {
	if s.cfg.YouTube.VideoID == "" {
		return "", ErrNotConfigured
	}

	return s.cfg.YouTube.VideoID, nil
}

// appendEvent — запись аудита после успешной основной операции.
// Потеря записи аудита менее критична, чем отказ видимого пользователю
// действия, поэтому ошибка не пробрасывается — только warn.
func (s *Service) appendEvent(ctx context.Context, event models.Event) {
	if err := s.storage.AppendEvent(ctx, event); err != nil {
		log.From(ctx).Warn("audit_append_failed",
			slog.String("event_type", string(event.Type)),
			slog.String("err", err.Error()),
		)
	}
}
