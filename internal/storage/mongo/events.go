package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppendEvent добавляет запись в журнал аудита.
// Журнал append-only: здесь нет и не будет update/delete по коллекции events.
// Неизвестный тип события отклоняется до записи — storage.ErrInvalidEvent.
func (m *Mongo) AppendEvent(ctx context.Context, event models.Event) error {
	const op = "storage/mongo/AppendEvent"

	if !models.KnownEventType(event.Type) {
		return fmt.Errorf("%s: %q: %w", op, event.Type, storage.ErrInvalidEvent)
	}

	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = toMS(time.Now())
	} else {
		event.Timestamp = toMS(event.Timestamp)
	}

	if _, err := m.events.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("%s: insert: %w", op, err)
	}

	return nil
}

// EventsByTime возвращает записи журнала, timestamp DESC, _id DESC.
// limit<=0 — Limits.Default; верхняя граница — Limits.Max.
func (m *Mongo) EventsByTime(ctx context.Context, limit int32) ([]models.Event, error) {
	const op = "storage/mongo/EventsByTime"

	lim := limitOrDefault(m.cfg.Limits.Default, m.cfg.Limits.Max, limit)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(lim)

	cur, err := m.events.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := make([]models.Event, 0, lim)
	for cur.Next(ctx) {
		var ev models.Event
		if err := cur.Decode(&ev); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		ev.Timestamp = ev.Timestamp.UTC()
		items = append(items, ev)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}
