package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-video-dashboard/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	videosCollection   = "videos"
	commentsCollection = "comments"
	notesCollection    = "notes"
	eventsCollection   = "events"

	defaultDBName = "dashboard"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg      *config.Config
	client   *mongodriver.Client
	db       *mongodriver.Database
	videos   *mongodriver.Collection
	comments *mongodriver.Collection
	notes    *mongodriver.Collection
	events   *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.DB.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:      cfg,
		client:   cli,
		db:       db,
		videos:   db.Collection(videosCollection),
		comments: db.Collection(commentsCollection),
		notes:    db.Collection(notesCollection),
		events:   db.Collection(eventsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые сервису:
//   - videos: уникальный ключ video_id;
//   - comments: уникальный ключ comment_id; выдача video_id + published_at(desc);
//   - notes: уникальный ключ note_id; выдача video_id + created_at(desc);
//   - events: чтение журнала timestamp(desc).
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	if _, err := m.videos.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "video_id", Value: 1}},
		Options: options.Index().SetName("uniq_video_id").SetUnique(true),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (videos): %w", err)
	}

	if _, err := m.comments.Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "comment_id", Value: 1}},
			Options: options.Index().SetName("uniq_comment_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "video_id", Value: 1}, {Key: "published_at", Value: -1}},
			Options: options.Index().SetName("video_published_desc"),
		},
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (comments): %w", err)
	}

	if _, err := m.notes.Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "note_id", Value: 1}},
			Options: options.Index().SetName("uniq_note_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "video_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("video_created_desc"),
		},
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (notes): %w", err)
	}

	if _, err := m.events.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("timestamp_desc"),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (events): %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся разбору, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
