package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/pribylovaa/go-video-dashboard/internal/config"
)

// API — клиент YouTube Data API v3 поверх OAuth2 refresh-токена.
// Конструируется один раз на процесс и передаётся в сервис явно:
// никакого процесс-глобального ленивого состояния.
type API struct {
	svc *ytapi.Service
}

// NewAPI собирает клиент: обмен refresh-токена на access-токены делает
// oauth2.TokenSource, сам клиент — обычный *ytapi.Service поверх него.
func NewAPI(ctx context.Context, cfg config.YouTubeConfig) (*API, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("youtube: client_id/client_secret are required")
	}

	if cfg.RefreshToken == "" {
		return nil, fmt.Errorf("youtube: refresh_token is required")
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{ytapi.YoutubeForceSslScope},
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := ytapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("youtube: new service: %w", err)
	}

	return &API{svc: svc}, nil
}

// VideoByID запрашивает snippet+statistics одного видео.
func (a *API) VideoByID(ctx context.Context, videoID string) (*Video, error) {
	const op = "youtube/VideoByID"

	resp, err := a.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	v := resp.Items[0]
	out := &Video{ID: v.Id}

	if v.Snippet != nil {
		out.Title = v.Snippet.Title
		out.Description = v.Snippet.Description

		if v.Snippet.Thumbnails != nil && v.Snippet.Thumbnails.High != nil {
			out.ThumbnailURL = v.Snippet.Thumbnails.High.Url
		}
	}

	if v.Statistics != nil {
		out.ViewCount = v.Statistics.ViewCount
		out.LikeCount = v.Statistics.LikeCount
		out.CommentCount = v.Statistics.CommentCount
	}

	return out, nil
}

// UpdateVideo меняет title/description. Data API требует полный snippet,
// поэтому сперва читаем текущий — категория и теги должны сохраниться.
func (a *API) UpdateVideo(ctx context.Context, videoID, title, description string) error {
	const op = "youtube/UpdateVideo"

	resp, err := a.svc.Videos.List([]string{"snippet"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%s: read snippet: %w", op, mapErr(err))
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	cur := resp.Items[0].Snippet

	categoryID := cur.CategoryId
	if categoryID == "" {
		categoryID = "22"
	}

	_, err = a.svc.Videos.Update([]string{"snippet"}, &ytapi.Video{
		Id: videoID,
		Snippet: &ytapi.VideoSnippet{
			Title:       title,
			Description: description,
			CategoryId:  categoryID,
			Tags:        cur.Tags,
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return nil
}

// ListThreads возвращает корневые комментарии видео, order=time.
func (a *API) ListThreads(ctx context.Context, videoID string, maxResults int64) ([]Comment, error) {
	const op = "youtube/ListThreads"

	resp, err := a.svc.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(maxResults).
		Order("time").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	out := make([]Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		c := Comment{ID: item.Id}

		if item.Snippet != nil {
			c.ReplyCount = item.Snippet.TotalReplyCount

			if top := item.Snippet.TopLevelComment; top != nil && top.Snippet != nil {
				fillFromSnippet(&c, top.Snippet)
			}
		}

		out = append(out, c)
	}

	return out, nil
}

// InsertThread публикует корневой комментарий и возвращает канонический ответ.
func (a *API) InsertThread(ctx context.Context, videoID, text string) (*Comment, error) {
	const op = "youtube/InsertThread"

	resp, err := a.svc.CommentThreads.Insert([]string{"snippet"}, &ytapi.CommentThread{
		Snippet: &ytapi.CommentThreadSnippet{
			VideoId: videoID,
			TopLevelComment: &ytapi.Comment{
				Snippet: &ytapi.CommentSnippet{TextOriginal: text},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	c := Comment{ID: resp.Id}
	if resp.Snippet != nil {
		c.ReplyCount = resp.Snippet.TotalReplyCount

		if top := resp.Snippet.TopLevelComment; top != nil && top.Snippet != nil {
			fillFromSnippet(&c, top.Snippet)
		}
	}

	return &c, nil
}

// InsertReply публикует ответ на комментарий parentID.
func (a *API) InsertReply(ctx context.Context, parentID, text string) (*Reply, error) {
	const op = "youtube/InsertReply"

	resp, err := a.svc.Comments.Insert([]string{"snippet"}, &ytapi.Comment{
		Snippet: &ytapi.CommentSnippet{
			ParentId:     parentID,
			TextOriginal: text,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	r := Reply{ID: resp.Id}
	if resp.Snippet != nil {
		r.AuthorName = resp.Snippet.AuthorDisplayName
		r.Text = resp.Snippet.TextDisplay
		r.PublishedAt = parseTime(resp.Snippet.PublishedAt)
	}

	return &r, nil
}

// DeleteComment удаляет комментарий на платформе.
func (a *API) DeleteComment(ctx context.Context, commentID string) error {
	const op = "youtube/DeleteComment"

	if err := a.svc.Comments.Delete(commentID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return nil
}

// fillFromSnippet переносит поля snippet-а комментария в каноническую структуру.
func fillFromSnippet(c *Comment, s *ytapi.CommentSnippet) {
	c.AuthorName = s.AuthorDisplayName
	c.AuthorProfileImage = s.AuthorProfileImageUrl
	c.Text = s.TextDisplay
	c.LikeCount = uint64(s.LikeCount)
	c.PublishedAt = parseTime(s.PublishedAt)
}

// parseTime — PublishedAt приходит строкой RFC3339; битое значение не
// должно валить операцию, лучше нулевое время.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}

// mapErr переводит ошибки googleapi в сентинелы пакета:
//   - 404 -> ErrNotFound;
//   - 403 с квотными reason-кодами -> ErrQuotaExceeded;
//   - остальное — как есть (транзиентные/авторизационные ошибки платформы).
func mapErr(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	if apiErr.Code == 404 {
		return ErrNotFound
	}

	if apiErr.Code == 403 {
		for _, item := range apiErr.Errors {
			switch item.Reason {
			case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded":
				return ErrQuotaExceeded
			}
		}
	}

	return err
}
