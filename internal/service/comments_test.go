package service

// Тесты операций над комментариями (internal/service/comments.go).
//
// Проверяем:
//   - Comments: merge-upsert каждого треда, выдача из кэша с локальными флагами;
//   - PostComment/PostReply/DeleteComment: валидация fail-fast (на моках нет
//     ожиданий), строгий порядок платформа -> кэш -> аудит, маппинг ошибок;
//   - PostReply/DeleteComment: отсутствие записи в кэше не считается ошибкой;
//   - Moderate: локальная операция без платформы и без аудита.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"
	"github.com/pribylovaa/go-video-dashboard/internal/youtube"
)

// Сценарий: платформа вернула два треда, оба merge-upsert-ятся,
// ответ собирается из кэша (с локальными флагами), аудита нет.
func TestService_Comments_OK(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	published := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	threads := []youtube.Comment{
		{ID: "c1", AuthorName: "alice", Text: "first", LikeCount: 3, PublishedAt: published},
		{ID: "c2", AuthorName: "bob", Text: "second", PublishedAt: published.Add(time.Minute)},
	}

	mc.EXPECT().ListThreads(gomock.Any(), testVideoID, int64(100)).Return(threads, nil)

	ms.EXPECT().UpsertComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Comment) (*models.Comment, error) {
			require.Equal(t, testVideoID, c.VideoID)
			stored := c
			if c.CommentID == "c1" {
				// Локальные флаги живут в кэше и не затираются чтением.
				stored.IsHidden = true
				stored.UserNote = "spam?"
			}
			return &stored, nil
		}).Times(2)

	out, err := s.Comments(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "c1", out[0].CommentID)
	require.True(t, out[0].IsHidden)
	require.Equal(t, "spam?", out[0].UserNote)
	require.False(t, out[1].IsHidden)
}

// Ошибка платформы при чтении: кэш не тронут.
func TestService_Comments_PlatformError(t *testing.T) {
	s, _, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().ListThreads(gomock.Any(), testVideoID, int64(100)).
		Return(nil, youtube.ErrQuotaExceeded)

	_, err := s.Comments(context.Background())
	require.ErrorIs(t, err, ErrQuotaExceeded)
}

// Пустой текст: ни платформа, ни хранилище не вызываются.
func TestService_PostComment_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.PostComment(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.PostComment(context.Background(), "  \t ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Сценарий: публикация комментария — платформа -> upsert -> COMMENT_ADDED.
func TestService_PostComment_OK(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	posted := &youtube.Comment{ID: "c-new", AuthorName: "owner", Text: "hello"}
	stored := &models.Comment{CommentID: "c-new", VideoID: testVideoID, Text: "hello"}

	gomock.InOrder(
		mc.EXPECT().InsertThread(gomock.Any(), testVideoID, "hello").Return(posted, nil),
		ms.EXPECT().UpsertComment(gomock.Any(), gomock.Any()).Return(stored, nil),
		ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.Event) error {
				require.Equal(t, models.EventCommentAdded, e.Type)
				require.Equal(t, "c-new", e.CommentID)
				require.Equal(t, "hello", e.Metadata["text"])
				return nil
			}),
	)

	out, err := s.PostComment(context.Background(), "  hello  ")
	require.NoError(t, err)
	require.Equal(t, stored, out)
}

// Ошибка платформы при публикации: кэш и журнал не тронуты.
func TestService_PostComment_PlatformError(t *testing.T) {
	s, _, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().InsertThread(gomock.Any(), testVideoID, "hello").
		Return(nil, errors.New("network down"))

	_, err := s.PostComment(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUnavailable)
}

// Отказ кэша после успешной публикации: ErrInternal, аудита нет.
func TestService_PostComment_StoreError(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().InsertThread(gomock.Any(), testVideoID, "hello").
		Return(&youtube.Comment{ID: "c-new"}, nil)
	ms.EXPECT().UpsertComment(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.PostComment(context.Background(), "hello")
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_PostReply_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.PostReply(context.Background(), "", "text")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.PostReply(context.Background(), "c1", "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Сценарий: ответ на тред — платформа -> инкремент reply_count -> REPLY_ADDED.
func TestService_PostReply_OK(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	posted := &youtube.Reply{ID: "r1", AuthorName: "owner", Text: "reply"}

	gomock.InOrder(
		mc.EXPECT().InsertReply(gomock.Any(), "c1", "reply").Return(posted, nil),
		ms.EXPECT().IncReplyCount(gomock.Any(), "c1").Return(nil),
		ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.Event) error {
				require.Equal(t, models.EventReplyAdded, e.Type)
				require.Equal(t, "c1", e.CommentID)
				require.Equal(t, "r1", e.Metadata["reply_id"])
				return nil
			}),
	)

	out, err := s.PostReply(context.Background(), "c1", "reply")
	require.NoError(t, err)
	require.Equal(t, "r1", out.ReplyID)
	require.Equal(t, "c1", out.ParentID)
}

// Родителя нет в кэше: инкремент best-effort, операция успешна.
func TestService_PostReply_ParentNotCached(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().InsertReply(gomock.Any(), "c1", "reply").
		Return(&youtube.Reply{ID: "r1"}, nil)
	ms.EXPECT().IncReplyCount(gomock.Any(), "c1").Return(storage.ErrNotFound)
	ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.PostReply(context.Background(), "c1", "reply")
	require.NoError(t, err)
}

func TestService_DeleteComment_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.DeleteComment(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Сценарий: удаление — платформа -> кэш -> COMMENT_DELETED.
func TestService_DeleteComment_OK(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mc.EXPECT().DeleteComment(gomock.Any(), "c1").Return(nil),
		ms.EXPECT().DeleteComment(gomock.Any(), "c1").Return(nil),
		ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.Event) error {
				require.Equal(t, models.EventCommentDeleted, e.Type)
				require.Equal(t, "c1", e.CommentID)
				return nil
			}),
	)

	require.NoError(t, s.DeleteComment(context.Background(), "c1"))
}

// Комментария нет в кэше после успешного удаления на платформе — не ошибка.
func TestService_DeleteComment_NotCached(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().DeleteComment(gomock.Any(), "c1").Return(nil)
	ms.EXPECT().DeleteComment(gomock.Any(), "c1").Return(storage.ErrNotFound)
	ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.DeleteComment(context.Background(), "c1"))
}

// Ошибка платформы при удалении: кэш и журнал не тронуты.
func TestService_DeleteComment_PlatformError(t *testing.T) {
	s, _, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().DeleteComment(gomock.Any(), "c1").Return(youtube.ErrNotFound)

	err := s.DeleteComment(context.Background(), "c1")
	require.ErrorIs(t, err, ErrNotFound)
}

// Модерация — локальная операция: платформа не вызывается, аудита нет.
func TestService_Moderate_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	stored := &models.Comment{CommentID: "c1", IsHidden: true, UserNote: "spam"}

	ms.EXPECT().SetModeration(gomock.Any(), "c1", models.Moderation{
		IsHidden: true,
		UserNote: "spam",
	}).Return(stored, nil)

	out, err := s.Moderate(context.Background(), "c1", ModerateInput{IsHidden: true, UserNote: " spam "})
	require.NoError(t, err)
	require.Equal(t, stored, out)
}

func TestService_Moderate_NotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().SetModeration(gomock.Any(), "c1", gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, err := s.Moderate(context.Background(), "c1", ModerateInput{})
	require.ErrorIs(t, err, ErrNotFound)
}
