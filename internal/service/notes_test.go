package service

// Тесты заметок (internal/service/notes.go) и выборки журнала
// (internal/service/events.go).
//
// Заметки — локальный путь: на MockClient нигде нет ожиданий, любой вызов
// платформы провалил бы тест.

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-video-dashboard/internal/models"
	"github.com/pribylovaa/go-video-dashboard/internal/storage"
)

func TestService_Notes_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := []models.Note{
		{NoteID: "n2", VideoID: testVideoID, Content: "later"},
		{NoteID: "n1", VideoID: testVideoID, Content: "earlier"},
	}

	ms.EXPECT().NotesByVideo(gomock.Any(), testVideoID).Return(want, nil)

	out, err := s.Notes(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestService_Notes_NotConfigured(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	s.cfg.YouTube.VideoID = ""

	_, err := s.Notes(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_AddNote_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.AddNote(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Сценарий: хранилище -> аудит NOTE_ADDED, строго в этом порядке.
func TestService_AddNote_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	created := &models.Note{NoteID: "n1", VideoID: testVideoID, Content: "remember this"}

	gomock.InOrder(
		ms.EXPECT().CreateNote(gomock.Any(), models.Note{
			VideoID: testVideoID,
			Content: "remember this",
		}).Return(created, nil),
		ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.Event) error {
				require.Equal(t, models.EventNoteAdded, e.Type)
				require.Equal(t, "n1", e.NoteID)
				require.Equal(t, "remember this", e.Metadata["content"])
				return nil
			}),
	)

	out, err := s.AddNote(context.Background(), "  remember this  ")
	require.NoError(t, err)
	require.Equal(t, created, out)
}

// Отказ хранилища: ErrInternal, аудита нет.
func TestService_AddNote_StoreError(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.AddNote(context.Background(), "remember this")
	require.ErrorIs(t, err, ErrInternal)
}

// Отказ аудита не валит операцию.
func TestService_AddNote_AuditFailureTolerated(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	created := &models.Note{NoteID: "n1", VideoID: testVideoID, Content: "x"}

	ms.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(created, nil)
	ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(errors.New("events down"))

	out, err := s.AddNote(context.Background(), "x")
	require.NoError(t, err)
	require.Equal(t, created, out)
}

func TestService_DeleteNote_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.DeleteNote(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_DeleteNote_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	gomock.InOrder(
		ms.EXPECT().DeleteNote(gomock.Any(), "n1").Return(nil),
		ms.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.Event) error {
				require.Equal(t, models.EventNoteDeleted, e.Type)
				require.Equal(t, "n1", e.NoteID)
				return nil
			}),
	)

	require.NoError(t, s.DeleteNote(context.Background(), "n1"))
}

// Заметки нет: ErrNotFound, аудита нет.
func TestService_DeleteNote_NotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().DeleteNote(gomock.Any(), "n1").Return(storage.ErrNotFound)

	err := s.DeleteNote(context.Background(), "n1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Events_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := []models.Event{
		{ID: "e2", Type: models.EventNoteAdded},
		{ID: "e1", Type: models.EventVideoFetched},
	}

	ms.EXPECT().EventsByTime(gomock.Any(), int32(50)).Return(want, nil)

	out, err := s.Events(context.Background(), 50)
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestService_Events_StoreError(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().EventsByTime(gomock.Any(), int32(0)).Return(nil, errors.New("db down"))

	_, err := s.Events(context.Background(), 0)
	require.ErrorIs(t, err, ErrInternal)
}
