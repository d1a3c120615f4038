package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports/mocks"
)

func TestSongService_Create_Success(t *testing.T) {
	songRepo := mocks.NewMockSongRepo(t)
	log := newTestLogger(t)

	svc := NewSongService(songRepo, log)

	songRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	song, err := svc.Create(context.Background(), domain.SongInput{
		Title:  " Las Mañanitas ",
		Author: "Tradicional",
		Lyrics: "Estas son las mañanitas...",
	}, "admin1")

	require.NoError(t, err)
	assert.Equal(t, "Las Mañanitas", song.Title)
	assert.Equal(t, "admin1", song.CreatedBy)
	assert.NotEmpty(t, song.ID)
}

func TestSongService_Create_MissingTitle(t *testing.T) {
	songRepo := mocks.NewMockSongRepo(t)
	log := newTestLogger(t)

	svc := NewSongService(songRepo, log)

	_, err := svc.Create(context.Background(), domain.SongInput{Author: "Tradicional"}, "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSongService_Update_Success(t *testing.T) {
	songRepo := mocks.NewMockSongRepo(t)
	log := newTestLogger(t)

	svc := NewSongService(songRepo, log)

	existing := &domain.Song{ID: "s1", Title: "Las Mañanitas", Author: "Tradicional"}
	songRepo.EXPECT().GetByID(mock.Anything, "s1").Return(existing, nil)
	songRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	song, err := svc.Update(context.Background(), "s1", domain.SongInput{
		Title:  "Las Mañanitas",
		Author: "Tradicional",
		Lyrics: "Letra completa",
	})

	require.NoError(t, err)
	assert.Equal(t, "Letra completa", song.Lyrics)
}

func TestSongService_Update_NotFound(t *testing.T) {
	songRepo := mocks.NewMockSongRepo(t)
	log := newTestLogger(t)

	svc := NewSongService(songRepo, log)

	songRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSongNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.SongInput{Title: "Cielito Lindo"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSongNotFound)
}
