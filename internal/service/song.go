package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SongService struct {
	songRepo ports.SongRepo
	logger   logger.Logger
}

func NewSongService(songRepo ports.SongRepo, logger logger.Logger) *SongService {
	return &SongService{
		songRepo: songRepo,
		logger:   logger,
	}
}

func (s *SongService) Create(ctx context.Context, input domain.SongInput, createdBy string) (*domain.Song, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	song := &domain.Song{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Author:          input.Author,
		Lyrics:          input.Lyrics,
		Instrumentation: input.Instrumentation,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.songRepo.Create(ctx, song); err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}

	s.logger.Info("song added",
		logger.String("song_id", song.ID),
		logger.String("title", song.Title),
	)

	return song, nil
}

func (s *SongService) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	return s.songRepo.GetByID(ctx, id)
}

func (s *SongService) List(ctx context.Context) ([]*domain.Song, error) {
	return s.songRepo.List(ctx)
}

func (s *SongService) Update(ctx context.Context, id string, input domain.SongInput) (*domain.Song, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	song, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}

	song.Title = strings.TrimSpace(input.Title)
	song.Author = input.Author
	song.Lyrics = input.Lyrics
	song.Instrumentation = input.Instrumentation
	if err = s.songRepo.Update(ctx, song); err != nil {
		return nil, fmt.Errorf("update song: %w", err)
	}

	s.logger.Info("song updated", logger.String("song_id", id))

	return song, nil
}
