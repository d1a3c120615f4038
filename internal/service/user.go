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

type UserService struct {
	userRepo ports.UserRepo
	logger   logger.Logger
}

func NewUserService(userRepo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}

	profiles := input.Profiles
	if len(profiles) == 0 {
		profiles = []string{domain.ProfileMember}
	}
	for _, p := range profiles {
		if !domain.ValidProfile(p) {
			return nil, fmt.Errorf("%w: unknown profile %q", domain.ErrValidation, p)
		}
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		Profiles:       profiles,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
	)

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// SetProfiles replaces a member's profile list. Only administrators reach
// this through the API.
func (s *UserService) SetProfiles(ctx context.Context, id string, profiles []string) error {
	if len(profiles) == 0 {
		return fmt.Errorf("%w: at least one profile is required", domain.ErrValidation)
	}
	for _, p := range profiles {
		if !domain.ValidProfile(p) {
			return fmt.Errorf("%w: unknown profile %q", domain.ErrValidation, p)
		}
	}

	if err := s.userRepo.UpdateProfiles(ctx, id, profiles); err != nil {
		return fmt.Errorf("update profiles: %w", err)
	}

	s.logger.Info("user profiles updated",
		logger.String("user_id", id),
		logger.Any("profiles", profiles),
	)

	return nil
}
