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

func TestUserService_Register_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewUserService(userRepo, log)

	var created *domain.User
	userRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			created = user
		}).
		Return(nil)

	user, err := svc.Register(context.Background(), domain.CreateUserInput{
		Name:  "  Ana Torres ",
		Email: "Ana@Example.COM",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, []string{domain.ProfileMember}, user.Profiles)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user, created)
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewUserService(userRepo, log)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Name:  "Ana",
		Email: "not-an-email",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_UnknownProfile(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewUserService(userRepo, log)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Profiles: []string{"director"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewUserService(userRepo, log)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Name:  "Ana",
		Email: "ana@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_SetProfiles_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewUserService(userRepo, log)

	profiles := []string{domain.ProfileMember, domain.ProfileTransport}
	userRepo.EXPECT().UpdateProfiles(mock.Anything, "u1", profiles).Return(nil)

	err := svc.SetProfiles(context.Background(), "u1", profiles)

	require.NoError(t, err)
}

func TestUserService_SetProfiles_Empty(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewUserService(userRepo, log)

	err := svc.SetProfiles(context.Background(), "u1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
