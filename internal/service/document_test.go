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

func newDocumentService(t *testing.T) (*DocumentService, *mocks.MockDocumentRepo, *mocks.MockUserRepo) {
	t.Helper()
	documentRepo := mocks.NewMockDocumentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewDocumentService(documentRepo, userRepo, newTestLogger(t))
	return svc, documentRepo, userRepo
}

func TestDocumentService_Create_Success(t *testing.T) {
	svc, documentRepo, userRepo := newDocumentService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ana"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2", Name: "Luis"}, nil)
	documentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.Create(context.Background(), domain.CreateDocumentInput{
		Titulo:          "Reglamento interno",
		RequiredUserIDs: []string{"u1", "u2"},
		CreatedBy:       "admin1",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, domain.DocumentPendiente, doc.Estado)
	assert.NotEmpty(t, doc.ID)
}

func TestDocumentService_Create_MissingTitle(t *testing.T) {
	svc, _, _ := newDocumentService(t)

	_, err := svc.Create(context.Background(), domain.CreateDocumentInput{
		Titulo:          "   ",
		RequiredUserIDs: []string{"u1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDocumentService_Create_UnknownRequiredMember(t *testing.T) {
	svc, _, userRepo := newDocumentService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateDocumentInput{
		Titulo:          "Reglamento interno",
		RequiredUserIDs: []string{"ghost"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDocumentService_ToggleDelivery_Success(t *testing.T) {
	svc, documentRepo, _ := newDocumentService(t)

	doc := &domain.Documento{
		ID:              "d1",
		Titulo:          "Reglamento interno",
		RequiredUserIDs: []string{"u1", "u2"},
		Estado:          domain.DocumentPendiente,
	}
	documentRepo.EXPECT().GetByID(mock.Anything, "d1").Return(doc, nil)
	documentRepo.EXPECT().ToggleDelivery(mock.Anything, "d1", "u1").Return(true, nil)

	delivered, err := svc.ToggleDelivery(context.Background(), "d1", "u1")

	require.NoError(t, err)
	assert.True(t, delivered)
}

func TestDocumentService_ToggleDelivery_NotRequired(t *testing.T) {
	svc, documentRepo, _ := newDocumentService(t)

	doc := &domain.Documento{
		ID:              "d1",
		RequiredUserIDs: []string{"u1"},
	}
	documentRepo.EXPECT().GetByID(mock.Anything, "d1").Return(doc, nil)

	_, err := svc.ToggleDelivery(context.Background(), "d1", "u9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDocumentService_NewVersion_LinksPredecessor(t *testing.T) {
	svc, documentRepo, userRepo := newDocumentService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ana"}, nil)

	var created *domain.Documento
	documentRepo.EXPECT().
		CreateVersion(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, next *domain.Documento) {
			created = next
		}).
		Return(nil)

	doc, err := svc.NewVersion(context.Background(), "d1", domain.CreateDocumentInput{
		Titulo:          "Reglamento interno v2",
		RequiredUserIDs: []string{"u1"},
		CreatedBy:       "admin1",
	})

	require.NoError(t, err)
	assert.Equal(t, "d1", doc.PreviousVersionID)
	assert.Equal(t, domain.DocumentPendiente, doc.Estado)
	assert.Equal(t, doc, created)
}
