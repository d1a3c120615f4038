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

type DocumentService struct {
	documentRepo ports.DocumentRepo
	userRepo     ports.UserRepo
	logger       logger.Logger
}

func NewDocumentService(documentRepo ports.DocumentRepo, userRepo ports.UserRepo, logger logger.Logger) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *DocumentService) Create(ctx context.Context, input domain.CreateDocumentInput) (*domain.Documento, error) {
	doc, err := s.buildDocument(ctx, input)
	if err != nil {
		return nil, err
	}
	doc.Version = 1

	if err = s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create documento: %w", err)
	}

	s.logger.Info("documento created",
		logger.String("document_id", doc.ID),
		logger.String("titulo", doc.Titulo),
		logger.Int("required", len(doc.RequiredUserIDs)),
	)

	return doc, nil
}

func (s *DocumentService) GetDetails(ctx context.Context, id string) (*domain.DocumentDetails, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get documento: %w", err)
	}

	deliveries, err := s.documentRepo.ListDeliveries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return &domain.DocumentDetails{
		Documento:  *doc,
		Deliveries: deliveries,
	}, nil
}

func (s *DocumentService) List(ctx context.Context) ([]*domain.Documento, error) {
	return s.documentRepo.List(ctx)
}

// ToggleDelivery flips a member's delivery mark. Only members on the required
// list can be toggled; estado re-derives inside the repository transaction.
func (s *DocumentService) ToggleDelivery(ctx context.Context, documentID, userID string) (bool, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return false, fmt.Errorf("get documento: %w", err)
	}

	required := false
	for _, id := range doc.RequiredUserIDs {
		if id == userID {
			required = true
			break
		}
	}
	if !required {
		return false, fmt.Errorf("%w: user is not on the required list", domain.ErrValidation)
	}

	delivered, err := s.documentRepo.ToggleDelivery(ctx, documentID, userID)
	if err != nil {
		return false, fmt.Errorf("toggle delivery: %w", err)
	}

	s.logger.Info("document delivery toggled",
		logger.String("document_id", documentID),
		logger.String("user_id", userID),
		logger.Any("delivered", delivered),
	)

	return delivered, nil
}

// NewVersion reissues a document: the next version links back to its
// predecessor and starts with no deliveries.
func (s *DocumentService) NewVersion(ctx context.Context, previousID string, input domain.CreateDocumentInput) (*domain.Documento, error) {
	doc, err := s.buildDocument(ctx, input)
	if err != nil {
		return nil, err
	}
	doc.PreviousVersionID = previousID

	if err = s.documentRepo.CreateVersion(ctx, doc); err != nil {
		return nil, fmt.Errorf("create documento version: %w", err)
	}

	s.logger.Info("documento reissued",
		logger.String("document_id", doc.ID),
		logger.String("previous_id", previousID),
		logger.Int("version", doc.Version),
	)

	return doc, nil
}

func (s *DocumentService) buildDocument(ctx context.Context, input domain.CreateDocumentInput) (*domain.Documento, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return nil, fmt.Errorf("%w: titulo is required", domain.ErrValidation)
	}
	if len(input.RequiredUserIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one required member", domain.ErrValidation)
	}
	for _, id := range input.RequiredUserIDs {
		if _, err := s.userRepo.GetByID(ctx, id); err != nil {
			return nil, fmt.Errorf("check required member: %w", err)
		}
	}

	now := time.Now().UTC()
	return &domain.Documento{
		ID:              uuid.New().String(),
		Titulo:          strings.TrimSpace(input.Titulo),
		Descripcion:     input.Descripcion,
		RequiredUserIDs: input.RequiredUserIDs,
		Estado:          domain.DocumentPendiente,
		CreatedBy:       input.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
