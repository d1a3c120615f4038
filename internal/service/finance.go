package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type FinanceService struct {
	financeRepo ports.FinanceRepo
	userRepo    ports.UserRepo
	logger      logger.Logger
}

func NewFinanceService(financeRepo ports.FinanceRepo, userRepo ports.UserRepo, logger logger.Logger) *FinanceService {
	return &FinanceService{
		financeRepo: financeRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// OpenAccount creates a member's savings account with generated account and
// card numbers. One account per member.
func (s *FinanceService) OpenAccount(ctx context.Context, userID, createdBy string) (*domain.Account, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	account := &domain.Account{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		UserName:      user.Name,
		AccountNumber: generateAccountNumber(),
		CardNumber:    generateCardNumber(),
		Balance:       0,
		Status:        "activa",
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.financeRepo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account opened",
		logger.String("account_id", account.ID),
		logger.String("user_id", user.ID),
	)

	return account, nil
}

func (s *FinanceService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.financeRepo.GetAccount(ctx, id)
}

func (s *FinanceService) GetAccountByUser(ctx context.Context, userID string) (*domain.Account, error) {
	return s.financeRepo.GetAccountByUser(ctx, userID)
}

func (s *FinanceService) ListAccounts(ctx context.Context, search string) ([]*domain.Account, error) {
	return s.financeRepo.ListAccounts(ctx, search)
}

// Apply posts a deposit or withdrawal. The balance check runs inside the
// repository under a row lock, so two concurrent withdrawals cannot both
// pass it.
func (s *FinanceService) Apply(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.Type != domain.TransactionDeposit && input.Type != domain.TransactionWithdrawal {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, input.Type)
	}

	account, err := s.financeRepo.GetAccount(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	t := &domain.Transaction{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		UserID:    account.UserID,
		Type:      input.Type,
		Amount:    domain.RoundMoney(input.Amount),
		Concept:   input.Concept,
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}
	if input.Type == domain.TransactionWithdrawal {
		t.AuthorizedBy = input.CreatedBy
	}

	if err = s.financeRepo.Apply(ctx, t); err != nil {
		return nil, fmt.Errorf("apply transaction: %w", err)
	}

	s.logger.Info("transaction applied",
		logger.String("transaction_id", t.ID),
		logger.String("account_id", account.ID),
		logger.String("type", string(t.Type)),
		logger.Any("amount", t.Amount),
	)

	return t, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	return s.financeRepo.ListTransactions(ctx, accountID)
}

// Account numbers carry a fixed 4000 prefix, cards a 5555 prefix, matching
// the numbering the treasurers already print on member cards.
func generateAccountNumber() string {
	return "4000" + randomDigits(8)
}

func generateCardNumber() string {
	return "5555" + randomDigits(12)
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}
