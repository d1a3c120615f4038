package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports/mocks"
)

func TestFinanceService_OpenAccount_Success(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	user := &domain.User{ID: "u1", Name: "Ana Torres"}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	financeRepo.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return(nil)

	account, err := svc.OpenAccount(context.Background(), "u1", "admin1")

	require.NoError(t, err)
	assert.Equal(t, "u1", account.UserID)
	assert.Equal(t, "Ana Torres", account.UserName)
	assert.True(t, strings.HasPrefix(account.AccountNumber, "4000"))
	assert.Len(t, account.AccountNumber, 12)
	assert.True(t, strings.HasPrefix(account.CardNumber, "5555"))
	assert.Len(t, account.CardNumber, 16)
	assert.Equal(t, 0.0, account.Balance)
}

func TestFinanceService_OpenAccount_UserNotFound(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.OpenAccount(context.Background(), "missing", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFinanceService_Apply_Deposit(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	account := &domain.Account{ID: "a1", UserID: "u1"}
	financeRepo.EXPECT().GetAccount(mock.Anything, "a1").Return(account, nil)
	financeRepo.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil)

	tx, err := svc.Apply(context.Background(), domain.TransactionInput{
		AccountID: "a1",
		Type:      domain.TransactionDeposit,
		Amount:    150.555,
		Concept:   "Ahorro semanal",
		CreatedBy: "admin1",
	})

	require.NoError(t, err)
	assert.Equal(t, 150.56, tx.Amount)
	assert.Empty(t, tx.AuthorizedBy)
}

func TestFinanceService_Apply_WithdrawalSetsAuthorizer(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	account := &domain.Account{ID: "a1", UserID: "u1"}
	financeRepo.EXPECT().GetAccount(mock.Anything, "a1").Return(account, nil)
	financeRepo.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil)

	tx, err := svc.Apply(context.Background(), domain.TransactionInput{
		AccountID: "a1",
		Type:      domain.TransactionWithdrawal,
		Amount:    50,
		CreatedBy: "admin1",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin1", tx.AuthorizedBy)
}

func TestFinanceService_Apply_InvalidAmount(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	_, err := svc.Apply(context.Background(), domain.TransactionInput{
		AccountID: "a1",
		Type:      domain.TransactionDeposit,
		Amount:    0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFinanceService_Apply_UnknownType(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	_, err := svc.Apply(context.Background(), domain.TransactionInput{
		AccountID: "a1",
		Type:      "transferencia",
		Amount:    10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFinanceService_Apply_InsufficientFunds(t *testing.T) {
	financeRepo := mocks.NewMockFinanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewFinanceService(financeRepo, userRepo, log)

	account := &domain.Account{ID: "a1", UserID: "u1", Balance: 10}
	financeRepo.EXPECT().GetAccount(mock.Anything, "a1").Return(account, nil)
	financeRepo.EXPECT().Apply(mock.Anything, mock.Anything).Return(domain.ErrInsufficientBalance)

	_, err := svc.Apply(context.Background(), domain.TransactionInput{
		AccountID: "a1",
		Type:      domain.TransactionWithdrawal,
		Amount:    100,
		CreatedBy: "admin1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}
