package domain

import "time"

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

type Account struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	AccountNumber string    `json:"account_number"`
	CardNumber    string    `json:"card_number"`
	Balance       float64   `json:"balance"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type Transaction struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	UserID        string          `json:"user_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Concept       string          `json:"concept"`
	BalanceBefore float64         `json:"balance_before"`
	BalanceAfter  float64         `json:"balance_after"`
	CreatedBy     string          `json:"created_by"`
	AuthorizedBy  string          `json:"authorized_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

type TransactionInput struct {
	AccountID string
	Type      TransactionType
	Amount    float64
	Concept   string
	CreatedBy string
}
