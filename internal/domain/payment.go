package domain

import (
	"math"
	"time"
)

type PaymentRequestStatus string

const (
	PaymentRequestPending   PaymentRequestStatus = "pending"
	PaymentRequestActive    PaymentRequestStatus = "active"
	PaymentRequestCompleted PaymentRequestStatus = "completed"
	PaymentRequestCancelled PaymentRequestStatus = "cancelled"
)

// PaymentRequest is one member's quota under a shared concept. Creating a
// concept fans out one request plus one notification per recipient.
type PaymentRequest struct {
	ID            string               `json:"id"`
	Concept       string               `json:"concept"`
	Description   string               `json:"description"`
	Amount        float64              `json:"amount"`
	DueDate       *time.Time           `json:"due_date"`
	RecipientID   string               `json:"recipient_id"`
	RecipientName string               `json:"recipient_name"`
	Status        PaymentRequestStatus `json:"status"`
	CreatedBy     string               `json:"created_by"`
	CreatedAt     time.Time            `json:"created_at"`
}

type PaymentNotification struct {
	ID        string               `json:"id"`
	RequestID string               `json:"request_id"`
	UserID    string               `json:"user_id"`
	Concept   string               `json:"concept"`
	Amount    float64              `json:"amount"`
	Status    PaymentRequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// PartialPayment is an independent ledger entry applied against a concept.
// Nothing links partials to a quota beyond (UserID, Concept); totals are
// summed on demand.
type PartialPayment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Concept   string    `json:"concept"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type Quota struct {
	UserID   string
	UserName string
	Amount   float64
}

type CreatePaymentRequestInput struct {
	Concept     string
	Description string
	DueDate     *time.Time
	Quotas      []Quota
	CreatedBy   string
}

type QuotaProgress struct {
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Amount    float64 `json:"amount"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	Complete  bool    `json:"complete"`
}

type ConceptProgress struct {
	Concept          string          `json:"concept"`
	TotalQuotas      int             `json:"total_quotas"`
	CompletedQuotas  int             `json:"completed_quotas"`
	TotalDue         float64         `json:"total_due"`
	TotalPaid        float64         `json:"total_paid"`
	CompletedPercent int             `json:"completed_percent"`
	AmountPercent    int             `json:"amount_percent"`
	Quotas           []QuotaProgress `json:"quotas"`
}

// ProgressFor reconciles quotas against partial payment totals per user.
// Percentages round to the nearest integer as the source UI did.
func ProgressFor(concept string, requests []*PaymentRequest, paidByUser map[string]float64) ConceptProgress {
	p := ConceptProgress{Concept: concept}
	for _, r := range requests {
		paid := RoundMoney(paidByUser[r.RecipientID])
		remaining := r.Amount - paid
		if remaining < 0 {
			remaining = 0
		}
		q := QuotaProgress{
			UserID:    r.RecipientID,
			UserName:  r.RecipientName,
			Amount:    r.Amount,
			Paid:      paid,
			Remaining: RoundMoney(remaining),
			Complete:  paid >= r.Amount,
		}
		p.TotalQuotas++
		p.TotalDue += r.Amount
		p.TotalPaid += paid
		if q.Complete {
			p.CompletedQuotas++
		}
		p.Quotas = append(p.Quotas, q)
	}
	p.TotalDue = RoundMoney(p.TotalDue)
	p.TotalPaid = RoundMoney(p.TotalPaid)
	if p.TotalQuotas > 0 {
		p.CompletedPercent = int(math.Round(float64(p.CompletedQuotas) / float64(p.TotalQuotas) * 100))
	}
	if p.TotalDue > 0 {
		p.AmountPercent = int(math.Round(p.TotalPaid / p.TotalDue * 100))
	}
	return p
}
