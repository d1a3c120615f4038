package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pendiente"
	PaymentStatusPaid    PaymentStatus = "pagado"
)

type Ticket struct {
	ID            string        `json:"id"`
	RequestID     string        `json:"request_id"`
	EventID       string        `json:"event_id"`
	PassengerName string        `json:"passenger_name"`
	PassengerType PassengerType `json:"passenger_type"`
	VehicleIndex  int           `json:"vehicle_index"`
	SeatNumber    int           `json:"seat_number"`
	Price         float64       `json:"price"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at"`
	PaidBy        string        `json:"paid_by"`
	CreatedAt     time.Time     `json:"created_at"`
}

type TicketFilter struct {
	EventID string
	Status  PaymentStatus
}

type TicketRevenue struct {
	PaidCount    int     `json:"paid_count"`
	PendingCount int     `json:"pending_count"`
	PaidTotal    float64 `json:"paid_total"`
	PendingTotal float64 `json:"pending_total"`
}

// Revenue tallies a ticket listing the way the sales screen does.
func Revenue(tickets []*Ticket) TicketRevenue {
	var r TicketRevenue
	for _, t := range tickets {
		switch t.PaymentStatus {
		case PaymentStatusPaid:
			r.PaidCount++
			r.PaidTotal += t.Price
		case PaymentStatusPending:
			r.PendingCount++
			r.PendingTotal += t.Price
		}
	}
	r.PaidTotal = RoundMoney(r.PaidTotal)
	r.PendingTotal = RoundMoney(r.PendingTotal)
	return r
}
