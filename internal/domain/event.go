package domain

import "time"

type EventStatus string

const (
	EventStatusOpen      EventStatus = "abierto"
	EventStatusFinished  EventStatus = "finalizado"
	EventStatusCancelled EventStatus = "cancelado"
)

func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusOpen, EventStatusFinished, EventStatusCancelled:
		return true
	}
	return false
}

type ConfirmationResponse string

const (
	ResponseAttending    ConfirmationResponse = "asistire"
	ResponseNotAttending ConfirmationResponse = "no-asistire"
	ResponseMaybe        ConfirmationResponse = "tal-vez"
)

func ValidConfirmationResponse(r ConfirmationResponse) bool {
	switch r {
	case ResponseAttending, ResponseNotAttending, ResponseMaybe:
		return true
	}
	return false
}

type Event struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Date              time.Time   `json:"date"`
	Status            EventStatus `json:"status"`
	RequiresTransport bool        `json:"requires_transport"`
	CreatedBy         string      `json:"created_by"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Confirmation is one member's RSVP for an event. Keyed by (EventID, UserID);
// re-confirming replaces the previous record.
type Confirmation struct {
	EventID     string               `json:"event_id"`
	UserID      string               `json:"user_id"`
	UserName    string               `json:"user_name"`
	Response    ConfirmationResponse `json:"response"`
	Companions  int                  `json:"companions"`
	ConfirmedAt time.Time            `json:"confirmed_at"`
}

type ConfirmationSummary struct {
	Attending    int `json:"asistire"`
	NotAttending int `json:"no_asistire"`
	Maybe        int `json:"tal_vez"`
	Companions   int `json:"companions"`
	Total        int `json:"total"`
}

type EventDetails struct {
	Event         Event               `json:"event"`
	Confirmations []Confirmation      `json:"confirmations"`
	Summary       ConfirmationSummary `json:"summary"`
}

type CreateEventInput struct {
	Title             string
	Description       string
	Date              time.Time
	RequiresTransport bool
	CreatedBy         string
}

// Summarize tallies RSVPs the way the dashboard presents them: companions
// only count for members who confirmed attendance.
func Summarize(confirmations []Confirmation) ConfirmationSummary {
	var s ConfirmationSummary
	for _, c := range confirmations {
		s.Total++
		switch c.Response {
		case ResponseAttending:
			s.Attending++
			if c.Companions > 0 {
				s.Companions += c.Companions
			}
		case ResponseNotAttending:
			s.NotAttending++
		case ResponseMaybe:
			s.Maybe++
		}
	}
	return s
}
