package domain

import "time"

type DocumentStatus string

const (
	DocumentPendiente DocumentStatus = "pendiente"
	DocumentCompleto  DocumentStatus = "completo"
)

// Documento tracks a physical document that required members must sign for.
// Each version is its own record; PreviousVersionID chains the history and a
// new version starts with no deliveries.
type Documento struct {
	ID                string         `json:"id"`
	Titulo            string         `json:"titulo"`
	Descripcion       string         `json:"descripcion"`
	RequiredUserIDs   []string       `json:"required_user_ids"`
	Estado            DocumentStatus `json:"estado"`
	Version           int            `json:"version"`
	PreviousVersionID string         `json:"previous_version_id"`
	CreatedBy         string         `json:"created_by"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type DocumentDelivery struct {
	DocumentID string    `json:"document_id"`
	UserID     string    `json:"user_id"`
	Fecha      time.Time `json:"fecha"`
}

type DocumentDetails struct {
	Documento  Documento          `json:"documento"`
	Deliveries []DocumentDelivery `json:"deliveries"`
}

type CreateDocumentInput struct {
	Titulo          string
	Descripcion     string
	RequiredUserIDs []string
	CreatedBy       string
}

// DeriveDocumentStatus recomputes estado from the delivery set: completo once
// every required member has handed the document in.
func DeriveDocumentStatus(requiredUserIDs []string, delivered map[string]struct{}) DocumentStatus {
	if len(requiredUserIDs) == 0 {
		return DocumentPendiente
	}
	for _, id := range requiredUserIDs {
		if _, ok := delivered[id]; !ok {
			return DocumentPendiente
		}
	}
	return DocumentCompleto
}
