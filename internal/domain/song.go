package domain

import "time"

type Song struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Lyrics          string    `json:"lyrics"`
	Instrumentation string    `json:"instrumentation"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SongInput struct {
	Title           string
	Author          string
	Lyrics          string
	Instrumentation string
}
