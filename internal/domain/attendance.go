package domain

import (
	"math"
	"time"
)

type AttendanceStatus string

const (
	AttendancePresente   AttendanceStatus = "presente"
	AttendanceEscuela    AttendanceStatus = "escuela"
	AttendanceEnfermedad AttendanceStatus = "enfermedad"
	AttendanceFalta      AttendanceStatus = "falta"
)

func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresente, AttendanceEscuela, AttendanceEnfermedad, AttendanceFalta:
		return true
	}
	return false
}

type AttendanceType string

const (
	AttendanceEnsayo AttendanceType = "ensayo"
	AttendanceMisa   AttendanceType = "misa"
	AttendanceEvento AttendanceType = "evento"
)

// AttendanceSheet is one roll call: the taker marks every member once.
type AttendanceSheet struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Type      AttendanceType    `json:"type"`
	TakenBy   string            `json:"taken_by"`
	Entries   []AttendanceEntry `json:"entries"`
	CreatedAt time.Time         `json:"created_at"`
}

type AttendanceEntry struct {
	SheetID  string           `json:"sheet_id"`
	UserID   string           `json:"user_id"`
	UserName string           `json:"user_name"`
	Status   AttendanceStatus `json:"status"`
}

type AttendanceSummary struct {
	UserID        string `json:"user_id"`
	TotalSessions int    `json:"total_sessions"`
	Presente      int    `json:"presente"`
	Escuela       int    `json:"escuela"`
	Enfermedad    int    `json:"enfermedad"`
	Falta         int    `json:"falta"`
	// Participation counts excused absences as participating; effective
	// attendance counts only presente.
	ParticipationPercent int `json:"participation_percent"`
	AttendancePercent    int `json:"attendance_percent"`
}

func SummarizeAttendance(userID string, entries []AttendanceEntry) AttendanceSummary {
	s := AttendanceSummary{UserID: userID}
	for _, e := range entries {
		if e.UserID != userID {
			continue
		}
		s.TotalSessions++
		switch e.Status {
		case AttendancePresente:
			s.Presente++
		case AttendanceEscuela:
			s.Escuela++
		case AttendanceEnfermedad:
			s.Enfermedad++
		case AttendanceFalta:
			s.Falta++
		}
	}
	if s.TotalSessions > 0 {
		s.ParticipationPercent = int(math.Round(float64(s.Presente+s.Escuela+s.Enfermedad) / float64(s.TotalSessions) * 100))
		s.AttendancePercent = int(math.Round(float64(s.Presente) / float64(s.TotalSessions) * 100))
	}
	return s
}
