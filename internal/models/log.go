package models

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry records one handled HTTP request. Username is nil when the request
// carried no resolvable identity (unauthenticated endpoints, rejected
// credentials).
type LogEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	Username   *string   `json:"username" db:"username"`
	Endpoint   string    `json:"endpoint" db:"endpoint"`
	Method     string    `json:"method" db:"method"`
	StatusCode int       `json:"status_code" db:"status_code"`
}
