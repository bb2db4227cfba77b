package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is an append-only heartbeat record left by a client.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the request body for recording a status check.
type StatusCheckCreate struct {
	ClientName *string `json:"client_name" validate:"required"`
}

// ToStatusCheck assigns the record its id and timestamp.
func (sc StatusCheckCreate) ToStatusCheck(now time.Time) StatusCheck {
	check := StatusCheck{
		ID:        uuid.NewString(),
		Timestamp: now.UTC().Truncate(time.Microsecond),
	}
	if sc.ClientName != nil {
		check.ClientName = *sc.ClientName
	}
	return check
}
