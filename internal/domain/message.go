package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users. Immutable after creation.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender"`
	ReceiverID uuid.UUID `json:"receiver"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
