package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/Vansh-Pandey/SocialMedia/internal/repository"
	"github.com/google/uuid"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	notifier    Notifier
}

func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

func (s *MessageService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Conversation returns every message exchanged between the caller and the
// counterparty, oldest first. An unknown counterparty yields an empty slice,
// not an error; the counterparty's existence is deliberately not checked.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]domain.Message, error) {
	messages, err := s.messageRepo.ListBetween(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

// Send creates an immutable message with a server-assigned timestamp. The
// receiver id is taken as-is; messages to unknown receivers are permitted.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uuid.UUID, body string) (*domain.Message, error) {
	msg := &domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(msg)
	}

	return msg, nil
}
