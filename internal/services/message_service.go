package services

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
	"github.com/anonto42/nano-midea/relations/pkg/logger"
)

// MessageService is the entry point for direct messages
type MessageService struct {
	messages repositories.MessageRepository
}

func NewMessageService(messages repositories.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// SendMessage stores a message from one user to another. The body is stored
// as given.
func (s *MessageService) SendMessage(ctx context.Context, from, to, body string) (*models.Message, error) {
	return s.messages.CreateMessage(ctx, from, to, body)
}

func (s *MessageService) ListSent(ctx context.Context, from string) ([]models.Message, error) {
	return s.messages.FindSentBy(ctx, from)
}

func (s *MessageService) ListReceived(ctx context.Context, to string) ([]models.Message, error) {
	return s.messages.FindReceivedBy(ctx, to)
}

// GetMessage returns the message, or nil when no message has that id
func (s *MessageService) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	return s.messages.FindByID(ctx, id)
}

// FindByDate returns the messages from sent on date (YYYY-MM-DD, UTC)
func (s *MessageService) FindByDate(ctx context.Context, from, date string) ([]models.Message, error) {
	return s.messages.FindByDate(ctx, from, date)
}

func (s *MessageService) DeleteMessage(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.messages.DeleteByID(ctx, id)
}

// DeleteAllSent deletes every message from has sent. Messages from has
// received are kept.
func (s *MessageService) DeleteAllSent(ctx context.Context, from string) (models.DeleteResult, error) {
	res, err := s.messages.DeleteAllSentBy(ctx, from)
	if err != nil {
		return res, err
	}
	l := logger.Ctx(ctx)
	l.Info().Str("user_id", from).Int64("removed", res.RemovedCount).Msg("deleted all sent messages")
	return res, nil
}
