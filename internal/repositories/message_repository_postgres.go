package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostgresMessageRepository implements MessageRepository on a relational store
type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) CreateMessage(ctx context.Context, from, to, body string) (*models.Message, error) {
	msg := &models.Message{
		ID:     uuid.NewString(),
		From:   from,
		To:     to,
		Body:   body,
		SentOn: now(),
	}
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *PostgresMessageRepository) FindSentBy(ctx context.Context, from string) ([]models.Message, error) {
	return r.find(r.db.WithContext(ctx).Where("from_user = ?", from))
}

func (r *PostgresMessageRepository) FindReceivedBy(ctx context.Context, to string) ([]models.Message, error) {
	return r.find(r.db.WithContext(ctx).Where("to_user = ?", to))
}

func (r *PostgresMessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	var msg models.Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	msg.SentOn = msg.SentOn.UTC()
	return &msg, nil
}

func (r *PostgresMessageRepository) FindByDate(ctx context.Context, from, date string) ([]models.Message, error) {
	start, end, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).
		Where("from_user = ? AND sent_on >= ? AND sent_on < ?", from, start, end).
		Order("sent_on"))
}

func (r *PostgresMessageRepository) DeleteByID(ctx context.Context, id string) (models.DeleteResult, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Message{})
	if res.Error != nil {
		return models.DeleteResult{}, res.Error
	}
	return models.DeleteResult{RemovedCount: res.RowsAffected}, nil
}

func (r *PostgresMessageRepository) DeleteAllSentBy(ctx context.Context, from string) (models.DeleteResult, error) {
	res := r.db.WithContext(ctx).Where("from_user = ?", from).Delete(&models.Message{})
	if res.Error != nil {
		return models.DeleteResult{}, res.Error
	}
	return models.DeleteResult{RemovedCount: res.RowsAffected}, nil
}

func (r *PostgresMessageRepository) find(q *gorm.DB) ([]models.Message, error) {
	messages := []models.Message{}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	for i := range messages {
		messages[i].SentOn = messages[i].SentOn.UTC()
	}
	return messages, nil
}
