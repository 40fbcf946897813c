package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"gorm.io/gorm"
)

// pairTable holds the queries shared by every association table. T is the
// record type, subject and object are the column names of the directed pair.
type pairTable[T any] struct {
	db      *gorm.DB
	subject string
	object  string
}

func (t pairTable[T]) pairClause() string {
	return t.subject + " = ? AND " + t.object + " = ?"
}

func (t pairTable[T]) create(ctx context.Context, rec *T) error {
	if err := t.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePair
		}
		return err
	}
	return nil
}

func (t pairTable[T]) deletePair(ctx context.Context, subject, object string) (models.DeleteResult, error) {
	res := t.db.WithContext(ctx).Where(t.pairClause(), subject, object).Delete(new(T))
	if res.Error != nil {
		return models.DeleteResult{}, res.Error
	}
	return models.DeleteResult{RemovedCount: res.RowsAffected}, nil
}

// findOne returns nil, nil when the pair does not exist.
func (t pairTable[T]) findOne(ctx context.Context, subject, object string) (*T, error) {
	var rec T
	err := t.db.WithContext(ctx).Where(t.pairClause(), subject, object).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t pairTable[T]) findBy(ctx context.Context, column, value string) ([]T, error) {
	recs := []T{}
	if err := t.db.WithContext(ctx).Where(column+" = ?", value).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (t pairTable[T]) countBy(ctx context.Context, column, value string) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value).Count(&count).Error
	return count, err
}

func (t pairTable[T]) deleteBy(ctx context.Context, column, value string) (models.DeleteResult, error) {
	res := t.db.WithContext(ctx).Where(column+" = ?", value).Delete(new(T))
	if res.Error != nil {
		return models.DeleteResult{}, res.Error
	}
	return models.DeleteResult{RemovedCount: res.RowsAffected}, nil
}
