package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	From   string             `bson:"from"`
	To     string             `bson:"to"`
	Body   string             `bson:"message"`
	SentOn time.Time          `bson:"sent_on"`
}

func (d messageDocument) toModel() models.Message {
	return models.Message{
		ID:     d.ID.Hex(),
		From:   d.From,
		To:     d.To,
		Body:   d.Body,
		SentOn: d.SentOn.UTC(),
	}
}

// MongoMessageRepository implements MessageRepository for MongoDB
type MongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new MongoMessageRepository
func NewMongoMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{collection: db.Collection("messages")}
}

// EnsureIndexes creates the indexes backing the sender, recipient and
// sender+date lookups.
func (r *MongoMessageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "from", Value: 1}}},
		{Keys: bson.D{{Key: "to", Value: 1}}},
		{Keys: bson.D{{Key: "from", Value: 1}, {Key: "sent_on", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// CreateMessage stores a new message with a fresh ObjectID and send time
func (r *MongoMessageRepository) CreateMessage(ctx context.Context, from, to, body string) (*models.Message, error) {
	doc := messageDocument{
		ID:     primitive.NewObjectID(),
		From:   from,
		To:     to,
		Body:   body,
		SentOn: now(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	msg := doc.toModel()
	return &msg, nil
}

// FindSentBy retrieves all messages sent by a user
func (r *MongoMessageRepository) FindSentBy(ctx context.Context, from string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"from": from})
}

// FindReceivedBy retrieves all messages received by a user
func (r *MongoMessageRepository) FindReceivedBy(ctx context.Context, to string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"to": to})
}

// FindByID retrieves a message by ID. A malformed or unknown ID yields nil, nil.
func (r *MongoMessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc messageDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	msg := doc.toModel()
	return &msg, nil
}

// FindByDate retrieves the messages a user sent on the given UTC calendar day
func (r *MongoMessageRepository) FindByDate(ctx context.Context, from, date string) ([]models.Message, error) {
	start, end, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	filter := bson.M{
		"from":    from,
		"sent_on": bson.M{"$gte": start, "$lt": end},
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "sent_on", Value: 1}}))
}

// DeleteByID deletes a message by ID
func (r *MongoMessageRepository) DeleteByID(ctx context.Context, id string) (models.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.DeleteResult{}, nil
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{RemovedCount: res.DeletedCount}, nil
}

// DeleteAllSentBy deletes every message a user sent. Messages the user
// received are left alone.
func (r *MongoMessageRepository) DeleteAllSentBy(ctx context.Context, from string) (models.DeleteResult, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"from": from})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{RemovedCount: res.DeletedCount}, nil
}

func (r *MongoMessageRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Message, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []messageDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	messages := make([]models.Message, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, d.toModel())
	}
	return messages, nil
}
