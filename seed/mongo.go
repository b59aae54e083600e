package seed

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"upaya-be/models"
)

// Mongo reads issues from a collection once at start-up. It never writes.
type Mongo struct {
	Collection *mongo.Collection
	Timeout    time.Duration
}

func (m Mongo) Name() string {
	if m.Collection == nil {
		return "mongo"
	}
	return "mongo:" + m.Collection.Database().Name() + "." + m.Collection.Name()
}

func (m Mongo) Load(ctx context.Context) ([]models.Issue, error) {
	if m.Collection == nil {
		return nil, fmt.Errorf("mongo seed: no collection configured")
	}
	timeout := m.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo seed: find issues: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.IssueInput
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo seed: decode issues: %w", err)
	}
	return build(docs)
}
