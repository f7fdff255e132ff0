// File: database/repository/journal/mongo.go
package journalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindbloom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoJournalRepo) Create(ctx context.Context, entry models.ReplaceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

func (r *mongoJournalRepo) Update(ctx context.Context, entry models.ReplaceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": entry.ID}, entry)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoJournalRepo) GetByID(ctx context.Context, id string) (*models.ReplaceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ReplaceEntry
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoJournalRepo) Latest(ctx context.Context, consultantID int64) (*models.ReplaceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"consultantId": consultantID}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var entry models.ReplaceEntry
	err := r.coll.FindOne(ctx, filter, opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoJournalRepo) ListByConsultant(ctx context.Context, consultantID int64) ([]models.ReplaceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(50)
	cursor, err := r.coll.Find(ctx, bson.M{"consultantId": consultantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.ReplaceEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureIndexes creates the indexes used by the lookups above.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "consultantId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("consultant_created_idx"),
		},
	}
	if _, err := db.Collection("slot_replacements").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create journal indexes: %w", err)
	}
	return nil
}
