// File: database/repository/journal/interface.go
package journalRepo

import (
	"context"
	"errors"

	"mindbloom/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no entry matches.
var ErrNotFound = errors.New("journal entry not found")

// JournalRepository persists slot replacement entries.
type JournalRepository interface {
	Create(ctx context.Context, entry models.ReplaceEntry) error
	Update(ctx context.Context, entry models.ReplaceEntry) error
	GetByID(ctx context.Context, id string) (*models.ReplaceEntry, error)
	// Latest returns the newest entry of a consultant, whatever its status.
	Latest(ctx context.Context, consultantID int64) (*models.ReplaceEntry, error)
	ListByConsultant(ctx context.Context, consultantID int64) ([]models.ReplaceEntry, error)
}

type mongoJournalRepo struct {
	coll *mongo.Collection
}

// NewMongoJournalRepo stores entries in the slot_replacements collection of db.
func NewMongoJournalRepo(db *mongo.Database) JournalRepository {
	return &mongoJournalRepo{coll: db.Collection("slot_replacements")}
}
