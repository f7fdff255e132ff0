// File: services/slots/replace.go
package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	journalRepo "mindbloom/database/repository/journal"
	"mindbloom/models"
	"mindbloom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNothingToRetry is returned by Retry when the consultant's newest
// replacement did not fail.
var ErrNothingToRetry = errors.New("no failed slot replacement to retry")

// SlotAPI is the backend's consultant availability sub-resource.
type SlotAPI interface {
	ListSlots(ctx context.Context, sess *models.Session, consultantID int64) ([]models.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, sess *models.Session, consultantID int64, slot models.AvailabilitySlot) error
	DeleteSlot(ctx context.Context, sess *models.Session, consultantID, slotID int64) error
}

// ReplaceError reports where a replacement stopped. The backend may hold a
// partial slot set until the entry is retried.
type ReplaceError struct {
	JournalID string
	Phase     string
	Deleted   int
	Created   int
	Err       error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("slot replacement stopped while %s (deleted %d, created %d): %v", e.Phase, e.Deleted, e.Created, e.Err)
}

func (e *ReplaceError) Unwrap() error {
	return e.Err
}

// Replacer replaces a consultant's persisted slots with a draft list:
// list, delete each, create each complete draft. Calls are sequential and the
// first failure stops the run.
type Replacer struct {
	api     SlotAPI
	journal journalRepo.JournalRepository
	now     func() time.Time
}

func NewReplacer(api SlotAPI, journal journalRepo.JournalRepository) *Replacer {
	return &Replacer{api: api, journal: journal, now: time.Now}
}

// Replace runs a new journaled replacement.
func (r *Replacer) Replace(ctx context.Context, sess *models.Session, consultantID int64, drafts []models.SlotDraft) (*models.ReplaceEntry, error) {
	now := r.now()
	entry := models.ReplaceEntry{
		ID:           uuid.New().String(),
		ConsultantID: consultantID,
		Drafts:       append([]models.SlotDraft{}, drafts...),
		Status:       models.ReplacePending,
		Phase:        models.PhaseListing,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.journal.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to journal slot replacement: %w", err)
	}
	return r.run(ctx, sess, entry)
}

// Retry re-runs the consultant's newest replacement when it failed. A failure
// followed by a successful replacement is superseded and never replayed. The run
// starts again from listing, so already deleted or created slots are not duplicated.
func (r *Replacer) Retry(ctx context.Context, sess *models.Session, consultantID int64) (*models.ReplaceEntry, error) {
	entry, err := r.journal.Latest(ctx, consultantID)
	if errors.Is(err, journalRepo.ErrNotFound) {
		return nil, ErrNothingToRetry
	}
	if err != nil {
		return nil, err
	}
	if entry.Status != models.ReplaceFailed {
		return nil, ErrNothingToRetry
	}
	return r.run(ctx, sess, *entry)
}

// History lists the consultant's recent replacements, newest first.
func (r *Replacer) History(ctx context.Context, consultantID int64) ([]models.ReplaceEntry, error) {
	return r.journal.ListByConsultant(ctx, consultantID)
}

// Load fetches the persisted slots fresh and maps them to drafts.
func (r *Replacer) Load(ctx context.Context, sess *models.Session, consultantID int64) ([]models.SlotDraft, error) {
	slots, err := r.api.ListSlots(ctx, sess, consultantID)
	if err != nil {
		return nil, err
	}
	return models.SlotsToDrafts(slots), nil
}

func (r *Replacer) run(ctx context.Context, sess *models.Session, entry models.ReplaceEntry) (*models.ReplaceEntry, error) {
	log := utils.GetLogger().With(zap.String("journal", entry.ID), zap.Int64("consultant", entry.ConsultantID))
	entry.Attempts++
	entry.Status = models.ReplacePending
	entry.Deleted, entry.Created, entry.Error = 0, 0, ""

	// 1. Read what is persisted now
	entry.Phase = models.PhaseListing
	existing, err := r.api.ListSlots(ctx, sess, entry.ConsultantID)
	if err != nil {
		return r.fail(ctx, entry, err)
	}

	// 2. Remove every persisted slot
	entry.Phase = models.PhaseDeleting
	for _, slot := range existing {
		if err := r.api.DeleteSlot(ctx, sess, entry.ConsultantID, slot.ID); err != nil {
			return r.fail(ctx, entry, err)
		}
		entry.Deleted++
	}

	// 3. Create every complete draft
	entry.Phase = models.PhaseCreating
	for _, d := range entry.Drafts {
		if !d.Complete() {
			continue
		}
		if err := r.api.CreateSlot(ctx, sess, entry.ConsultantID, d.Slot()); err != nil {
			return r.fail(ctx, entry, err)
		}
		entry.Created++
	}

	entry.Phase = models.PhaseComplete
	entry.Status = models.ReplaceDone
	entry.UpdatedAt = r.now()
	if err := r.journal.Update(ctx, entry); err != nil {
		log.Warn("Slot replacement finished but journal update failed", zap.Error(err))
	}
	log.Info("Slots replaced", zap.Int("deleted", entry.Deleted), zap.Int("created", entry.Created))
	return &entry, nil
}

func (r *Replacer) fail(ctx context.Context, entry models.ReplaceEntry, cause error) (*models.ReplaceEntry, error) {
	entry.Status = models.ReplaceFailed
	entry.Error = cause.Error()
	entry.UpdatedAt = r.now()
	if err := r.journal.Update(ctx, entry); err != nil {
		utils.GetLogger().Error("Failed to record slot replacement failure", zap.String("journal", entry.ID), zap.Error(err))
	}
	utils.GetLogger().Error("Slot replacement stopped",
		zap.String("journal", entry.ID), zap.String("phase", entry.Phase),
		zap.Int("deleted", entry.Deleted), zap.Int("created", entry.Created), zap.Error(cause))

	return &entry, &ReplaceError{
		JournalID: entry.ID,
		Phase:     entry.Phase,
		Deleted:   entry.Deleted,
		Created:   entry.Created,
		Err:       cause,
	}
}
