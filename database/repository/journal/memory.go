package journalRepo

import (
	"context"
	"sort"
	"sync"

	"mindbloom/models"
)

type memoryJournalRepo struct {
	mu      sync.RWMutex
	entries map[string]models.ReplaceEntry
}

// NewMemoryJournalRepo keeps entries in process. Used when DATABASE_URL is memory://.
func NewMemoryJournalRepo() JournalRepository {
	return &memoryJournalRepo{entries: map[string]models.ReplaceEntry{}}
}

func (r *memoryJournalRepo) Create(_ context.Context, entry models.ReplaceEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = clone(entry)
	return nil
}

func (r *memoryJournalRepo) Update(_ context.Context, entry models.ReplaceEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return ErrNotFound
	}
	r.entries[entry.ID] = clone(entry)
	return nil
}

func (r *memoryJournalRepo) GetByID(_ context.Context, id string) (*models.ReplaceEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := clone(entry)
	return &out, nil
}

func (r *memoryJournalRepo) Latest(ctx context.Context, consultantID int64) (*models.ReplaceEntry, error) {
	entries, _ := r.ListByConsultant(ctx, consultantID)
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &entries[0], nil
}

func (r *memoryJournalRepo) ListByConsultant(_ context.Context, consultantID int64) ([]models.ReplaceEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.ReplaceEntry{}
	for _, e := range r.entries {
		if e.ConsultantID == consultantID {
			out = append(out, clone(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func clone(e models.ReplaceEntry) models.ReplaceEntry {
	e.Drafts = append([]models.SlotDraft(nil), e.Drafts...)
	return e
}
