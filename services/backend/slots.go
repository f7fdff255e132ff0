package backend

import (
	"context"
	"fmt"
	"net/http"

	"mindbloom/models"
)

// Availability is the consultant availability sub-resource,
// /api/consultants/:id/availability[/:slotId].
type Availability struct {
	client *Client
}

func NewAvailability(client *Client) *Availability {
	return &Availability{client: client}
}

func (a *Availability) ListSlots(ctx context.Context, sess *models.Session, consultantID int64) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	if err := a.client.Get(ctx, sess, a.path(consultantID), nil, &slots); err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.AvailabilitySlot{}
	}
	return slots, nil
}

func (a *Availability) CreateSlot(ctx context.Context, sess *models.Session, consultantID int64, slot models.AvailabilitySlot) error {
	return a.client.Send(ctx, sess, http.MethodPost, a.path(consultantID), slot, nil)
}

func (a *Availability) DeleteSlot(ctx context.Context, sess *models.Session, consultantID, slotID int64) error {
	return a.client.Delete(ctx, sess, fmt.Sprintf("%s/%d", a.path(consultantID), slotID))
}

func (a *Availability) path(consultantID int64) string {
	return fmt.Sprintf("/api/consultants/%d/availability", consultantID)
}
