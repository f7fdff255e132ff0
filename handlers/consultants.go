package handlers

import (
	"errors"
	"net/http"

	"mindbloom/models"
	"mindbloom/services/consultant"
	"mindbloom/services/slots"

	"github.com/gin-gonic/gin"
)

// ConsultantHandler serves consultants and their availability.
type ConsultantHandler struct {
	responder
	Service *consultant.Service
}

func NewConsultantHandler(svc *consultant.Service, sessions SessionCloser) *ConsultantHandler {
	return &ConsultantHandler{responder: responder{sessions: sessions}, Service: svc}
}

func (h *ConsultantHandler) ListConsultantsHandler(c *gin.Context) {
	rows, err := h.Service.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch consultants", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultant.Columns)
}

// GetConsultantHandler returns the edit form of one consultant, slots included.
func (h *ConsultantHandler) GetConsultantHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, err := h.Service.EditForm(c.Request.Context(), sessionOf(c), id)
	if err != nil {
		h.fail(c, "fetch consultant", err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *ConsultantHandler) CreateConsultantHandler(c *gin.Context) {
	form, ok := h.bind(c)
	if !ok {
		return
	}
	rows, err := h.Service.Create(c.Request.Context(), sessionOf(c), form)
	if err != nil {
		h.fail(c, "create consultant", err)
		return
	}
	respondList(c, http.StatusCreated, rows, consultant.Columns)
}

func (h *ConsultantHandler) UpdateConsultantHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, ok := h.bind(c)
	if !ok {
		return
	}
	rows, err := h.Service.Update(c.Request.Context(), sessionOf(c), id, form)
	if err != nil {
		h.fail(c, "update consultant", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultant.Columns)
}

func (h *ConsultantHandler) DeleteConsultantHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete consultant", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultant.Columns)
}

func (h *ConsultantHandler) ToggleStatusHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.ToggleStatus(c.Request.Context(), sessionOf(c), id)
	if err != nil {
		h.fail(c, "update consultant status", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultant.Columns)
}

func (h *ConsultantHandler) GetAvailabilityHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	drafts, err := h.Service.Availability(c.Request.Context(), sessionOf(c), id)
	if err != nil {
		h.fail(c, "fetch availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": drafts})
}

// ReplaceAvailabilityHandler replaces every slot of the consultant with the posted drafts.
func (h *ConsultantHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Slots []models.SlotDraft `json:"slots"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	entry, err := h.Service.ReplaceAvailability(c.Request.Context(), sessionOf(c), id, req.Slots)
	if err != nil {
		h.fail(c, "replace availability", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ConsultantHandler) RetryAvailabilityHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := h.Service.RetryAvailability(c.Request.Context(), sessionOf(c), id)
	if errors.Is(err, slots.ErrNothingToRetry) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No failed availability change to retry"})
		return
	}
	if err != nil {
		h.fail(c, "retry availability", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ConsultantHandler) AvailabilityHistoryHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.Service.AvailabilityHistory(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "fetch availability history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *ConsultantHandler) bind(c *gin.Context) (models.ConsultantForm, bool) {
	var form models.ConsultantForm
	if err := bindForm(c, &form); err != nil {
		invalidPayload(c, err)
		return form, false
	}
	err := formFiles(c, map[string]**models.Attachment{
		"image":         &form.ImageFile,
		"id_proof_file": &form.IDProofUpload,
	})
	if err != nil {
		badRequest(c, "Invalid file upload", err)
		return form, false
	}
	return form, true
}
