package handlers

import (
	"net/http"

	"mindbloom/models"
	"mindbloom/services/consultation"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	responder
	Service *consultation.Service
}

func NewConsultationHandler(svc *consultation.Service, sessions SessionCloser) *ConsultationHandler {
	return &ConsultationHandler{responder: responder{sessions: sessions}, Service: svc}
}

func (h *ConsultationHandler) ListConsultationsHandler(c *gin.Context) {
	rows, err := h.Service.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch consultations", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultation.Columns)
}

func (h *ConsultationHandler) CreateConsultationHandler(c *gin.Context) {
	var req models.Consultation
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.Create(c.Request.Context(), sessionOf(c), req)
	if err != nil {
		h.fail(c, "create consultation", err)
		return
	}
	respondList(c, http.StatusCreated, rows, consultation.Columns)
}

func (h *ConsultationHandler) UpdateConsultationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.Consultation
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.Update(c.Request.Context(), sessionOf(c), id, req)
	if err != nil {
		h.fail(c, "update consultation", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultation.Columns)
}

func (h *ConsultationHandler) DeleteConsultationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete consultation", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultation.Columns)
}

// ByEmailHandler looks up consultations by attendee, ?email=.
func (h *ConsultationHandler) ByEmailHandler(c *gin.Context) {
	rows, err := h.Service.ByEmail(c.Request.Context(), sessionOf(c), c.Query("email"))
	if err != nil {
		h.fail(c, "look up consultations", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultation.Columns)
}

// DeleteByEmailHandler removes a looked-up record and returns the refreshed lookup for ?email=.
func (h *ConsultationHandler) DeleteByEmailHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.DeleteByEmail(c.Request.Context(), sessionOf(c), id, c.Query("email"), confirmed(c))
	if err != nil {
		h.fail(c, "delete consultation", err)
		return
	}
	respondList(c, http.StatusOK, rows, consultation.Columns)
}
