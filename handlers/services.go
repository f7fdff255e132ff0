package handlers

import (
	"net/http"

	"mindbloom/models"
	"mindbloom/services/offering"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the service catalogue and booking options.
type ServiceHandler struct {
	responder
	Service *offering.Service
}

func NewServiceHandler(svc *offering.Service, sessions SessionCloser) *ServiceHandler {
	return &ServiceHandler{responder: responder{sessions: sessions}, Service: svc}
}

func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	rows, err := h.Service.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch services", err)
		return
	}
	respondList(c, http.StatusOK, rows, offering.Columns)
}

// NewServiceFormHandler returns the defaults of a blank service form.
func (h *ServiceHandler) NewServiceFormHandler(c *gin.Context) {
	form := models.NewServiceForm()
	c.JSON(http.StatusOK, gin.H{"form": form, "can_add_suggestion": form.CanAddSuggestion()})
}

func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, err := h.Service.EditForm(c.Request.Context(), sessionOf(c), id)
	if err != nil {
		h.fail(c, "fetch service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": form, "can_add_suggestion": form.CanAddSuggestion()})
}

func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	form, ok := h.bind(c)
	if !ok {
		return
	}
	rows, err := h.Service.Create(c.Request.Context(), sessionOf(c), form)
	if err != nil {
		h.fail(c, "create service", err)
		return
	}
	respondList(c, http.StatusCreated, rows, offering.Columns)
}

func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
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
		h.fail(c, "update service", err)
		return
	}
	respondList(c, http.StatusOK, rows, offering.Columns)
}

func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete service", err)
		return
	}
	respondList(c, http.StatusOK, rows, offering.Columns)
}

// BookingOptionsHandler derives bookable dates and times for ?consultant_ids=1,2&date=YYYY-MM-DD.
func (h *ServiceHandler) BookingOptionsHandler(c *gin.Context) {
	ids, err := utils.ParseIDList(c.Query("consultant_ids"))
	if err != nil {
		badRequest(c, "Invalid consultant_ids", err)
		return
	}
	opts, err := h.Service.BookingOptions(c.Request.Context(), sessionOf(c), ids, c.Query("date"))
	if err != nil {
		h.fail(c, "fetch booking options", err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// bind decodes the form and re-adds suggestions so the cap holds for posted forms too.
func (h *ServiceHandler) bind(c *gin.Context) (models.ServiceForm, bool) {
	var form models.ServiceForm
	if err := bindForm(c, &form); err != nil {
		invalidPayload(c, err)
		return form, false
	}
	posted := form.Suggestions
	form.Suggestions = nil
	for _, s := range posted {
		form.AddSuggestion(s)
	}

	if err := formFiles(c, map[string]**models.Attachment{"event_image": &form.Event.ImageFile}); err != nil {
		badRequest(c, "Invalid file upload", err)
		return form, false
	}
	return form, true
}
