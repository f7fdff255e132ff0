package handlers

import (
	"errors"
	"net/http"

	"mindbloom/models"
	"mindbloom/services/landing"

	"github.com/gin-gonic/gin"
)

// LandingHandler serves the public landing page. No session is involved.
type LandingHandler struct {
	Service *landing.Service
}

func NewLandingHandler(svc *landing.Service) *LandingHandler {
	return &LandingHandler{Service: svc}
}

func (h *LandingHandler) ConsultantsHandler(c *gin.Context) {
	var f landing.ConsultantFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, "Invalid query", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"consultants": h.Service.Consultants(f),
		"expertises":  h.Service.Expertises(),
	})
}

func (h *LandingHandler) MarketplaceHandler(c *gin.Context) {
	var f landing.MarketFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, "Invalid query", err)
		return
	}
	c.JSON(http.StatusOK, h.Service.Marketplace(f))
}

func (h *LandingHandler) FAQHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faqs": h.Service.FAQs()})
}

// BookHandler checks the booking form. Nothing is stored.
func (h *LandingHandler) BookHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	receipt, err := h.Service.Book(req)
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit booking"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}
