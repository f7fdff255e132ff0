// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"mindbloom/middleware"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	Sessions      *SessionHandler
	Catalog       *CatalogHandler
	Consultants   *ConsultantHandler
	Users         *UserHandler
	Services      *ServiceHandler
	Products      *ProductHandler
	Content       *ContentHandler
	Consultations *ConsultationHandler
	Uploads       *UploadHandler
	Landing       *LandingHandler

	// SessionResolver backs the session check of every /admin route.
	SessionResolver middleware.SessionResolver
}

// HealthHandler reports the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && (!status.Redis || (status.Mongo != nil && !*status.Mongo)) {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": http.StatusText(code), "health": status, "message": "Hi, I'm Mindbloom"})
}
