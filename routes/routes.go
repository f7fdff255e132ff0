package routes

import (
	"time"

	"mindbloom/handlers"
	"mindbloom/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the route-level settings taken from configuration.
type Options struct {
	AllowedOrigins    []string
	MaxRequestsPerMin int
}

// RegisterSessionRoutes registers sign-in and sign-out.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/admin/session")
	{
		api.POST("", hb.Sessions.OpenSessionHandler)

		api.Use(auth)
		api.GET("", hb.Sessions.GetSessionHandler)
		api.DELETE("", hb.Sessions.CloseSessionHandler)
	}
}

// RegisterAdminRoutes registers the back-office resources. Every route needs a session.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	admin := r.Group("/admin")
	admin.Use(auth)

	categories := admin.Group("/categories")
	{
		categories.GET("", hb.Catalog.ListCategoriesHandler)
		categories.POST("", hb.Catalog.CreateCategoryHandler)
		categories.PUT("/:id", hb.Catalog.UpdateCategoryHandler)
		categories.DELETE("/:id", hb.Catalog.DeleteCategoryHandler)
	}

	subcategories := admin.Group("/subcategories")
	{
		subcategories.GET("", hb.Catalog.ListSubcategoriesHandler)
		subcategories.GET("/choices", hb.Catalog.SubcategoryChoicesHandler)
		subcategories.POST("", hb.Catalog.CreateSubcategoryHandler)
		subcategories.PUT("/:id", hb.Catalog.UpdateSubcategoryHandler)
		subcategories.DELETE("/:id", hb.Catalog.DeleteSubcategoryHandler)
	}

	consultants := admin.Group("/consultants")
	{
		consultants.GET("", hb.Consultants.ListConsultantsHandler)
		consultants.GET("/:id", hb.Consultants.GetConsultantHandler)
		consultants.POST("", hb.Consultants.CreateConsultantHandler)
		consultants.PUT("/:id", hb.Consultants.UpdateConsultantHandler)
		consultants.DELETE("/:id", hb.Consultants.DeleteConsultantHandler)
		consultants.POST("/:id/status", hb.Consultants.ToggleStatusHandler)
		consultants.GET("/:id/availability", hb.Consultants.GetAvailabilityHandler)
		consultants.PUT("/:id/availability", hb.Consultants.ReplaceAvailabilityHandler)
		consultants.POST("/:id/availability/retry", hb.Consultants.RetryAvailabilityHandler)
		consultants.GET("/:id/availability/history", hb.Consultants.AvailabilityHistoryHandler)
	}

	users := admin.Group("/users")
	{
		users.Use(middleware.RequireSuperAdmin())
		users.GET("", hb.Users.ListUsersHandler)
		users.POST("", hb.Users.CreateUserHandler)
		users.PUT("/:id", hb.Users.UpdateUserHandler)
		users.DELETE("/:id", hb.Users.DeleteUserHandler)
		users.POST("/:id/status", hb.Users.ToggleStatusHandler)
	}

	services := admin.Group("/services")
	{
		services.GET("", hb.Services.ListServicesHandler)
		services.GET("/new", hb.Services.NewServiceFormHandler)
		services.GET("/booking-options", hb.Services.BookingOptionsHandler)
		services.GET("/:id", hb.Services.GetServiceHandler)
		services.POST("", hb.Services.CreateServiceHandler)
		services.PUT("/:id", hb.Services.UpdateServiceHandler)
		services.DELETE("/:id", hb.Services.DeleteServiceHandler)
	}

	products := admin.Group("/products")
	{
		products.GET("", hb.Products.ListProductsHandler)
		products.GET("/new", hb.Products.NewProductFormHandler)
		products.POST("/form/edit", hb.Products.EditProductFormHandler)
		products.GET("/:id", hb.Products.GetProductHandler)
		products.POST("", hb.Products.CreateProductHandler)
		products.PUT("/:id", hb.Products.UpdateProductHandler)
		products.DELETE("/:id", hb.Products.DeleteProductHandler)
	}

	blogs := admin.Group("/blogs")
	{
		blogs.GET("", hb.Content.ListBlogsHandler)
		blogs.GET("/categories", hb.Content.BlogCategoriesHandler)
		blogs.POST("", hb.Content.CreateBlogHandler)
		blogs.PUT("/:id", hb.Content.UpdateBlogHandler)
		blogs.DELETE("/:id", hb.Content.DeleteBlogHandler)
	}

	webinars := admin.Group("/webinars")
	{
		webinars.GET("", hb.Content.ListWebinarsHandler)
		webinars.POST("", hb.Content.CreateWebinarHandler)
		webinars.PUT("/:id", hb.Content.UpdateWebinarHandler)
		webinars.DELETE("/:id", hb.Content.DeleteWebinarHandler)
	}

	consultations := admin.Group("/consultations")
	{
		consultations.GET("", hb.Consultations.ListConsultationsHandler)
		consultations.GET("/by-email", hb.Consultations.ByEmailHandler)
		consultations.DELETE("/by-email/:id", hb.Consultations.DeleteByEmailHandler)
		consultations.POST("", hb.Consultations.CreateConsultationHandler)
		consultations.PUT("/:id", hb.Consultations.UpdateConsultationHandler)
		consultations.DELETE("/:id", hb.Consultations.DeleteConsultationHandler)
	}

	admin.POST("/uploads", hb.Uploads.UploadHandler)
	admin.GET("/auth/google", hb.Uploads.GoogleAuthHandler)
}

// RegisterLandingRoutes registers the public landing page endpoints behind a per-IP rate limit.
func RegisterLandingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, perMinute int) {
	api := r.Group("/api/landing")
	{
		api.Use(middleware.RateLimitMiddleware(perMinute))
		api.GET("/consultants", hb.Landing.ConsultantsHandler)
		api.GET("/marketplace", hb.Landing.MarketplaceHandler)
		api.GET("/faq", hb.Landing.FAQHandler)
		api.POST("/bookings", hb.Landing.BookHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: !allowsAny(opts.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.SessionAuth(hb.SessionResolver)

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, hb, auth)
	RegisterAdminRoutes(r, hb, auth)
	RegisterLandingRoutes(r, hb, opts.MaxRequestsPerMin)
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
