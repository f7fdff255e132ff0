// File: main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindbloom/config"
	"mindbloom/database"
	journalRepo "mindbloom/database/repository/journal"
	"mindbloom/handlers"
	"mindbloom/models"
	"mindbloom/routes"
	"mindbloom/services/availability"
	"mindbloom/services/backend"
	"mindbloom/services/catalog"
	"mindbloom/services/consultant"
	"mindbloom/services/consultation"
	"mindbloom/services/content"
	"mindbloom/services/landing"
	"mindbloom/services/offering"
	"mindbloom/services/product"
	"mindbloom/services/session"
	"mindbloom/services/slots"
	"mindbloom/services/staff"
	"mindbloom/services/storage"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// 1. Infrastructure: Redis for sessions, Mongo (or memory) for the slot journal.
	utils.InitSessionCache()
	if err := database.InitDB(rootCtx); err != nil {
		logger.Fatal("main: failed to initialize database", zap.Error(err))
	}

	journal := journalRepo.NewMemoryJournalRepo()
	if database.MongoClient != nil {
		db := database.MongoClient.Database(cfg.DatabaseName)
		if err := journalRepo.EnsureIndexes(rootCtx, db); err != nil {
			logger.Warn("main: failed to ensure journal indexes", zap.Error(err))
		}
		journal = journalRepo.NewMongoJournalRepo(db)
	}

	// 2. Backend client and uploads.
	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout(), backend.WithUploadPath(cfg.UploadPath))
	uploader, err := storage.New(cfg.StorageDriver, client, utils.Cloudinary, cfg.CloudinaryFolder)
	if err != nil {
		logger.Fatal("main: failed to initialize storage", zap.Error(err))
	}

	// 3. Services.
	sessions := session.NewManager(session.NewStore(utils.GetSessionCacheClient()), client, cfg.SessionTTL())
	slotAPI := backend.NewAvailability(client)
	replacer := slots.NewReplacer(slotAPI, journal)

	catalogSvc := catalog.NewService(
		backend.NewResource[models.Category](client, "/api/categories"),
		backend.NewResource[models.Subcategory](client, "/api/subcategories"),
	)
	consultantSvc := consultant.NewService(
		backend.NewMultipartResource[models.Consultant](client, "/api/consultants"),
		replacer,
		cfg.AllowedEmailDomain,
	)
	staffSvc := staff.NewService(backend.NewResource[models.StaffUser](client, "/api/users"))
	offeringSvc := offering.NewService(
		backend.NewMultipartResource[models.Service](client, "/api/services"),
		slotAPI,
		availability.NewDeriver(),
	)
	productSvc := product.NewService(backend.NewMultipartResource[models.Product](client, "/api/products"))
	blogs := content.NewBlogs(backend.NewResource[models.Blog](client, "/api/blogs"), uploader)
	webinars := content.NewWebinars(backend.NewResource[models.Webinar](client, "/api/webinars"))
	consultationSvc := consultation.NewService(backend.NewResource[models.Consultation](client, "/api/admin/consultations"), client)
	landingSvc := landing.NewService(landing.DefaultDataset())

	// 4. Handlers.
	handlerBundle := &handlers.HandlerBundle{
		Sessions:        handlers.NewSessionHandler(sessions),
		Catalog:         handlers.NewCatalogHandler(catalogSvc, sessions),
		Consultants:     handlers.NewConsultantHandler(consultantSvc, sessions),
		Users:           handlers.NewUserHandler(staffSvc, sessions),
		Services:        handlers.NewServiceHandler(offeringSvc, sessions),
		Products:        handlers.NewProductHandler(productSvc, sessions),
		Content:         handlers.NewContentHandler(blogs, webinars, sessions),
		Consultations:   handlers.NewConsultationHandler(consultationSvc, sessions),
		Uploads:         handlers.NewUploadHandler(uploader, client, sessions),
		Landing:         handlers.NewLandingHandler(landingSvc),
		SessionResolver: sessions,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		AllowedOrigins:    cfg.AllowedOrigins(),
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
	})

	utils.StartHealthMonitor(rootCtx, utils.GetSessionCacheClient(), database.MongoClient)

	// 5. Serve until signalled.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("backend", cfg.BackendURL))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Error("main: failed to close MongoDB", zap.Error(err))
	}
	if err := utils.GetSessionCacheClient().Close(); err != nil {
		logger.Error("main: failed to close Redis", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
