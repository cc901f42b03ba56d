package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"mechgenz/backend/internal/catalog"
	"mechgenz/backend/internal/config"
	"mechgenz/backend/internal/mail"
	"mechgenz/backend/internal/repository"
	"mechgenz/backend/internal/service"
	"mechgenz/backend/internal/storage"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	db          *mongo.Database
	registry    *service.Registry
	contact     *service.ContactService
	submissions *repository.SubmissionRepository
	admins      *repository.AdminRepository
	mailer      *mail.Mailer
	disk        *storage.Disk
}

func NewHandlerSet(log zerolog.Logger, db *mongo.Database, cfg *config.AppConfig, cat catalog.Catalog, disk *storage.Disk, mailer *mail.Mailer) HandlerSet {
	submissionRepo := repository.NewSubmissionRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	registry := service.NewRegistry(cat, overrideRepo, disk, log)
	contact := service.NewContactService(submissionRepo, disk, mailer, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		db:          db,
		registry:    registry,
		contact:     contact,
		submissions: submissionRepo,
		admins:      adminRepo,
		mailer:      mailer,
		disk:        disk,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.POST("/contact", h.SubmitContact)
	router.POST("/send-reply", h.SendReply)

	router.GET("/submissions", h.ListSubmissions)
	router.PUT("/submissions/:id/status", h.UpdateSubmissionStatus)
	router.DELETE("/submissions/:id", h.DeleteSubmission)
	router.GET("/submissions/:id/file/:filename", h.DownloadSubmissionFile)
	router.GET("/stats", h.Stats)

	admin := router.Group("/admin")
	{
		admin.POST("/login", h.AdminLogin)
		admin.GET("/profile", h.AdminProfile)
		admin.PUT("/profile", h.UpdateAdminProfile)
	}

	images := router.Group("/website-images")
	{
		images.GET("", h.ListWebsiteImages)
		images.GET("/categories", h.ImageCategories)
		images.POST("/:id/upload", h.UploadWebsiteImage)
		images.PUT("/:id", h.UpdateWebsiteImage)
		images.DELETE("/:id/reset", h.ResetWebsiteImage)
		images.DELETE("/:id", h.DeleteWebsiteImage)
	}
}

// fail translates an operation error into the HTTP taxonomy: not-found
// and invalid-input sentinels map to 404/400, store timeouts to 503,
// everything else to a generic 500 with the message.
func (h HandlerSet) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSlotNotFound),
		errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, repository.ErrOverrideNotFound),
		errors.Is(err, repository.ErrSubmissionNotFound),
		errors.Is(err, repository.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAnImage),
		errors.Is(err, service.ErrInvalidDeleteMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database connection not available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
