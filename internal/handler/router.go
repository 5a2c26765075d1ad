package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sportsmaster/booking-api/internal/middleware"
	"github.com/sportsmaster/booking-api/internal/models"
	"github.com/sportsmaster/booking-api/internal/service"
	"github.com/sportsmaster/booking-api/pkg/config"
	"github.com/sportsmaster/booking-api/pkg/logger"
	corsmiddleware "github.com/sportsmaster/booking-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sportsmaster/booking-api/pkg/middleware/requestid"

	"go.uber.org/zap"
)

// RouterDeps bundles everything route registration needs.
type RouterDeps struct {
	Config     *config.Config
	Logger     *zap.Logger
	Auth       *service.AuthService
	Users      *service.UserService
	Classes    *service.ClassService
	Selections *service.SelectionService
	Payments   *service.PaymentService
	Receipts   *service.ReceiptService
	Metrics    *service.MetricsService
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	authHandler := NewAuthHandler(deps.Auth)
	userHandler := NewUserHandler(deps.Users)
	classHandler := NewClassHandler(deps.Classes)
	selectionHandler := NewSelectionHandler(deps.Selections)
	paymentHandler := NewPaymentHandler(deps.Payments, deps.Receipts)
	metricsHandler := NewMetricsHandler(deps.Metrics)

	authed := middleware.JWT(deps.Auth)
	instructorOnly := middleware.RequireRole(deps.Users, models.RoleInstructor)
	adminOnly := middleware.RequireRole(deps.Users, models.RoleAdmin)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "sports master is running")
	})
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(deps.Config.APIPrefix)

	// Public surface: token minting, registration, the open catalog.
	api.POST("/jwt", authHandler.IssueToken)
	api.POST("/users", userHandler.Register)
	api.GET("/allClass", classHandler.List)

	// Any signed-in account.
	api.GET("/users/admin/:email", authed, userHandler.CheckAdmin)
	api.GET("/users/instructor/:email", authed, userHandler.CheckInstructor)
	api.GET("/allClass/:email", authed, classHandler.ListByInstructor)
	api.GET("/selectClass", authed, selectionHandler.List)
	api.POST("/selectClass", authed, selectionHandler.Select)
	api.DELETE("/selectClass/delete/:id", authed, selectionHandler.Remove)
	api.POST("/create-payment-intent", authed, paymentHandler.CreateIntent)
	api.POST("/payments", authed, paymentHandler.Settle)
	api.GET("/payments", authed, paymentHandler.List)
	api.GET("/payments/short", authed, paymentHandler.ListRecent)
	api.GET("/payments/export", authed, paymentHandler.Export)
	api.GET("/payments/:id/receipt", authed, paymentHandler.ReceiptURL)
	api.GET("/receipts/download", paymentHandler.DownloadReceipt)

	// Instructor surface.
	api.POST("/addClass", authed, instructorOnly, classHandler.Submit)
	api.GET("/manageClass", authed, instructorOnly, classHandler.ListOwn)

	// Admin surface.
	api.GET("/users", authed, adminOnly, userHandler.List)
	api.PATCH("/users/admin/:id", authed, adminOnly, userHandler.PromoteAdmin)
	api.PATCH("/users/instructor/:id", authed, adminOnly, userHandler.PromoteInstructor)
	api.PATCH("/addClass/approve/:id", authed, adminOnly, classHandler.Approve)
	api.PATCH("/addClass/deny/:id", authed, adminOnly, classHandler.Deny)
	api.PUT("/feedback/:id", authed, adminOnly, classHandler.SetFeedback)

	return r
}
