package routes

import (
	"net/http"
	"sync"
	"time"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"
	"pkl-management-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services mengumpulkan semua service yang dibutuhkan handler.
type Services struct {
	Auth         service.AuthService
	Master       service.MasterService
	Placement    service.PlacementService
	Evaluation   service.EvaluationService
	Activity     service.ActivityService
	Notification service.NotificationService
	System       service.SystemService
	Report       service.ReportService
}

type Options struct {
	JWTSecret   []byte
	TokenTTL    time.Duration
	CORSOrigins []string
}

var registerOnce sync.Once

// registerBindingRules memasang aturan validasi model ke validator milik gin,
// supaya ShouldBindJSON memakai aturan yang sama dengan model.Validate.
func registerBindingRules() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			model.RegisterValidations(v)
		}
	})
}

// SetupRouter merakit engine gin lengkap dengan middleware dan semua endpoint.
func SetupRouter(svc Services, opts Options) *gin.Engine {
	registerBindingRules()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/metrics"},
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "PKL Management Backend is running"})
	})

	NewSystemHandler(svc.System).SetupSystemRoutes(r)
	NewAuthHandler(svc.Auth, opts.JWTSecret, opts.TokenTTL).SetupAuthRoutes(r)
	NewMasterHandler(svc.Master).SetupMasterRoutes(r)
	NewPlacementHandler(svc.Placement).SetupPlacementRoutes(r)
	NewActivityHandler(svc.Activity).SetupActivityRoutes(r)
	NewEvaluationHandler(svc.Evaluation).SetupEvaluationRoutes(r)
	NewNotificationHandler(svc.Notification).SetupNotificationRoutes(r)
	NewReportHandler(svc.Report).SetupReportRoutes(r)

	return r
}
