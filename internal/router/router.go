package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rbdtech/afc-portal-api/internal/handler"
	appointmentHandler "github.com/rbdtech/afc-portal-api/internal/handler/appointment"
	authHandler "github.com/rbdtech/afc-portal-api/internal/handler/auth"
	doctorHandler "github.com/rbdtech/afc-portal-api/internal/handler/doctor"
	enquiryHandler "github.com/rbdtech/afc-portal-api/internal/handler/enquiry"
	intakeHandler "github.com/rbdtech/afc-portal-api/internal/handler/intake"
	patientHandler "github.com/rbdtech/afc-portal-api/internal/handler/patient"
	prometheusHandler "github.com/rbdtech/afc-portal-api/internal/handler/prometheus"
	"github.com/rbdtech/afc-portal-api/internal/middleware"
	"github.com/rbdtech/afc-portal-api/internal/model"
)

type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORSConfig     middleware.CORSConfig
	MetricsPath    string
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	authH        *authHandler.Handler
	patientH     *patientHandler.Handler
	doctorH      *doctorHandler.Handler
	appointmentH *appointmentHandler.Handler
	enquiryH     *enquiryHandler.Handler
	intakeH      *intakeHandler.Handler
	promH        *prometheusHandler.Handler
	h            *handler.Handler
	config       RouterConfig
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	patientH *patientHandler.Handler,
	doctorH *doctorHandler.Handler,
	appointmentH *appointmentHandler.Handler,
	enquiryH *enquiryHandler.Handler,
	intakeH *intakeHandler.Handler,
	h *handler.Handler,
	config RouterConfig,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidators()
	engine := gin.New()

	r := &Router{
		engine:       engine,
		auth:         auth,
		authH:        authH,
		patientH:     patientH,
		doctorH:      doctorH,
		appointmentH: appointmentH,
		enquiryH:     enquiryH,
		intakeH:      intakeH,
		promH:        prometheusHandler.New(),
		h:            h,
		config:       config,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.promH.Middleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: 30 * time.Second}),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Setup() {
	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET(r.config.MetricsPath, r.promH.Handler())

	api := r.engine.Group("/api/v1")

	// Public surface: login/register/session restore, anonymous
	// enquiries and the landing-page intake form.
	r.authH.RegisterRoutes(api)
	r.enquiryH.RegisterPublicRoutes(api)
	r.intakeH.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	{
		r.authH.RegisterProtectedRoutes(protected)
		r.appointmentH.RegisterRoutes(protected)
		r.doctorH.RegisterRoutes(protected)

		staff := protected.Group("")
		staff.Use(r.auth.RequireRole(model.RoleDoctor, model.RoleAdmin))
		{
			r.patientH.RegisterRoutes(staff)
			r.enquiryH.RegisterRoutes(staff)
		}
	}
}
