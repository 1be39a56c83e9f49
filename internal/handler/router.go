package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/middleware"
	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
	"github.com/Chodoro/psusphere/pkg/config"
	"github.com/Chodoro/psusphere/pkg/logger"
	corsmiddleware "github.com/Chodoro/psusphere/pkg/middleware/cors"
	"github.com/Chodoro/psusphere/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/Chodoro/psusphere/pkg/middleware/requestid"
)

// RouterDeps groups everything NewRouter wires together.
type RouterDeps struct {
	Env            string
	APIPrefix      string
	AllowedOrigins []string

	Logger       *zap.Logger
	Metrics      *service.MetricsService
	DB           Pinger
	LoginLimiter *ratelimit.Limiter

	Gate       middleware.GateConfig
	Auth       AuthService
	AuthConfig AuthHandlerConfig

	Colleges      CollegeService
	Programs      ProgramService
	Students      StudentService
	Organizations OrganizationService
	OrgMembers    OrgMemberService
	Home          HomeService
	Exports       ExportService
}

type crudRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// NewRouter builds the HTTP engine.
//
// Middleware order: Recovery, request id, request log, CORS, metrics.
// Health, readiness, metrics, docs and login stay outside the session gate;
// everything else under the API prefix requires a session.
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(deps.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	metricsHandler := NewMetricsHandler(deps.Metrics, deps.DB, log)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if deps.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authConfig := deps.AuthConfig
	if authConfig.HomePath == "" {
		authConfig.HomePath = deps.APIPrefix + "/"
	}
	if authConfig.LoginPath == "" {
		authConfig.LoginPath = deps.Gate.LoginPath
	}
	if authConfig.CookieName == "" {
		authConfig.CookieName = deps.Gate.CookieName
	}
	authHandler := NewAuthHandler(deps.Auth, authConfig)

	api := r.Group(deps.APIPrefix)
	{
		login := []gin.HandlerFunc{}
		if deps.LoginLimiter != nil {
			login = append(login, deps.LoginLimiter.Middleware())
		}
		login = append(login, authHandler.Login)
		api.POST("/auth/login", login...)
		api.POST("/auth/logout", authHandler.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireSession(deps.Auth, deps.Gate))
	{
		protected.GET("/", NewHomeHandler(deps.Home).Overview)
		protected.GET("/auth/me", authHandler.Me)

		exports := NewExportHandler(deps.Exports)
		mountResource(protected, models.EntityCollege, NewCollegeHandler(deps.Colleges, deps.APIPrefix), exports)
		mountResource(protected, models.EntityProgram, NewProgramHandler(deps.Programs, deps.APIPrefix), exports)
		mountResource(protected, models.EntityStudent, NewStudentHandler(deps.Students, deps.APIPrefix), exports)
		mountResource(protected, models.EntityOrganization, NewOrganizationHandler(deps.Organizations, deps.APIPrefix), exports)
		mountResource(protected, models.EntityOrgMember, NewOrgMemberHandler(deps.OrgMembers, deps.APIPrefix), exports)
	}

	return r
}

func mountResource(g *gin.RouterGroup, entity models.Entity, h crudRoutes, exports *ExportHandler) {
	path := "/" + entity.Path()
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/export", exports.Export(entity))
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
