package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/reportcare/reportcare_backend/config"
	"github.com/reportcare/reportcare_backend/internal/api/http/handler"
	"github.com/reportcare/reportcare_backend/internal/api/http/middleware"
	"github.com/reportcare/reportcare_backend/internal/classifier"
	"github.com/reportcare/reportcare_backend/internal/service/account"
	"github.com/reportcare/reportcare_backend/internal/service/analysis"
	"github.com/reportcare/reportcare_backend/internal/service/file"
	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/report"
	"github.com/reportcare/reportcare_backend/internal/service/screening"
	"github.com/reportcare/reportcare_backend/internal/service/verify"
	"github.com/reportcare/reportcare_backend/pkg/authorize"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	Auth         authorize.IAuthorization
	Classifier   *classifier.Classifier
	AccountSvc   account.Service
	PatientSvc   patient.Service
	ReportSvc    report.Service
	ScreeningSvc screening.Service
	AnalysisSvc  analysis.Service
	VerifySvc    verify.Service
	FileSvc      file.Service
	PasetoMgr    *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AccountSvc)
	accountH := handler.NewAccountHandler(r.p.AccountSvc)
	fileH := handler.NewFileHandler(r.p.FileSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.ReportSvc)
	screeningH := handler.NewScreeningHandler(r.p.ScreeningSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)
	analysisH := handler.NewAnalysisHandler(r.p.AnalysisSvc)
	dashboardH := handler.NewDashboardHandler(r.p.PatientSvc, r.p.ReportSvc)
	verifyH := handler.NewVerifyHandler(r.p.VerifySvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerVerifyRoutes(api, verifyH)
	r.registerAccountRoutes(api, accountH, fileH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired, requirePerm)
	r.registerScreeningRoutes(api, screeningH, authRequired, requirePerm)
	r.registerReportRoutes(api, reportH, analysisH, dashboardH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		// Readiness hinges on the model artifacts having loaded.
		Probe: func(c fiber.Ctx) bool { return r.p.Classifier != nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
