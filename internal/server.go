package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/completions"
	"github.com/2beens/gymprogress/internal/config"
	"github.com/2beens/gymprogress/internal/db"
	"github.com/2beens/gymprogress/internal/mcp"
	"github.com/2beens/gymprogress/internal/middleware"
	"github.com/2beens/gymprogress/internal/programs"
	"github.com/2beens/gymprogress/internal/scheduler"
	"github.com/2beens/gymprogress/internal/tabs"
	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/internal/users"
	"github.com/2beens/gymprogress/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	adminSecret       string
	versionInfo       string

	config *config.Config
	clock  pkg.Clock
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	userRepo          *users.Repo
	programService    *programs.Service
	completionService *completions.Service
	tabService        *tabs.Service
	scheduler         *scheduler.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config           *config.Config
	VersionInfo      string
	AdminSecret      string
	RedisPassword    string
	PostgresUser     string
	PostgresPassword string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	deletePolicy, err := programs.ParseDeletePolicy(cfg.DeletePolicy)
	if err != nil {
		return nil, err
	}

	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         params.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: cfg.HoneycombEnabled,
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(dbParams.ConnString()); err != nil {
			return nil, fmt.Errorf("db migrations: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymprogress", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombEnabled, "gymprogress", rdb)
	if err != nil {
		return nil, err
	}

	clock := pkg.SystemClock{}
	userRepo := users.NewRepo(dbPool)
	programRepo := programs.NewCachedRepo(
		programs.NewRepo(dbPool),
		cfg.ProgramCacheSizeMB,
		time.Duration(cfg.ProgramCacheTTLSeconds)*time.Second,
	)
	programService := programs.NewService(programRepo, userRepo, clock, deletePolicy, metricsManager)
	completionService := completions.NewService(
		completions.NewRepo(dbPool),
		programService,
		userRepo,
		clock,
		metricsManager,
	)
	authService := auth.NewAuthService(auth.DefaultTTL, rdb, userRepo)

	jobs := scheduler.New(ctx)
	if err := jobs.Register(cfg.StreakSweepCron, users.NewStreakSweeper(userRepo, metricsManager)); err != nil {
		return nil, err
	}
	if err := jobs.Register(cfg.SessionsCleanupCron, auth.NewSessionCleanup(authService, clock)); err != nil {
		return nil, err
	}

	return &Server{
		config:      cfg,
		clock:       clock,
		dbPool:      dbPool,
		adminSecret: params.AdminSecret,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb, clock),

		userRepo:          userRepo,
		programService:    programService,
		completionService: completionService,
		tabService:        tabs.NewService(tabs.NewRepo(dbPool), programService, clock),
		scheduler:         jobs,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

type routerDeps struct {
	authHandler       *auth.Handler
	accountHandler    *auth.AccountHandler
	programsHandler   *programs.Handler
	completionHandler *completions.Handler
	tabsHandler       *tabs.Handler
	schedulerHandler  *scheduler.Handler
	mcpHandler        http.Handler

	authMiddleware *middleware.AuthMiddlewareHandler
	rateLimiter    middleware.RequestRateLimiter
	metricsManager *metrics.Manager
	loginPerMin    int
	versionInfo    string
}

func (s *Server) routerSetup() *mux.Router {
	return newRouter(routerDeps{
		authHandler:       auth.NewHandler(s.authService, s.clock),
		accountHandler:    auth.NewAccountHandler(s.userRepo),
		programsHandler:   programs.NewHandler(s.programService),
		completionHandler: completions.NewHandler(s.completionService),
		tabsHandler:       tabs.NewHandler(s.tabService),
		schedulerHandler:  scheduler.NewHandler(s.scheduler),
		mcpHandler:        mcp.NewHTTPHandler(mcp.New(s.programService, s.completionService, s.versionInfo)),

		authMiddleware: middleware.NewAuthMiddlewareHandler(s.adminSecret, s.loginChecker),
		rateLimiter:    redis_rate.NewLimiter(s.redisClient),
		metricsManager: s.metricsManager,
		loginPerMin:    s.config.LoginRateLimitAllowedPerMin,
		versionInfo:    s.versionInfo,
	})
}

func newRouter(deps routerDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymprogress-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "gymprogress "+deps.versionInfo)
	}).Methods("GET").Name("root")

	// rate limit the login endpoints to prevent abuse
	rateLimited := middleware.RateLimit(deps.rateLimiter, deps.metricsManager, "login", deps.loginPerMin)
	r.Handle("/a/register", rateLimited(http.HandlerFunc(deps.authHandler.HandleRegister))).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/a/login", rateLimited(http.HandlerFunc(deps.authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	r.Handle("/a/logout", rateLimited(http.HandlerFunc(deps.authHandler.HandleLogout))).Methods("GET", "OPTIONS").Name("logout")

	r.HandleFunc("/me", deps.accountHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	ph := deps.programsHandler
	r.HandleFunc("/programs", ph.HandleList).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs/{id}", ph.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}/validate", ph.HandleValidate).Methods("GET", "OPTIONS").Name("validate-program")
	r.HandleFunc("/programs/{id}/workouts/{workoutId}", ph.HandleResolveWorkout).Methods("GET", "OPTIONS").Name("resolve-workout")
	r.HandleFunc("/workouts/today", ph.HandleToday).Methods("GET", "OPTIONS").Name("todays-workout")

	ch := deps.completionHandler
	r.HandleFunc("/workouts/finish", ch.HandleFinishWorkout).Methods("POST", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/completions", ch.HandleHistory).Methods("GET", "OPTIONS").Name("list-completions")
	r.HandleFunc("/completions/export", ch.HandleExport).Methods("GET", "OPTIONS").Name("export-completions")
	r.HandleFunc("/completions/{id}", ch.HandleEdit).Methods("PUT", "OPTIONS").Name("edit-completion")
	r.HandleFunc("/goal", ch.HandleGetGoal).Methods("GET", "OPTIONS").Name("get-goal")
	r.HandleFunc("/goal", ch.HandleSetGoal).Methods("PUT", "OPTIONS").Name("set-goal")

	th := deps.tabsHandler
	r.HandleFunc("/tabs/{tab}/pair", th.HandlePair).Methods("POST", "OPTIONS").Name("pair-tab")
	r.HandleFunc("/tabs/{tab}/pair", th.HandleUnpair).Methods("DELETE", "OPTIONS").Name("unpair-tab")
	r.HandleFunc("/tabs/{tab}/station", th.HandleStation).Methods("GET", "OPTIONS").Name("tab-station")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/programs", ph.HandleCreate).Methods("POST", "OPTIONS").Name("create-program")
	admin.HandleFunc("/programs/{id}", ph.HandleUpdateMeta).Methods("PUT", "OPTIONS").Name("update-program")
	admin.HandleFunc("/programs/{id}", ph.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-program")
	admin.HandleFunc("/programs/{id}/activate", ph.HandleActivate).Methods("POST", "OPTIONS").Name("activate-program")
	admin.HandleFunc("/programs/{id}/weeks", ph.HandleAppendWeek).Methods("POST", "OPTIONS").Name("append-week")

	workouts := "/programs/{id}/weeks/{week}/workouts"
	stations := workouts + "/{workout}/stations"
	sets := stations + "/{station}/sets"
	admin.HandleFunc(workouts, ph.HandleAddWorkout).Methods("POST", "OPTIONS").Name("add-workout")
	admin.HandleFunc(workouts+"/{workout}", ph.HandleUpdateWorkout).Methods("PUT", "OPTIONS").Name("update-workout")
	admin.HandleFunc(workouts+"/{workout}", ph.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	admin.HandleFunc(stations, ph.HandleAddStation).Methods("POST", "OPTIONS").Name("add-station")
	admin.HandleFunc(stations+"/{station}", ph.HandleUpdateStation).Methods("PUT", "OPTIONS").Name("update-station")
	admin.HandleFunc(stations+"/{station}", ph.HandleDeleteStation).Methods("DELETE", "OPTIONS").Name("delete-station")
	admin.HandleFunc(sets, ph.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	admin.HandleFunc(sets+"/{set}", ph.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	admin.HandleFunc(sets+"/{set}", ph.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")

	admin.HandleFunc("/tabs", th.HandleRegister).Methods("POST", "OPTIONS").Name("register-tab")
	admin.HandleFunc("/users", deps.accountHandler.HandleList).Methods("GET", "OPTIONS").Name("list-users")
	admin.HandleFunc("/users/{id}/program", deps.accountHandler.HandleAssignProgram).Methods("PUT", "OPTIONS").Name("assign-program")

	sh := deps.schedulerHandler
	admin.HandleFunc("/sweep", sh.RunJob(users.StreakSweepJobName)).Methods("POST", "OPTIONS").Name("sweep")
	admin.HandleFunc("/jobs", sh.HandleList).Methods("GET", "OPTIONS").Name("list-jobs")
	admin.HandleFunc("/jobs/{name}/run", sh.HandleRun).Methods("POST", "OPTIONS").Name("run-job")

	r.Handle("/mcp", deps.mcpHandler).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(deps.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(deps.metricsManager))
	r.Use(middleware.Cors())
	r.Use(deps.authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.scheduler.Start()
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	// waits for a running sweep to finish before the stores go away
	s.scheduler.Stop()
	log.Debugln("scheduler stopped")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
