package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/akarpov87/social-feed/internal/handlers"
	"github.com/akarpov87/social-feed/internal/jwt"
	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/repositories"
	"github.com/akarpov87/social-feed/internal/router"
	"github.com/akarpov87/social-feed/internal/services"
	"github.com/akarpov87/social-feed/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parsed at startup. Constructed once and passed
// explicitly into components; business logic never reads the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	pgMaxAttempts  int
	pgBackoff      time.Duration

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	cacheExp          time.Duration

	kafkaAddr  string
	kafkaTopic string

	jwtSecretKey    string
	jwtExp          time.Duration
	jwtRefreshAfter time.Duration

	allowOrigin       string
	moderationEnabled bool
	warmupEnabled     bool
	housekeepingRate  int
}

// @title social-feed API
// @version 1.0.0
// @description Social-posting backend: generated credentials, posts, follows, likes and a merged timeline
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		appHost:           getEnv("APP_HOST", "localhost"),
		appPort:           getEnv("APP_PORT", "8080"),
		logLevel:          getEnv("APP_LOG_LEVEL", "info"),
		pgHost:            getEnv("POSTGRES_HOST", "localhost"),
		pgUser:            getEnv("POSTGRES_USER", "user"),
		pgPassword:        getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:              getEnv("POSTGRES_DB", "database"),
		redisHost:         getEnv("REDIS_HOST", ""),
		redisPassword:     getEnv("REDIS_PASSWORD", ""),
		kafkaAddr:         getEnv("KAFKA_ADDR", ""),
		kafkaTopic:        getEnv("KAFKA_TOPIC", "feed-activity"),
		jwtSecretKey:      getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		allowOrigin:       getEnv("CORS_ALLOW_ORIGIN", "*"),
		moderationEnabled: getEnv("MODERATION_ENABLED", "false") == "true",
		warmupEnabled:     getEnv("WARMUP_ENABLED", "false") == "true",
	}

	var err error
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.pgMaxAttempts, err = getEnvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", 10); err != nil {
		return nil, err
	}
	backoffSecond, err := getEnvInt("POSTGRES_CONNECT_BACKOFF_SECOND", 2)
	if err != nil {
		return nil, err
	}
	cfg.pgBackoff = time.Duration(backoffSecond) * time.Second

	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	cacheExpSecond, err := getEnvInt("CACHE_EXP_SECOND", 60)
	if err != nil {
		return nil, err
	}
	cfg.cacheExp = time.Duration(cacheExpSecond) * time.Second

	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", 86400)
	if err != nil {
		return nil, err
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second
	jwtRefreshSecond, err := getEnvInt("JWT_REFRESH_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.jwtRefreshAfter = time.Duration(jwtRefreshSecond) * time.Second

	if cfg.housekeepingRate, err = getEnvInt("HOUSEKEEPING_RATE", 100); err != nil {
		return nil, err
	}

	return cfg, nil
}

// connectDB establishes the database pool with a bounded retry: fixed backoff,
// fatal after the attempt budget is exhausted.
func connectDB(ctx context.Context, cfg *config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	var db *sqlx.DB
	var err error
	for attempt := 1; attempt <= cfg.pgMaxAttempts; attempt++ {
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err == nil {
			db.SetMaxOpenConns(cfg.pgMaxOpenConns)
			db.SetMaxIdleConns(cfg.pgMaxIdleConns)
			return db, nil
		}
		logger.Log.Errorw("PostgreSQL connection failed", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.pgBackoff):
		}
	}
	return nil, fmt.Errorf("PostgreSQL unreachable after %d attempts: %w", cfg.pgMaxAttempts, err)
}

// run initializes the logger, database, optional Redis and Kafka, the route
// table and the HTTP server, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	db, err := connectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Connect to Redis when configured
	var rdb *redis.Client
	if cfg.redisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
	}

	// Kafka writer for activity events, when configured
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Token service
	token := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(cfg.jwtExp),
		jwt.WithRefreshAfter(cfg.jwtRefreshAfter),
	)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	postReadRepo := repositories.NewPostReadRepository(db, middlewares.GetTxFromContext)
	postWriteRepo := repositories.NewPostWriteRepository(db, middlewares.GetTxFromContext)
	likeWriteRepo := repositories.NewLikeWriteRepository(db, middlewares.GetTxFromContext)
	followReadRepo := repositories.NewFollowReadRepository(db)
	followWriteRepo := repositories.NewFollowWriteRepository(db, middlewares.GetTxFromContext)
	nameRepo := repositories.NewNameReadRepository(db)
	lineRepo := repositories.NewLineReadRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, nameRepo, token)
	feedService := services.NewFeedService(postReadRepo, postWriteRepo, likeWriteRepo, userWriteRepo, kafkaWriter)
	socialService := services.NewSocialService(userReadRepo, followReadRepo, followWriteRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo)

	// Validation providers
	var messageConstraints validation.Provider
	if cfg.moderationEnabled {
		var lineCache validation.LineCacher
		if rdb != nil {
			lineCache = repositories.NewLineCacheRepository(rdb, cfg.cacheExp)
		}
		messageConstraints = validation.NewMessageProvider(lineRepo, lineCache)
	}
	followConstraints := validation.NewFollowProvider(userReadRepo)

	routes := []router.Route{
		{Method: http.MethodPost, Pattern: "/register", Warmup: cfg.warmupEnabled,
			Handler: handlers.NewRegisterHandler(authService)},
		{Method: http.MethodPost, Pattern: "/login", Warmup: cfg.warmupEnabled,
			Handler: handlers.NewLoginHandler(authService)},
		{Method: http.MethodGet, Pattern: "/user", Authorize: true,
			Handler: handlers.NewCurrentUserHandler(socialService)},
		{Method: http.MethodGet, Pattern: "/users",
			Handler: handlers.NewUsersHandler(socialService)},
		{Method: http.MethodGet, Pattern: "/users/{username}",
			Handler: handlers.NewProfileHandler(socialService)},
		{Method: http.MethodGet, Pattern: "/users/{username}/posts",
			Handler: handlers.NewUserPostsHandler(feedService)},
		{Method: http.MethodGet, Pattern: "/timeline", Authorize: true,
			Handler: handlers.NewTimelineHandler(feedService)},
		{Method: http.MethodPost, Pattern: "/posts", Authorize: true, Transactional: true,
			Warmup: cfg.warmupEnabled, Constraints: messageConstraints,
			Handler: handlers.NewCreatePostHandler(feedService)},
		{Method: http.MethodDelete, Pattern: "/posts/{id}", Authorize: true, Transactional: true,
			Handler: handlers.NewDeletePostHandler(feedService)},
		{Method: http.MethodPost, Pattern: "/posts/{id}/likes", Authorize: true, Transactional: true,
			Handler: handlers.NewLikeHandler(feedService)},
		{Method: http.MethodDelete, Pattern: "/posts/{id}/likes", Authorize: true, Transactional: true,
			Handler: handlers.NewUnlikeHandler(feedService)},
		{Method: http.MethodPost, Pattern: "/follow", Authorize: true, Transactional: true,
			Constraints: followConstraints,
			Handler:     handlers.NewFollowHandler(socialService)},
		{Method: http.MethodPost, Pattern: "/unfollow", Authorize: true, Transactional: true,
			Handler: handlers.NewUnfollowHandler(socialService)},
		{Method: http.MethodGet, Pattern: "/followings", Authorize: true,
			Handler: handlers.NewFollowingsHandler(socialService)},
	}

	r := router.New(router.Config{
		DB:               db,
		Token:            token,
		Housekeeper:      maintenanceService,
		AllowOrigin:      cfg.allowOrigin,
		HousekeepingRate: cfg.housekeepingRate,
		WarmupMargin:     time.Second,
		WarmupFallback:   3 * time.Second,
	}, routes)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
