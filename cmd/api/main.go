package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vitrina/internal/db"
	"vitrina/internal/ratelimiter"
	"vitrina/internal/source"
)

var version = "1.0.0"

// NewLogger creates a new zap logger with colored console output.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func envDuration(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %s\n", key, fallback)
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %d\n", key, fallback)
		return fallback
	}
	return parsed
}

func loadRateLimiterConfig() ratelimiter.Config {
	enabled := false
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsed, err := strconv.ParseBool(val); err == nil {
			enabled = parsed
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", enabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: envInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

//	@title			Vitrina API
//	@description	Session-scoped product catalog browsing: filtered views, sections, and detail state.

//	@BasePath					/v1
//	@securityDefinitions.basic	BasicAuth

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config{
		addr:   os.Getenv("ADDR"),
		env:    os.Getenv("ENV"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		catalog: catalogConfig{
			sourceMode:  os.Getenv("CATALOG_SOURCE"),
			settleDelay: envDuration("SEARCH_SETTLE_DELAY", 300*time.Millisecond),
		},
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    int32(envInt("DB_MAX_CONNS", 10)),
			maxIdleTime: os.Getenv("DB_MAX_IDLE_TIME"),
		},
		rest: restConfig{
			baseURL: os.Getenv("CATALOG_REST_URL"),
			apiKey:  os.Getenv("CATALOG_REST_KEY"),
			table:   os.Getenv("CATALOG_REST_TABLE"),
		},
		auth: basicConfig{
			user: os.Getenv("AUTH_BASIC_USER"),
			pass: os.Getenv("AUTH_BASIC_PASS"),
		},
		session: sessionConfig{
			idleTTL: envDuration("SESSION_IDLE_TTL", 30*time.Minute),
		},
		rateLimiter: loadRateLimiterConfig(),
	}
	if cfg.addr == "" {
		cfg.addr = ":8080"
	}
	if cfg.db.maxIdleTime == "" {
		cfg.db.maxIdleTime = "15m"
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Catalog data source
	var src source.Source
	switch cfg.catalog.sourceMode {
	case "rest":
		src = source.NewRESTSource(cfg.rest.baseURL, cfg.rest.apiKey, cfg.rest.table)
		logger.Infow("using REST catalog source", "base_url", cfg.rest.baseURL)
	case "postgres", "":
		pool, err := db.New(cfg.db.addr, cfg.db.maxConns, cfg.db.maxIdleTime)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")
		src = source.NewPostgresSource(pool)
	default:
		logger.Fatalf("unknown CATALOG_SOURCE %q", cfg.catalog.sourceMode)
	}

	sessions := newSessionStore(cfg.session.idleTTL)

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		source:      src,
		sessions:    sessions,
		rateLimiter: rateLimiter,
	}

	// Metrics collected at /v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("active_sessions", expvar.Func(func() any {
		return sessions.count()
	}))
	expvar.Publish("increments_dropped", expvar.Func(func() any {
		return sessions.incrementFailures()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
