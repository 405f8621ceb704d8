package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"vitrina/docs"
	"vitrina/internal/ratelimiter"
	"vitrina/internal/source"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	source      source.Source
	sessions    *sessionStore
	rateLimiter *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	catalog     catalogConfig
	db          dbConfig
	rest        restConfig
	auth        basicConfig
	session     sessionConfig
	rateLimiter ratelimiter.Config
}

type catalogConfig struct {
	// "postgres" reads the products table directly; "rest" goes through
	// the row-filter HTTP gateway.
	sourceMode  string
	settleDelay time.Duration
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

type restConfig struct {
	baseURL string
	apiKey  string
	table   string
}

type basicConfig struct {
	user string
	pass string
}

type sessionConfig struct {
	idleTTL time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(app.RateLimiterMiddleware)

	// Per-request deadline; signals through ctx.Done() so handlers stop early.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", app.createSessionHandler)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/view", app.getViewHandler)
				r.Post("/reload", app.reloadSessionHandler)
				r.Put("/search", app.setSearchHandler)
				r.Put("/categories/{name}", app.toggleCategoryHandler)

				r.Route("/detail", func(r chi.Router) {
					r.Post("/{productID}", app.openDetailHandler)
					r.Put("/media", app.selectMediaHandler)
					r.Delete("/", app.closeDetailHandler)
				})
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		app.sessions.stop()
		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
