package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sitewalk/inspection-api/internal/application"
	appreports "github.com/sitewalk/inspection-api/internal/application/reportsvc"
	appsurveys "github.com/sitewalk/inspection-api/internal/application/surveys"
	"github.com/sitewalk/inspection-api/internal/config"
	domreports "github.com/sitewalk/inspection-api/internal/domain/reports"
	"github.com/sitewalk/inspection-api/internal/domain/vision"
	"github.com/sitewalk/inspection-api/internal/i18n"
	"github.com/sitewalk/inspection-api/internal/infra/ai"
	aiopenai "github.com/sitewalk/inspection-api/internal/infra/ai/openai"
	mysqlp "github.com/sitewalk/inspection-api/internal/infra/db/mysql"
	postgresp "github.com/sitewalk/inspection-api/internal/infra/db/postgres"
	"github.com/sitewalk/inspection-api/internal/infra/httpserver"
	"github.com/sitewalk/inspection-api/internal/infra/kv"
	"github.com/sitewalk/inspection-api/internal/infra/mail/dispatch"
	minioStore "github.com/sitewalk/inspection-api/internal/infra/storage"
	"github.com/sitewalk/inspection-api/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// local key-value storage: report collection + language preference
	store, err := kv.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("kv store init error: %v", err)
	}
	langs := kv.NewLanguageStore(store)

	checkers := map[string]middleware.HealthChecker{
		"storage": &middleware.StoreHealthChecker{Dir: cfg.Storage.DataDir},
	}

	// report repository backend per config
	var repo domreports.Repository
	switch cfg.Storage.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqlp.NewReportRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresp.NewReportRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		repo = kv.NewReportStore(store)
	}

	// vision client with result cache
	var visionClient vision.Client = aiopenai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	visionClient, err = ai.NewCachedClient(visionClient, cfg.OpenAI.CacheSize)
	if err != nil {
		log.Fatalf("vision cache init error: %v", err)
	}

	// mail dispatch, retry texts in the stored locale
	lang, err := langs.Load()
	if err != nil {
		lang = i18n.DefaultLanguage
	}
	mailer := dispatch.NewClient(
		cfg.Mailer.Endpoint,
		cfg.Mailer.APIKey,
		cfg.Mailer.Sender,
		cfg.Mailer.SenderName,
		lang,
	)

	// optional archive bucket for rendered report exports
	var archive domreports.ArchiveStore
	if cfg.Minio.Enabled {
		archive, err = minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
	}

	// init services
	surveysSvc := appsurveys.NewService(visionClient, application.SystemClock{})
	reportsSvc := &appreports.Service{
		Repo:    repo,
		Mailer:  mailer,
		Archive: archive,
		Clock:   application.SystemClock{},
	}

	// init router
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.APIKeyAuth(os.Getenv("API_KEY")))
	mux.Use(middleware.RateLimitMiddleware(30, 1))
	mux.Mount("/", httpserver.NewRouter(surveysSvc, reportsSvc, langs, middleware.HealthHandler(checkers)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
