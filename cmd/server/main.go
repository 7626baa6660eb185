package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/config"
	"github.com/gantangan/gantangan-api/internal/httpserver"
	"github.com/gantangan/gantangan-api/internal/logging"
	"github.com/gantangan/gantangan-api/internal/mail"
	loggingmw "github.com/gantangan/gantangan-api/internal/middleware/logging"
	"github.com/gantangan/gantangan-api/internal/mykafka"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/search"
	"github.com/gantangan/gantangan-api/internal/service"
	"github.com/gantangan/gantangan-api/internal/tokens"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := config.SeedAdminRole(db); err != nil {
		log.Fatalf("seed admin role: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}
	recorder := &audit.Recorder{DB: db}
	tokenSvc := &tokens.Service{
		AccessSecret:  []byte(cfg.JWT_SECRET),
		RefreshSecret: []byte(cfg.REFRESH_SECRET),
		AccessTTL:     cfg.ACCESS_TTL,
		RefreshTTL:    cfg.REFRESH_TTL,
		VerifyTTL:     cfg.VERIFY_TTL,
	}

	var producer *mykafka.Producer
	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer(cfg.KAFKA_ADDRESS)
		defer producer.Close()
		mailer = &mail.KafkaMailer{Producer: producer, Topic: cfg.EMAIL_TOPIC}
	} else {
		logger.Warn("KAFKA_ADDRESS not set, verification mails are logged only")
	}

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, event search is disabled")
	}

	authSvc := &service.AuthService{
		Repo:     gormRepo,
		Tokens:   tokenSvc,
		Mailer:   mailer,
		Audit:    recorder,
		Producer: producer,
	}
	authMw := &httpserver.AuthMiddleware{Repo: gormRepo, Tokens: tokenSvc, Audit: recorder}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Auth:          authMw,
		AuthHandler:   &httpserver.AuthHTTP{Svc: authSvc},
		Roles:         &httpserver.RoleHTTP{Repo: gormRepo, Audit: recorder},
		Users:         &httpserver.UserHTTP{Repo: gormRepo, Audit: recorder},
		Categories:    &httpserver.CategoryHTTP{Repo: gormRepo, Audit: recorder},
		Products:      &httpserver.ProductHTTP{Repo: gormRepo, Audit: recorder},
		Events:        &httpserver.EventHTTP{Repo: gormRepo, Audit: recorder, ES: esClient, ESIndex: cfg.ES_INDEX},
		EventCats:     &httpserver.EventCategoryHTTP{Repo: gormRepo, Audit: recorder},
		Registrations: &httpserver.RegistrationHTTP{Repo: gormRepo, Audit: recorder},
	})

	go func() {
		if err := e.Start(":" + cfg.PORT); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
