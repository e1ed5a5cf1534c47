package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aicsoa/checkin-backend/internal/config"
	"github.com/aicsoa/checkin-backend/internal/es"
	"github.com/aicsoa/checkin-backend/internal/httpserver"
	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/mailer"
	"github.com/aicsoa/checkin-backend/internal/mykafka"
	"github.com/aicsoa/checkin-backend/internal/qr"
	"github.com/aicsoa/checkin-backend/internal/repo"
	"github.com/aicsoa/checkin-backend/internal/service"
)

const participantsIndex = "participants"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	gormRepo := &repo.GormRepo{DB: db}

	var producer *mykafka.Producer
	if len(configuration.KAFKA_BROKERS) > 0 {
		producer, err = mykafka.NewProducer(configuration.KAFKA_BROKERS)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("kafka disabled: no brokers configured")
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("elasticsearch disabled: ES_URL not set")
	}

	qrGen, err := qr.NewGenerator(configuration.QR_DIR)
	if err != nil {
		log.Fatal(err)
	}

	var entryMailer *mailer.Mailer
	if configuration.SMTP_EMAIL != "" {
		entryMailer, err = mailer.New(
			configuration.SMTP_HOST,
			configuration.SMTP_PORT,
			configuration.SMTP_EMAIL,
			configuration.SMTP_PASSWORD,
		)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("mailer disabled: SMTP_EMAIL not set")
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:          db,
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: jwtSecret}},
		ParticipantHandler: &httpserver.ParticipantHTTP{Svc: &service.RegistrationService{
			Repo:     gormRepo,
			QR:       qrGen,
			Mailer:   entryMailer,
			Producer: producer,
			ES:       esClient,
			Index:    participantsIndex,
		}},
		CheckinHandler: &httpserver.CheckinHTTP{Svc: &service.CheckinService{Repo: gormRepo, Producer: producer}},
		StatsHandler:   &httpserver.StatsHTTP{Svc: &service.StatsService{Repo: gormRepo}},
		SearchHandler:  &httpserver.SearchHTTP{ES: esClient, Index: participantsIndex},
		JWTSecret:      jwtSecret,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
