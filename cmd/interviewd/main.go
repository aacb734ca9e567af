package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hireloop/interviewd/internal/api"
	"github.com/hireloop/interviewd/internal/availability"
	"github.com/hireloop/interviewd/internal/notify"
	"github.com/hireloop/interviewd/internal/postings"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/internal/scheduling"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/internal/users"
	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := repo.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "connect to storage"))
	}

	windows := availability.New(repo.New[availability.Window](client, "availability_windows"), log)
	records := sessions.New(repo.New[sessions.Interview](client, "interview_sessions"), log)
	profiles := users.New(repo.New[users.User](client, "users"), log)
	jobs := postings.New(repo.New[postings.Posting](client, "job_postings"), log)

	gateway, closeGateway := buildGateway(cfg, log)

	engine := scheduling.New(scheduling.Deps{
		Windows:  windows,
		Sessions: records,
		Users:    profiles,
		Postings: jobs,
		Gateway:  gateway,
		Txn:      client,
	}, log)

	server := api.NewServer(cfg.API, log, engine, windows, records)

	go sessions.RunCompleter(ctx, records, cfg.Sweep.Every, log)

	runConsumer(ctx, cfg, profiles, log)

	go func() {
		serveErr := server.Serve(ctx)
		if serveErr != nil {
			log.Error(errors.WrapFail(serveErr, "serve http"))
			cancel()
		}
	}()
	log.Infof("interviewd is up on %s", cfg.API.HTTP.Addr)

	<-ctx.Done()
	log.Infof("graceful shutdown")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error(err)
	}
	closeGateway()
	err = client.Close(shutdownCtx)
	if err != nil {
		log.Error(err)
	}
}

func buildGateway(cfg *Config, log logger.Logger) (notify.Gateway, func()) {
	if len(cfg.Notify.Kafka.Brokers) == 0 {
		return notify.NewLogGateway(log), func() {}
	}

	kg := notify.NewKafkaGateway(cfg.Notify, log)
	return kg, func() {
		err := kg.Close()
		if err != nil {
			log.Error(err)
		}
	}
}

func runConsumer(ctx context.Context, cfg *Config, profiles users.API, log logger.Logger) {
	if len(cfg.Notify.Kafka.Brokers) == 0 || cfg.Notify.Telegram.Token == "" {
		log.Infof("notification delivery disabled")
		return
	}

	sender, err := notify.NewTelegramSender(cfg.Notify, profiles, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init telegram sender"))
	}

	consumer := notify.NewConsumer(cfg.Notify, sender, log)
	go consumer.Run(ctx)
}
