// previewd serves the campaign compiler over HTTP for the edit-preview loop.
//
// Configuration comes from the environment (a local .env file is honored).
// When Postmark tokens are configured, /v1/send delivers through Postmark;
// otherwise compiled campaigns land in the local outbox directory.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/promokit/promokit/internal/preview"
	"github.com/promokit/promokit/pkg/email"
	"github.com/promokit/promokit/pkg/httpserver"
	"github.com/promokit/promokit/pkg/logger"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	// The .env file might not exist and that's ok.
	_ = godotenv.Load()

	var (
		appCfg    appConfig
		serverCfg httpserver.Config
		emailCfg  email.Config
	)
	for _, cfg := range []any{&appCfg, &serverCfg, &emailCfg} {
		if err := env.Parse(cfg); err != nil {
			slog.Error("failed to parse environment", logger.Error(err))
			os.Exit(1)
		}
	}

	var log *slog.Logger
	if appCfg.Env == "production" {
		log = logger.New(logger.WithProduction("previewd"))
	} else {
		log = logger.New(logger.WithDevelopment("previewd"))
	}
	logger.SetAsDefault(log)

	var sender email.Sender
	if emailCfg.PostmarkServerToken != "" {
		s, err := email.NewPostmarkSender(emailCfg)
		if err != nil {
			log.Error("failed to configure postmark sender", logger.Error(err))
			os.Exit(1)
		}
		sender = s
		log.Info("delivering campaigns via postmark")
	} else {
		sender = email.NewOutbox(emailCfg.OutboxDir)
		log.Info("delivering campaigns to local outbox", slog.String("dir", emailCfg.OutboxDir))
	}

	svc := preview.New(log, sender)
	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))

	if err := srv.Run(context.Background(), svc.Router()); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
