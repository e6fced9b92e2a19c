package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ZygmuntJakub/wizard/internal/config"
	"github.com/ZygmuntJakub/wizard/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 {
		var err error
		switch os.Args[1] {
		case "simulate":
			err = runSimulate(ctx, cfg, os.Args[2:])
		case "play":
			err = runPlay(ctx, cfg, os.Args[2:])
		default:
			err = fmt.Errorf("unknown command %q (want simulate or play)", os.Args[1])
		}
		if err != nil {
			log.Error().Err(err).Msg(os.Args[1] + " failed")
			stop()
			os.Exit(1)
		}
		return
	}

	h := handler.Handler{
		MaxGames:        cfg.MaxGames,
		Workers:         cfg.Workers,
		DecisionTimeout: cfg.DecisionTimeout,
		Logger:          &log.Logger,
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h.Register(e)

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdown)
	}()

	log.Info().Str("port", cfg.HTTPPort).Msg("starting wizard server")
	if err := e.Start(":" + cfg.HTTPPort); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
