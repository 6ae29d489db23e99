package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-jobboard/internal/config"
	"github.com/jrsteele09/go-jobboard/internal/logger"
	"github.com/jrsteele09/go-jobboard/server"
	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Bool("seed", true, "Load demo accounts and listings on start")
	flag.Parse()

	if err := run(*seed); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run(seed bool) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	logger.Setup(c)
	displayAppname(c.GetAppName())

	repos := server.NewInMemoryRepos()
	if seed {
		if err := server.SeedDemoData(repos); err != nil {
			return fmt.Errorf("server.SeedDemoData: %w", err)
		}
		log.Info().
			Str("employer", server.DemoEmployerEmail).
			Str("job_seeker", server.DemoJobSeekerEmail).
			Str("password", server.DemoPassword).
			Msg("Demo accounts loaded")
	}

	srv := &http.Server{Addr: c.GetMockPort(), Handler: server.New(c, repos)}
	errs := make(chan error, 1)
	go func() {
		errs <- listenAndServe(srv)
	}()

	select {
	case err := <-errs:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(srv)
}

func listenAndServe(srv *http.Server) error {
	log.Info().Str("addr", srv.Addr).Msg("Mock API listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
