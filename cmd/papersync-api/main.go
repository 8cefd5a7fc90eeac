package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"papersync/internal/platform/config"
	"papersync/internal/platform/logger"
	phttp "papersync/internal/platform/net/http"

	"papersync/internal/services/api"
)

func main() {
	root := config.New()
	ps := root.Prefix("PAPERSYNC_")

	// bring up logging early
	l := logger.Get()

	// http server (reads PAPERSYNC_PORT)
	srv := phttp.NewServer(ps)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         *l,
			EnableProfiler: ps.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
