package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ton_portfolio/internal/infrastructure/restapi"
	"ton_portfolio/internal/infrastructure/sessionstore"
	"ton_portfolio/internal/infrastructure/walletconnect"
	"ton_portfolio/internal/pkg/logger"
	"ton_portfolio/internal/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the wallet page, JSON API and event stream",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer a.close()
			return serve(cmd.Context(), a)
		},
	}
}

func serve(parent context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl := a.zapLogger
	metrics.MustRegisterMetrics()

	store := sessionstore.NewFileStore(a.cfg.Session.FilePath, logger.NewSlogAdapter("sessionstore").Info)
	connector := walletconnect.NewConnector(store, logger.NewSlogAdapter("walletconnect"))
	if a.cfg.Session.RestoreOnStart {
		if err := connector.Restore(); err != nil {
			zl.Warn("Could not restore wallet session", zap.Error(err))
		}
	}

	session := a.newSession(connector)
	session.Start(ctx)
	defer session.Stop()

	events := restapi.NewEventPublisher(session, logger.NewSlogAdapter("events"))
	handler := restapi.NewSessionHandler(session, a.chart, logger.NewSlogAdapter("restapi"))
	router := restapi.SetupRouter(handler, events, a.cfg, zl)

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return events.Run(gctx)
	})
	g.Go(func() error {
		zl.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zl.Error("Server stopped with error", zap.Error(err))
		return err
	}
	zl.Info("Server exiting")
	return nil
}
