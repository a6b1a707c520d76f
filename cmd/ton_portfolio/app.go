package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ton_portfolio/internal/app/port"
	"ton_portfolio/internal/app/service"
	"ton_portfolio/internal/client"
	"ton_portfolio/internal/infrastructure/address"
	"ton_portfolio/internal/infrastructure/clipboard"
	"ton_portfolio/internal/infrastructure/configloader"
	"ton_portfolio/internal/infrastructure/notice"
	"ton_portfolio/internal/infrastructure/walletconnect"
	"ton_portfolio/internal/pkg/logger"
)

// app holds the wired components shared by every command.
type app struct {
	cfg       *configloader.Config
	zapLogger *zap.Logger
	stonfi    *client.StonFiClient
	tonapi    *client.TonAPIClient
	formatter *address.Formatter
	chart     port.ChartService
}

func bootstrap(opts *rootOptions) (*app, error) {
	cfg, err := configloader.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	zapLogger, err := logger.NewZapLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	logger.InitSlog(zapLogger)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := client.NewLimiter(cfg.RpcClient.RateLimit, cfg.RpcClient.BurstLimit)

	a := &app{
		cfg:       cfg,
		zapLogger: zapLogger,
		stonfi:    client.NewStonFiClient(cfg.StonFi.RPCURL, cfg.StonFiTimeout(), cfg.StonFi.LoadCommunity, limiter, zapLogger),
		tonapi:    client.NewTonAPIClient(cfg.TonAPI.BaseURL, cfg.TonAPITimeout(), limiter, zapLogger),
		formatter: address.NewFormatter(logger.NewSlogAdapter("address")),
		chart:     service.NewChartService(logger.NewSlogAdapter("chart")),
	}
	zapLogger.Info("Configuration loaded", zap.String("path", opts.configPath))
	return a, nil
}

// newSession wires a session service around connector.
func (a *app) newSession(connector *walletconnect.Connector) *service.SessionServiceImpl {
	return service.NewSessionService(
		connector,
		a.stonfi,
		a.tonapi,
		a.formatter,
		clipboard.NewSystem(),
		notice.NewBoard(a.cfg.NoticeTTL()),
		logger.NewSlogAdapter("session"),
		a.cfg,
	)
}

func (a *app) close() {
	_ = a.zapLogger.Sync()
}
