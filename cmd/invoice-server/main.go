package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txinvoice-backend/internal/evm"
	"github.com/goodnatureofminers/txinvoice-backend/internal/invoice"
	"github.com/goodnatureofminers/txinvoice-backend/internal/metrics"
	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
	"github.com/goodnatureofminers/txinvoice-backend/internal/service"
	"github.com/goodnatureofminers/txinvoice-backend/internal/transport"
)

var config struct {
	Addr           string `long:"addr" env:"INVOICE_SERVER_ADDR" description:"http listen addr" default:":8080"`
	NetworksFile   string `long:"networks-file" env:"INVOICE_SERVER_NETWORKS_FILE" description:"yaml network table, built-in sepolia entry when empty"`
	RPCRPS         int    `long:"rpc-rps" env:"INVOICE_SERVER_RPC_RPS" description:"node calls per second per network, 0 disables the limit" default:"10"`
	VerifyWorkers  int    `long:"verify-workers" env:"INVOICE_SERVER_VERIFY_WORKERS" description:"concurrent verifications per batch" default:"4"`
	MaxUploadBytes int64  `long:"max-upload-bytes" env:"INVOICE_SERVER_MAX_UPLOAD_BYTES" description:"request body limit for uploads" default:"5242880"`
	LogProduction  bool   `long:"log-production" env:"INVOICE_SERVER_LOG_PRODUCTION" description:"json logs"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		panic("can't parse arguments: " + err.Error())
	}
	logger, err := newLogger(config.LogProduction)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	networks := model.DefaultNetworks()
	if config.NetworksFile != "" {
		if networks, err = model.LoadNetworks(config.NetworksFile); err != nil {
			logger.Fatal("Failed to load network table", zap.String("path", config.NetworksFile), zap.Error(err))
		}
	}

	clients, closeClients, err := evm.Dial(ctx, networks, func(id model.NetworkID) evm.RPCMetrics {
		return metrics.NewRPCClient(id)
	}, config.RPCRPS)
	if err != nil {
		logger.Fatal("Failed to dial nodes", zap.Error(err))
	}
	defer closeClients()

	reader := evm.NewReader(networks, clients)
	invoiceMetrics := metrics.NewInvoice()
	invoices := service.NewInvoiceService(logger, networks, reader, invoice.NewRenderer("txinvoice"), invoiceMetrics)
	verifier := service.NewVerifier(logger, networks, reader, invoiceMetrics, config.VerifyWorkers)

	handler := transport.NewHandler(logger, invoices, verifier, config.MaxUploadBytes)
	s := &http.Server{
		Addr:              config.Addr,
		Handler:           transport.WithCORS(transport.NewRouter(logger, handler)),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	for _, network := range networks.Sorted() {
		logger.Info("Network configured",
			zap.String("network", string(network.ID)),
			zap.String("chain_id", network.ChainID),
			zap.String("rpc", network.Endpoint()))
	}
	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
