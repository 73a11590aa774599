// Command api-gateway serves the common-blockchain query API over gRPC, REST and JSON-RPC.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/logging"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type config struct {
	Addr          string        `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"HTTP listen address (REST gateway, /rpc, /metrics)" default:":8001"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin    `long:"coin" env:"API_GATEWAY_COIN" description:"coin name" required:"true"`
	Network       model.Network `long:"network" env:"API_GATEWAY_NETWORK" description:"network name" required:"true"`

	NodeHost string `long:"node-host" env:"API_GATEWAY_NODE_HOST" description:"node RPC host:port" default:"127.0.0.1:8332"`
	NodeUser string `long:"node-user" env:"API_GATEWAY_NODE_USER" description:"node RPC username"`
	NodePass string `long:"node-pass" env:"API_GATEWAY_NODE_PASS" description:"node RPC password"`
	NodeTLS  bool   `long:"node-tls" env:"API_GATEWAY_NODE_TLS" description:"use TLS for node RPC"`
	NodeRPS  int    `long:"node-rps" env:"API_GATEWAY_NODE_RPS" description:"node RPC calls per second, 0 for unlimited" default:"0"`

	Workers         int           `long:"workers" env:"API_GATEWAY_WORKERS" description:"concurrent lookups per batch" default:"8"`
	HeightCacheSize int           `long:"height-cache-size" env:"API_GATEWAY_HEIGHT_CACHE_SIZE" description:"block height cache entries" default:"10000"`
	HeightCacheTTL  time.Duration `long:"height-cache-ttl" env:"API_GATEWAY_HEIGHT_CACHE_TTL" description:"block height cache entry lifetime" default:"10m"`

	RequestTimeout time.Duration `long:"request-timeout" env:"API_GATEWAY_REQUEST_TIMEOUT" description:"JSON-RPC call timeout" default:"30s"`
	MaxBodySize    int64         `long:"max-body-size" env:"API_GATEWAY_MAX_BODY_SIZE" description:"JSON-RPC request body limit in bytes" default:"4194304"`

	JournalFlushSize     int           `long:"journal-flush-size" env:"API_GATEWAY_JOURNAL_FLUSH_SIZE" description:"broadcast journal batch size" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"API_GATEWAY_JOURNAL_FLUSH_INTERVAL" description:"broadcast journal flush interval" default:"5s"`

	LogLevel       string `long:"log-level" env:"API_GATEWAY_LOG_LEVEL" description:"log level (debug, info, warn, error)" default:"info"`
	LogFile        string `long:"log-file" env:"API_GATEWAY_LOG_FILE" description:"rotate logs into this file in addition to stderr"`
	LogDevelopment bool   `long:"log-development" env:"API_GATEWAY_LOG_DEVELOPMENT" description:"human readable development logging"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
		File:        cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			newRepository,
			newNodeClient,
			newNodeRPC,
			newJournal,
			newTransactionStore,
			newBlockStore,
			newAddressIndex,
			newHeightIndex,
			newService,
			newRPCHandler,
			newGRPCServer,
		),
		fx.Invoke(
			registerGRPCServer,
			registerHTTPServer,
		),
	).Run()
}
