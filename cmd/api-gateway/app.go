package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/commonblockchain/internal/cbi"
	"github.com/goodnatureofminers/commonblockchain/internal/index"
	"github.com/goodnatureofminers/commonblockchain/internal/journal"
	"github.com/goodnatureofminers/commonblockchain/internal/metrics"
	"github.com/goodnatureofminers/commonblockchain/internal/node"
	"github.com/goodnatureofminers/commonblockchain/internal/repository/clickhouse"
	"github.com/goodnatureofminers/commonblockchain/internal/transport"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newRepository(lc fx.Lifecycle, cfg config) (*clickhouse.Repository, error) {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewClickhouseRepository(cfg.Coin, cfg.Network))
	if err != nil {
		return nil, fmt.Errorf("init repository: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return repo.Close()
		},
	})
	return repo, nil
}

func newNodeClient(lc fx.Lifecycle, cfg config) (*rpcclient.Client, error) {
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         cfg.NodeHost,
		User:         cfg.NodeUser,
		Pass:         cfg.NodePass,
		HTTPPostMode: true,
		DisableTLS:   !cfg.NodeTLS,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("init node rpc client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.Shutdown()
			client.WaitForShutdown()
			return nil
		},
	})
	return client, nil
}

func newNodeRPC(client *rpcclient.Client, cfg config) (*node.RPCClient, error) {
	var limiter ratelimit.Limiter
	if cfg.NodeRPS > 0 {
		limiter = ratelimit.New(cfg.NodeRPS)
	}
	return node.NewRPCClient(client, limiter, metrics.NewRPCClient(cfg.Coin, cfg.Network))
}

func newJournal(lc fx.Lifecycle, repo *clickhouse.Repository, cfg config, logger *zap.Logger) (*journal.Journal, error) {
	j, err := journal.New(repo, journal.Config{
		FlushSize:     cfg.JournalFlushSize,
		FlushInterval: cfg.JournalFlushInterval,
	}, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: j.Start,
		OnStop:  j.Stop,
	})
	return j, nil
}

func newTransactionStore(rpc *node.RPCClient, repo *clickhouse.Repository, j *journal.Journal, cfg config, logger *zap.Logger) (*node.TransactionStore, error) {
	return node.NewTransactionStore(rpc, repo, j, cfg.Coin, cfg.Network, logger)
}

func newBlockStore(rpc *node.RPCClient) (*node.BlockStore, error) {
	return node.NewBlockStore(rpc)
}

func newAddressIndex(repo *clickhouse.Repository, txs *node.TransactionStore, cfg config, logger *zap.Logger) (*index.AddressIndex, error) {
	return index.NewAddressIndex(repo, txs, cfg.Workers, logger)
}

func newHeightIndex(repo *clickhouse.Repository, cfg config) (*index.HeightIndex, error) {
	return index.NewHeightIndex(repo, cfg.HeightCacheSize, cfg.HeightCacheTTL)
}

func newService(
	lc fx.Lifecycle,
	addressIndex *index.AddressIndex,
	heightIndex *index.HeightIndex,
	txs *node.TransactionStore,
	blocks *node.BlockStore,
	cfg config,
	logger *zap.Logger,
) (*cbi.Service, error) {
	aggMetrics := metrics.NewAggregator(cfg.Coin, cfg.Network)
	logger = logger.Named("cbi")

	addresses, err := cbi.NewAddressAggregator(addressIndex, aggMetrics, cfg.Workers, logger)
	if err != nil {
		return nil, err
	}
	transactions, err := cbi.NewTransactionAggregator(txs, aggMetrics, cfg.Workers, logger)
	if err != nil {
		return nil, err
	}
	blockAgg, err := cbi.NewBlockAggregator(blocks, heightIndex, aggMetrics, cfg.Workers, logger)
	if err != nil {
		return nil, err
	}
	svc, err := cbi.NewService(addresses, transactions, blockAgg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: svc.Start,
		OnStop:  svc.Stop,
	})
	return svc, nil
}

func newRPCHandler(svc *cbi.Service, cfg config, logger *zap.Logger) (*transport.RPCHandler, error) {
	return transport.NewRPCHandler(svc, transport.RPCHandlerConfig{
		Timeout:     cfg.RequestTimeout,
		MaxBodySize: cfg.MaxBodySize,
		Workers:     cfg.Workers,
	}, metrics.NewRPCHandler(), logger)
}

func newGRPCServer(svc *cbi.Service, logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	blockinsight7000v1.RegisterExplorerServiceServer(server, transport.NewExplorerHandler(svc))
	grpcPrometheus.Register(server)
	return server
}

func registerGRPCServer(lc fx.Lifecycle, server *grpc.Server, cfg config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			socket, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Addr, err)
			}
			go func() {
				logger.Info("starting gRPC server", zap.String("addr", cfg.Addr))
				if err := server.Serve(socket); err != nil {
					logger.Error("gRPC server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			logger.Info("shutting down gRPC server")
			server.GracefulStop()
			return nil
		},
	})
}

func registerHTTPServer(lc fx.Lifecycle, rpcHandler *transport.RPCHandler, cfg config, logger *zap.Logger) {
	gwCtx, cancelGateway := context.WithCancel(context.Background())
	mux := http.NewServeMux()
	mux.Handle("/rpc", rpcHandler)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			gw := gwruntime.NewServeMux()
			opts := []grpc.DialOption{
				grpc.WithTransportCredentials(insecure.NewCredentials()),
			}
			if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(gwCtx, gw, cfg.Addr, opts); err != nil {
				return fmt.Errorf("register explorer handler: %w", err)
			}
			mux.Handle("/", gw)

			socket, err := net.Listen("tcp", cfg.RestAddr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.RestAddr, err)
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
				if err := s.Serve(socket); !errors.Is(err, http.ErrServerClosed) {
					logger.Error("failed to serve http", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down the http server")
			defer cancelGateway()
			return s.Shutdown(ctx)
		},
	})
}
