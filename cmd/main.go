package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistry/adapters/myredis"
	"myregistry/adapters/peerhttp"
	"myregistry/api"
	"myregistry/domain"
	"myregistry/handlers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyRegistry service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, config.LogLevel)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"node_id", config.Node.NodeID,
		"peers", len(config.Node.Peers),
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"redis_addr", config.Redis.Addr,
	)

	var (
		promRegistry *prometheus.Registry
		metrics      *service.Metrics
	)
	{
		promRegistry = prometheus.NewRegistry()
		promRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = service.NewMetrics(promRegistry)
	}

	var (
		mirrorCache interfaces.Cache[domain.Instance]
		redisClient redis.UniversalClient
	)
	if config.Redis.Addr != "" {
		redisClient, err = myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis, mirror enabled")
		mirrorCache = myredis.NewInstanceCache(redisClient)
	}

	// Create registry node
	var node *service.Node
	{
		peerClient := peerhttp.New(&http.Client{Timeout: 10 * time.Second})
		node = service.NewNode(config.Node, peerClient, mirrorCache, clock.New(), metrics, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		node.Start(ctx)
		cancel()
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		doc, err := api.Load()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}
		validator, err := handlers.OpenAPIValidator(doc)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		e.Use(validator)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(node.Client(), node, logger))
		handlers.RegisterPeerHandlers(e, handlers.NewPeerServer(node.Peer()))
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))
	}

	// Create gRPC health server
	var (
		grpcServer   *grpc.Server
		healthServer *health.Server
	)
	if config.GRPCPort != 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}
		grpcServer, healthServer = newHealthServer()
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr().String())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")
	if healthServer != nil {
		healthServer.Shutdown()
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	node.Stop(shutdownCtx)
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	level.Info(logger).Log("msg", "Server stopped")
}
