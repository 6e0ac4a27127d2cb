package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/db"
	"isharati.xyz/netdiag-service/pkg/diagnosis"
	"isharati.xyz/netdiag-service/pkg/events"
	netdiagGrpc "isharati.xyz/netdiag-service/pkg/grpc"
	pb "isharati.xyz/netdiag-service/pkg/grpc/netdiag_service"
	netdiagHttp "isharati.xyz/netdiag-service/pkg/http"
	"isharati.xyz/netdiag-service/pkg/metrics"
	"isharati.xyz/netdiag-service/pkg/netdiag"
	"isharati.xyz/netdiag-service/pkg/report"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyNetDiagDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		if os.Getenv(common.EnvKeyNetDiagPostgresDSN) == "" {
			log.Fatal("NETDIAG_DB_TYPE is postgres but NETDIAG_POSTGRES_DSN is not set")
		}
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown NETDIAG_DB_TYPE: " + dbType)
	}

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyNetDiagGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyNetDiagHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyNetDiagDefaultRate), 64); err != nil {
		log.Fatal("Invalid NETDIAG_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyNetDiagDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid NETDIAG_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	catalog := diagnosis.DefaultCatalog()
	if towersFile := strings.TrimSpace(os.Getenv(common.EnvKeyNetDiagTowersFile)); towersFile != "" {
		if catalog, err = diagnosis.LoadCatalog(towersFile); err != nil {
			log.Fatalf("Invalid NETDIAG_TOWERS_FILE: %v", err)
		}
	}

	logger := common.GetLogger()
	logger.Info("Tower catalog loaded", zap.Int("towers", len(catalog)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub()
	go hub.Run(ctx)

	publishers := events.Fanout{hub}
	if brokers := strings.TrimSpace(os.Getenv(common.EnvKeyNetDiagKafkaBrokers)); brokers != "" {
		kafkaPublisher, err := events.NewKafkaPublisher(strings.Split(brokers, ","), os.Getenv(common.EnvKeyNetDiagKafkaTopic))
		if err != nil {
			log.Fatalf("Invalid NETDIAG_KAFKA_BROKERS: %v", err)
		}
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
		logger.Info("Publishing history events to kafka", zap.String("brokers", brokers))
	}

	m := metrics.New()

	core := &netdiag.NetDiag{
		Db:        *dbInstance,
		Engine:    diagnosis.NewEngine(catalog),
		Clock:     netdiag.SystemClock{},
		Publisher: publishers,
		Metrics:   m,
	}
	core.WithDefaultServices()

	limiterDesc := fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)

	var grpcServer *grpc.Server
	if grpcHostPort != "" {
		netDiagGrpcServer := netdiagGrpc.NetDiagServer{
			NetDiag:          core,
			RateLimiterStore: netdiag.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		}
		interceptor := netDiagGrpcServer.CreateRateLimitInterceptor([]string{
			pb.NetDiagService_Diagnose_FullMethodName,
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		pb.RegisterNetDiagServiceServer(grpcServer, &netDiagGrpcServer)
		logger.Info("gRPC server created with:", zap.String("default_limiter", limiterDesc))

		listener, err := net.Listen("tcp", grpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + grpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &netdiagHttp.RestfulServer{
		Server:           gin.Default(),
		NetDiag:          core,
		RateLimiterStore: netdiag.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		Metrics:          m,
		Hub:              hub,
		ReportOptions:    report.Options{BaseURL: os.Getenv(common.EnvKeyNetDiagPublicBaseURL)},
	}
	rs.Setup()

	logger.Info("http server created with:", zap.String("default_limiter", limiterDesc))

	httpServer := &http.Server{
		Addr:    httpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
}
