package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/rl1809/webstore/internal/adapter/handler"
	"github.com/rl1809/webstore/internal/adapter/storage"
	"github.com/rl1809/webstore/internal/config"
	"github.com/rl1809/webstore/internal/core/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := storage.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect %s: %v", cfg.Database.Driver, err)
	}
	log.Printf("connected to %s", cfg.Database.Driver)

	if cfg.Database.Migrate {
		if err := storage.RunMigrations(db, cfg.Database.Driver); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		log.Println("migrations applied")
	}

	// Initialize adapters and service
	productRepo := storage.NewProductRepository(db)
	productService := service.NewProductService(productRepo)
	productHandler := handler.NewProductHandler(productService, db)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, handler.NewHealthServer(db))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.NewRouter(productHandler, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown: %v", err)
	}
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	if err := db.Close(); err != nil {
		log.Printf("close database: %v", err)
	}
	log.Println("connections closed")
}
