package handler

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// HealthServiceName is the service name accepted by Check besides the empty
// whole-server name.
const HealthServiceName = "webstore.ProductAPI"

// HealthServer answers grpc.health.v1 checks from a live database ping.
type HealthServer struct {
	healthpb.UnimplementedHealthServer
	db Pinger
}

func NewHealthServer(db Pinger) *HealthServer {
	return &HealthServer{db: db}
}

func (h *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", HealthServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := h.db.PingContext(ctx); err != nil {
		log.Printf("grpc health: %v", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
