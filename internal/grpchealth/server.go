// Package grpchealth serves the standard grpc.health.v1 service so that
// orchestrators can check the listing service over gRPC.
package grpchealth

import (
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported alongside the overall ("") status.
const ServiceName = "jobmate.listing.v1.Listing"

// Server owns a gRPC server exposing only the health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	log    *logrus.Entry
}

// New returns a Server reporting NOT_SERVING until MarkServing is called.
func New(log *logrus.Entry) *Server {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{grpc: gs, health: hs, log: log}
}

// Health exposes the underlying health server.
func (s *Server) Health() healthpb.HealthServer { return s.health }

// MarkServing flips every status to SERVING.
func (s *Server) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Serve blocks serving on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.WithField("addr", lis.Addr().String()).Info("gRPC health listening")
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Stop reports NOT_SERVING to watchers, then stops the server gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
	s.log.Info("gRPC health stopped")
}
