// Package rpc 对外提供 gRPC 健康检查服务，供编排系统探活
package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Server struct {
	srv    *grpc.Server
	health *health.Server
}

func NewServer() *Server {
	srv := grpc.NewServer()
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, h)
	return &Server{srv: srv, health: h}
}

// Start 监听端口并在后台启动服务
func (s *Server) Start(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}
	go s.Serve(lis)
	return nil
}

func (s *Server) Serve(lis net.Listener) {
	if err := s.srv.Serve(lis); err != nil {
		slog.Error("gRPC 服务退出", "err", err)
	}
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}

// CheckHealth 探测远端服务是否存活
func CheckHealth(ctx context.Context, addr string) (bool, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return false, err
	}
	defer conn.Close()

	cli := healthpb.NewHealthClient(conn)
	resp, err := cli.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return false, err
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
