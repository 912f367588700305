package rpc

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestHealthCheck(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	s := NewServer()
	go s.Serve(lis)
	defer s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	serving, err := CheckHealth(ctx, lis.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	if !serving {
		t.Fatal("服务未处于 SERVING 状态")
	}
}
