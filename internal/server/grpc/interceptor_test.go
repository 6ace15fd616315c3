package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
)

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newServer(&fakeCredentials{})

	info := &grpc.UnaryServerInfo{FullMethod: "/libkeeper.service.CredentialService/Ping"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), "req", info, handler)
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if resp != "resp" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestLoggingInterceptor_PropagatesError(t *testing.T) {
	s := newServer(&fakeCredentials{})

	boom := errors.New("boom")
	info := &grpc.UnaryServerInfo{FullMethod: "/libkeeper.service.CredentialService/Login"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, boom
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, handler)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}
