// Package grpc exposes the credential service over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dkazarov/libkeeper/internal/logging"
	pb "github.com/dkazarov/libkeeper/internal/proto"
	"github.com/dkazarov/libkeeper/internal/server/models"
)

// credentialSvc is the slice of the credential service the handlers need.
type credentialSvc interface {
	Register(ctx context.Context, username, plaintext string) (*models.Credential, error)
	Verify(ctx context.Context, username, plaintext string) (*models.Credential, error)
}

type GRPCServer struct {
	pb.UnimplementedCredentialServiceServer
	address     string
	credentials credentialSvc
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, cs credentialSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		credentials: cs,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterCredentialServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
