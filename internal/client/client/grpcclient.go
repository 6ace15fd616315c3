package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dkazarov/libkeeper/internal/common"
	pb "github.com/dkazarov/libkeeper/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.CredentialServiceClient
}

func NewCredentialClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCredentialServiceClient(conn)
	return nil
}

// Register creates a new credential record on the server and returns its id.
func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) (string, error) {

	req := &pb.RegisterRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Register(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Id, nil

}

// Login verifies the password against the stored hash and returns the user id.
func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) (string, error) {

	req := &pb.LoginRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserId, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated:
		return common.ErrIncorrectPassword
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return common.ErrorValidation
	case codes.DataLoss:
		return common.ErrMalformedHash
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
