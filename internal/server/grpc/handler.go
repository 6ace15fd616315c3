package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkazarov/libkeeper/internal/common"
	pb "github.com/dkazarov/libkeeper/internal/proto"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	cred, err := s.credentials.Register(ctx, req.Username, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, status.Error(codes.AlreadyExists, "username already exists")
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterResponse{Id: cred.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	s.logger.Info(ctx, "Login request", "username", req.Username)

	cred, err := s.credentials.Verify(ctx, req.Username, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, status.Error(codes.NotFound, "user not found")
		case errors.Is(err, common.ErrIncorrectPassword):
			return nil, status.Error(codes.Unauthenticated, "incorrect password")
		case errors.Is(err, common.ErrMalformedHash):
			// stored blob was not written by the configured scheme;
			// reported distinctly so operators can spot bad records
			s.logger.Error(ctx, "stored hash unreadable", "username", req.Username)
			return nil, status.Error(codes.DataLoss, "malformed password hash")
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Logged in", "username", req.Username)
	return &pb.LoginResponse{UserId: cred.ID}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
