package client

import (
	"context"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password []byte) (string, error)
	Login(ctx context.Context, username string, password []byte) (string, error)
	Ping(ctx context.Context) error
}
