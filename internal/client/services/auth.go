// Package services contains application services for the libkeeper client.
// This file defines the authentication service: register, login, and a
// liveness probe against the credential server.
package services

import (
	"context"
	"fmt"

	"github.com/dkazarov/libkeeper/internal/client/client"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new credential record on the server.
//   - Login: verify a password against the stored hash on the server.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (string, error)
	Login(ctx context.Context, username string, password []byte) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// Register creates a new account on the server and returns the record id.
// Hashing happens server-side; the plaintext never touches local storage.
func (a *authService) Register(ctx context.Context, username string, password []byte) (string, error) {
	id, err := a.client.Register(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	return id, nil
}

// Login verifies the password on the server and returns the user id.
func (a *authService) Login(ctx context.Context, username string, password []byte) (string, error) {
	id, err := a.client.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}
	return id, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
