// Package client contains client-side building blocks for libkeeper.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the libkeeper backend: Register, Login, and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection and maps gRPC status codes back to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable here, plus the shared sentinels from
// internal/common (ErrorNotFound, ErrIncorrectPassword, ErrorAlreadyExists,
// ErrorValidation, ErrMalformedHash).
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
