// Package cli provides the interactive libkeeper command-line client.
//
// It wires configuration, the gRPC API client, and an interactive REPL.
// Typical flow: prompt for credentials, start a background connectivity
// watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - whoami — show the authenticated user
//   - Online status indicator in the prompt
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
