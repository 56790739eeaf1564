// Package server runs the development HTTP server hosting the fake backend.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
