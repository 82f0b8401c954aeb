// Package server runs the HTTP transport of the sales-keeper server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown of the HTTP server followed by the background workers.
package server
