// Package server wires and runs the HTTP server of a platform service:
// startup, signal handling, and graceful shutdown.
package server
