// Package server runs the stub content server: it starts the HTTP listener,
// waits for a termination signal or context cancellation and shuts down
// gracefully.
package server
