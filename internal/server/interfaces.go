package server

// Server runs an HTTP handler until the process is told to stop.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully. It blocks for the whole lifetime of the server.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
