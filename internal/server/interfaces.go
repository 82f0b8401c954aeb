package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until shutdown is requested; Shutdown releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Stopper is a background component stopped after the HTTP server, such as
// the worker pool.
type Stopper interface {
	Stop()
}
