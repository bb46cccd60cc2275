package server

// Server is a transport whose RunServer blocks until it is stopped by a
// signal or by Shutdown.
type Server interface {
	RunServer()
	Shutdown()
}
