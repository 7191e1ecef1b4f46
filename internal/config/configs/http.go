package configs

import "time"

// HTTP defines configuration for the HTTP server. Port specifies which
// port the server binds to; ShutdownTimeout bounds how long a graceful
// shutdown waits for in-flight requests.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout is the grace period for in-flight requests when
	// the server stops.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
