package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. CORSOrigins lists the browser
// origins allowed to call the API; the defaults cover the local
// dashboard frontend.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// CORSOrigins is a comma-separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}
