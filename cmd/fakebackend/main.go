// Command fakebackend serves an in-memory Health Panda backend for local
// development of the client.
package main

import (
	"os"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/fakebackend"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/server"
)

func main() {
	log := logger.NewLogger("fake-backend", os.Stdout)

	cfg, err := config.GetFakeBackendConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend := fakebackend.New(cfg.SignKey, log)

	srv, err := server.NewServer(backend.Routes(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("api", "http://"+cfg.Address+"/api").Msg("fake backend ready")
	srv.RunServer()
}
