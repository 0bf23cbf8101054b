package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/JoshuaDoes/logger"

	"github.com/StickFightDev/ShootingTargetSrv/toys"
)

var (
	log = logger.NewLogger("sf:srv", 2)

	configPath = flag.String("config", "config.json", "path to the server config")
	address    = flag.String("addr", "", "UDP address to listen on, overrides the config")
	verbosity  = flag.Int("verbosity", -1, "log verbosity, overrides the config")
)

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}

	log = logger.NewLogger("sf:srv", cfg.Verbosity)
	toys.SetVerbosity(cfg.Verbosity)
	steamKeyAPI = cfg.SteamAPIKey

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}

	log.Trace("Waiting for exit call")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	log.Trace("Exit call received!")
	srv.Close()
}
