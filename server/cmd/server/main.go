package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/distracted-programming/tanks/assets"
	"github.com/distracted-programming/tanks/server/core"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/netconfig"
	"github.com/distracted-programming/tanks/shared/protocol"
)

func main() {
	port := flag.Uint("port", netconfig.DefaultPort, "Server port")
	tickRate := flag.Int("tickrate", netconfig.DefaultTickRate, "Snapshots per second")
	name := flag.String("name", "Tanks Server", "Server display name")
	version := flag.String("version", netconfig.GameVersion, "Required client version (empty = accept any)")
	level := flag.String("level", "arena", "Level every client plays on")
	logLevel := flag.String("loglevel", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	logging.Setup(*logLevel)

	if _, err := assets.LoadLevel(*level); err != nil {
		log.Fatal().Err(err).Str("level", *level).Msg("unknown level")
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal().Err(err).Msg("failed to register components")
	}

	server := core.NewServer(core.Config{
		Name:     *name,
		Version:  *version,
		Level:    *level,
		TickRate: *tickRate,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("shutting down server")
		server.Stop()
		os.Exit(0)
	}()

	log.Info().
		Str("name", *name).
		Uint("port", *port).
		Int("tickRate", *tickRate).
		Str("version", *version).
		Str("level", *level).
		Msg("starting tanks relay server")
	if err := server.Start(*port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
