package main

import (
	"flag"
	"fmt"
	"os"

	"glaive/internal/config"
	"glaive/internal/game"
)

func main() {
	configPath := flag.String("config", "glaive.toml", "Path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
