package main

import (
	"log"
	"os"

	"github.com/saeidalz13/red-alert/api"
	"github.com/saeidalz13/red-alert/internal"
)

func main() {
	cfg, err := internal.LoadConfig(".env")
	if err != nil {
		log.Fatalln(err)
	}

	rp, err := api.NewRequestProcessor(
		os.Stdin,
		os.Stdout,
		api.WithBoardSize(cfg.BoardWidth, cfg.BoardHeight),
		api.WithMinPlayers(cfg.MinPlayers),
		api.WithLogger(log.New(os.Stderr, "", log.LstdFlags)),
	)
	if err != nil {
		log.Fatalln(err)
	}

	winner, err := rp.Run()
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("stage: %s\twinner: %s\n", cfg.Stage, winner.Name())
}
